package protocol

import "github.com/dezemand/openprotocol-go/codec"

// RotationDirection is the spindle's rotation direction for a parameter set.
type RotationDirection uint8

const (
	RotationDirectionClockWise        RotationDirection = 1
	RotationDirectionCounterClockWise RotationDirection = 2
)

func DecodeRotationDirection(d *codec.Decoder, size int) (RotationDirection, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch RotationDirection(n) {
	case RotationDirectionClockWise, RotationDirectionCounterClockWise:
		return RotationDirection(n), nil
	default:
		return 0, errInvalidEnumValue("RotationDirection", uint64(n))
	}
}

func EncodeRotationDirection(e *codec.Encoder, v RotationDirection, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// RelayStatus reports whether a controller relay is energized.
type RelayStatus uint8

const (
	RelayStatusInactive RelayStatus = 0
	RelayStatusActive   RelayStatus = 1
)

func DecodeRelayStatus(d *codec.Decoder, size int) (RelayStatus, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch RelayStatus(n) {
	case RelayStatusInactive, RelayStatusActive:
		return RelayStatus(n), nil
	default:
		return 0, errInvalidEnumValue("RelayStatus", uint64(n))
	}
}

func EncodeRelayStatus(e *codec.Encoder, v RelayStatus, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// MID0010rev1 requests the parameter set ID upload; empty payload.
type MID0010rev1 struct{}

func (MID0010rev1) MidRevision() (uint16, uint16)        { return 10, 1 }
func (MID0010rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0010rev1(d *codec.Decoder) (Message, error) { return MID0010rev1{}, nil }

// MID0011rev1 uploads the set of available parameter set IDs.
type MID0011rev1 struct {
	NumberOfParameterSets uint16
	ParameterSetIDs       []uint16
}

func (MID0011rev1) MidRevision() (uint16, uint16) { return 11, 1 }

func (m MID0011rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.NumberOfParameterSets, 3); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.ParameterSetIDs, 3, int(m.NumberOfParameterSets), codec.EncodeUint16)
}

func decodeMID0011rev1(d *codec.Decoder) (Message, error) {
	var m MID0011rev1
	var err error
	if m.NumberOfParameterSets, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ParameterSetIDs, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0011rev2 adds a per-set cycle count over rev1.
type MID0011rev2 struct {
	NumberOfParameterSets uint16
	ParameterSetIDs       []uint16
	Cycles                []uint8
}

func (MID0011rev2) MidRevision() (uint16, uint16) { return 11, 2 }

func (m MID0011rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.NumberOfParameterSets, 3); err != nil {
		return err
	}
	if err := codec.WriteSizedList(e, m.ParameterSetIDs, 3, int(m.NumberOfParameterSets), codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.Cycles, 2, int(m.NumberOfParameterSets), codec.EncodeUint8)
}

func decodeMID0011rev2(d *codec.Decoder) (Message, error) {
	var m MID0011rev2
	var err error
	if m.NumberOfParameterSets, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ParameterSetIDs, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Cycles, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0011rev3 adds a per-set type string ("Pset"/"Mset") over rev2.
type MID0011rev3 struct {
	NumberOfParameterSets uint16
	ParameterSetIDs       []uint16
	Cycles                []uint8
	Types                 []string
}

func (MID0011rev3) MidRevision() (uint16, uint16) { return 11, 3 }

func (m MID0011rev3) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.NumberOfParameterSets, 3); err != nil {
		return err
	}
	if err := codec.WriteSizedList(e, m.ParameterSetIDs, 3, int(m.NumberOfParameterSets), codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteSizedList(e, m.Cycles, 2, int(m.NumberOfParameterSets), codec.EncodeUint8); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.Types, 4, int(m.NumberOfParameterSets), codec.EncodeString)
}

func decodeMID0011rev3(d *codec.Decoder) (Message, error) {
	var m MID0011rev3
	var err error
	if m.NumberOfParameterSets, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ParameterSetIDs, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Cycles, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.Types, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 4, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0011rev4 adds a per-set last-change date over rev3.
type MID0011rev4 struct {
	NumberOfParameterSets uint16
	ParameterSetIDs       []uint16
	Cycles                []uint8
	Types                 []string
	DateOfLastChange      []string
}

func (MID0011rev4) MidRevision() (uint16, uint16) { return 11, 4 }

func (m MID0011rev4) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.NumberOfParameterSets, 3); err != nil {
		return err
	}
	if err := codec.WriteSizedList(e, m.ParameterSetIDs, 3, int(m.NumberOfParameterSets), codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteSizedList(e, m.Cycles, 2, int(m.NumberOfParameterSets), codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteSizedList(e, m.Types, 4, int(m.NumberOfParameterSets), codec.EncodeString); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.DateOfLastChange, 19, int(m.NumberOfParameterSets), codec.EncodeString)
}

func decodeMID0011rev4(d *codec.Decoder) (Message, error) {
	var m MID0011rev4
	var err error
	if m.NumberOfParameterSets, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ParameterSetIDs, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Cycles, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.Types, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 4, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.DateOfLastChange, err = codec.ReadSizedList(d, int(m.NumberOfParameterSets), 19, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0012rev1 selects a parameter set. Its single field carries no
// field-number tag on the wire: unlike the rest of this family it is a
// plain sized field rather than a numbered one, matching the source
// struct's own field declaration rather than the family's otherwise
// near-universal numbered-field convention.
type MID0012rev1 struct {
	ParameterSetID uint16
}

func (MID0012rev1) MidRevision() (uint16, uint16) { return 12, 1 }

func (m MID0012rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint16(e, m.ParameterSetID, 3)
}

func decodeMID0012rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.DecodeUint16(d, 3)
	if err != nil {
		return nil, err
	}
	return MID0012rev1{ParameterSetID: id}, nil
}

// MID0013rev1 uploads the full parameter set data.
type MID0013rev1 struct {
	ParameterSetID    uint16
	ParameterSetName  string
	RotationDirection RotationDirection
	BatchSize         uint8
	TorqueMin         uint32
	TorqueMax         uint32
	FinalTorqueTarget uint32
	AngleMin          uint16
	AngleMax          uint16
	FinalAngleTarget  uint16
}

func (MID0013rev1) MidRevision() (uint16, uint16) { return 13, 1 }

func (m MID0013rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.ParameterSetID, 3, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.ParameterSetName, 25, codec.EncodeString); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 3, m.RotationDirection, 1, EncodeRotationDirection); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 4, m.BatchSize, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 5, m.TorqueMin, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 6, m.TorqueMax, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 7, m.FinalTorqueTarget, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 8, m.AngleMin, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 9, m.AngleMax, 5, codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 10, m.FinalAngleTarget, 5, codec.EncodeUint16)
}

func decodeMID0013rev1(d *codec.Decoder) (Message, error) {
	var m MID0013rev1
	var err error
	if m.ParameterSetID, err = codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ParameterSetName, err = codec.ReadNumberedField(d, 2, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.RotationDirection, err = codec.ReadNumberedField(d, 3, 1, DecodeRotationDirection); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.ReadNumberedField(d, 4, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.TorqueMin, err = codec.ReadNumberedField(d, 5, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.TorqueMax, err = codec.ReadNumberedField(d, 6, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.FinalTorqueTarget, err = codec.ReadNumberedField(d, 7, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.AngleMin, err = codec.ReadNumberedField(d, 8, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.AngleMax, err = codec.ReadNumberedField(d, 9, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.FinalAngleTarget, err = codec.ReadNumberedField(d, 10, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0013rev2 adds first_target and start_final_angle over rev1.
type MID0013rev2 struct {
	MID0013rev1
	FirstTarget      uint32
	StartFinalAngle  uint32
}

func (MID0013rev2) MidRevision() (uint16, uint16) { return 13, 2 }

func (m MID0013rev2) EncodePayload(e *codec.Encoder) error {
	if err := m.MID0013rev1.EncodePayload(e); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 11, m.FirstTarget, 6, codec.EncodeUint32); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 12, m.StartFinalAngle, 6, codec.EncodeUint32)
}

func decodeMID0013rev2(d *codec.Decoder) (Message, error) {
	base, err := decodeMID0013rev1(d)
	if err != nil {
		return nil, err
	}
	m := MID0013rev2{MID0013rev1: base.(MID0013rev1)}
	if m.FirstTarget, err = codec.ReadNumberedField(d, 11, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.StartFinalAngle, err = codec.ReadNumberedField(d, 12, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0014rev1 subscribes to parameter set selection events; empty payload.
type MID0014rev1 struct{}

func (MID0014rev1) MidRevision() (uint16, uint16)        { return 14, 1 }
func (MID0014rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0014rev1(d *codec.Decoder) (Message, error) { return MID0014rev1{}, nil }

// MID0015rev1 reports which parameter set was selected.
type MID0015rev1 struct {
	ParameterSetID   uint16
	DateOfLastChange string
}

func (MID0015rev1) MidRevision() (uint16, uint16) { return 15, 1 }

func (m MID0015rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.ParameterSetID, 3, codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 2, m.DateOfLastChange, 19, codec.EncodeString)
}

func decodeMID0015rev1(d *codec.Decoder) (Message, error) {
	var m MID0015rev1
	var err error
	if m.ParameterSetID, err = codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.DateOfLastChange, err = codec.ReadNumberedField(d, 2, 19, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0015rev2 reports a full parameter set selection.
type MID0015rev2 struct {
	ParameterSetID    uint16
	ParameterSetName  string
	DateOfLastChange  string
	RotationDirection uint8
	BatchSize         uint8
	TorqueMin         uint32
	TorqueMax         uint32
	FinalTorqueTarget uint32
	AngleMin          uint16
	AngleMax          uint16
	FinalAngleTarget  uint16
	FirstTorqueTarget uint32
	StartFinalAngle   uint32
}

func (MID0015rev2) MidRevision() (uint16, uint16) { return 15, 2 }

func (m MID0015rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.ParameterSetID, 3, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.ParameterSetName, 25, codec.EncodeString); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 3, m.DateOfLastChange, 19, codec.EncodeString); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 4, m.RotationDirection, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 5, m.BatchSize, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 6, m.TorqueMin, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 7, m.TorqueMax, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 8, m.FinalTorqueTarget, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 9, m.AngleMin, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 10, m.AngleMax, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 11, m.FinalAngleTarget, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 12, m.FirstTorqueTarget, 6, codec.EncodeUint32); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 13, m.StartFinalAngle, 6, codec.EncodeUint32)
}

func decodeMID0015rev2(d *codec.Decoder) (Message, error) {
	var m MID0015rev2
	var err error
	if m.ParameterSetID, err = codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ParameterSetName, err = codec.ReadNumberedField(d, 2, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.DateOfLastChange, err = codec.ReadNumberedField(d, 3, 19, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.RotationDirection, err = codec.ReadNumberedField(d, 4, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.ReadNumberedField(d, 5, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.TorqueMin, err = codec.ReadNumberedField(d, 6, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.TorqueMax, err = codec.ReadNumberedField(d, 7, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.FinalTorqueTarget, err = codec.ReadNumberedField(d, 8, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.AngleMin, err = codec.ReadNumberedField(d, 9, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.AngleMax, err = codec.ReadNumberedField(d, 10, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.FinalAngleTarget, err = codec.ReadNumberedField(d, 11, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.FirstTorqueTarget, err = codec.ReadNumberedField(d, 12, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.StartFinalAngle, err = codec.ReadNumberedField(d, 13, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0016rev1 requests a parameter set selection subscription; empty payload.
type MID0016rev1 struct{}

func (MID0016rev1) MidRevision() (uint16, uint16)        { return 16, 1 }
func (MID0016rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0016rev1(d *codec.Decoder) (Message, error) { return MID0016rev1{}, nil }

// MID0017rev1 unsubscribes from parameter set selection events; empty payload.
type MID0017rev1 struct{}

func (MID0017rev1) MidRevision() (uint16, uint16)        { return 17, 1 }
func (MID0017rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0017rev1(d *codec.Decoder) (Message, error) { return MID0017rev1{}, nil }

// MID0018rev1 selects a parameter set.
type MID0018rev1 struct {
	ParameterSetID uint16
}

func (MID0018rev1) MidRevision() (uint16, uint16) { return 18, 1 }

func (m MID0018rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.ParameterSetID, 3, codec.EncodeUint16)
}

func decodeMID0018rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16)
	if err != nil {
		return nil, err
	}
	return MID0018rev1{ParameterSetID: id}, nil
}

// MID0019rev1 sets the batch size (00-99) of the currently selected set.
type MID0019rev1 struct {
	ParameterSetID uint16
	BatchSize      uint8
}

func (MID0019rev1) MidRevision() (uint16, uint16) { return 19, 1 }

func (m MID0019rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.ParameterSetID, 3, codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 2, m.BatchSize, 2, codec.EncodeUint8)
}

func decodeMID0019rev1(d *codec.Decoder) (Message, error) {
	var m MID0019rev1
	var err error
	if m.ParameterSetID, err = codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.ReadNumberedField(d, 2, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0019rev2 widens batch size to 4 digits (0000-9999) over rev1.
type MID0019rev2 struct {
	ParameterSetID uint16
	BatchSize      uint16
}

func (MID0019rev2) MidRevision() (uint16, uint16) { return 19, 2 }

func (m MID0019rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.ParameterSetID, 3, codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 2, m.BatchSize, 4, codec.EncodeUint16)
}

func decodeMID0019rev2(d *codec.Decoder) (Message, error) {
	var m MID0019rev2
	var err error
	if m.ParameterSetID, err = codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.ReadNumberedField(d, 2, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0020rev1 requests the old parameter set's batch counter be reset.
type MID0020rev1 struct {
	ParameterSetID uint16
}

func (MID0020rev1) MidRevision() (uint16, uint16) { return 20, 1 }

func (m MID0020rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.ParameterSetID, 3, codec.EncodeUint16)
}

func decodeMID0020rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16)
	if err != nil {
		return nil, err
	}
	return MID0020rev1{ParameterSetID: id}, nil
}

// MID0021rev1 acknowledges a batch reset; empty payload.
type MID0021rev1 struct{}

func (MID0021rev1) MidRevision() (uint16, uint16)        { return 21, 1 }
func (MID0021rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0021rev1(d *codec.Decoder) (Message, error) { return MID0021rev1{}, nil }

// MID0022rev1 reports the job-done/batch-done relay status.
type MID0022rev1 struct {
	RelayStatus RelayStatus
}

func (MID0022rev1) MidRevision() (uint16, uint16) { return 22, 1 }

func (m MID0022rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.RelayStatus, 1, EncodeRelayStatus)
}

func decodeMID0022rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.ReadNumberedField(d, 1, 1, DecodeRelayStatus)
	if err != nil {
		return nil, err
	}
	return MID0022rev1{RelayStatus: v}, nil
}

// MID2506rev1 selects a multi-step tightening program node.
type MID2506rev1 struct {
	ProgramID uint32
	NodeType  uint16
}

func (MID2506rev1) MidRevision() (uint16, uint16) { return 2506, 1 }

func (m MID2506rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.ProgramID, 4, codec.EncodeUint32); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 2, m.NodeType, 3, codec.EncodeUint16)
}

func decodeMID2506rev1(d *codec.Decoder) (Message, error) {
	var m MID2506rev1
	var err error
	if m.ProgramID, err = codec.ReadNumberedField(d, 1, 4, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.NodeType, err = codec.ReadNumberedField(d, 2, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

func init() {
	register(10, 1, decodeMID0010rev1)
	register(11, 1, decodeMID0011rev1)
	register(11, 2, decodeMID0011rev2)
	register(11, 3, decodeMID0011rev3)
	register(11, 4, decodeMID0011rev4)
	register(12, 1, decodeMID0012rev1)
	register(13, 1, decodeMID0013rev1)
	register(13, 2, decodeMID0013rev2)
	register(14, 1, decodeMID0014rev1)
	register(15, 1, decodeMID0015rev1)
	register(15, 2, decodeMID0015rev2)
	register(16, 1, decodeMID0016rev1)
	register(17, 1, decodeMID0017rev1)
	register(18, 1, decodeMID0018rev1)
	register(19, 1, decodeMID0019rev1)
	register(19, 2, decodeMID0019rev2)
	register(20, 1, decodeMID0020rev1)
	register(21, 1, decodeMID0021rev1)
	register(22, 1, decodeMID0022rev1)
	register(2506, 1, decodeMID2506rev1)
}
