package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// MID0100rev1 subscribes to multi-spindle result notifications; empty
// payload. For PowerFocus controllers the subscription must be addressed
// to the sync master.
type MID0100rev1 struct{}

func (MID0100rev1) MidRevision() (uint16, uint16)        { return 100, 1 }
func (MID0100rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0100rev1(d *codec.Decoder) (Message, error) { return MID0100rev1{}, nil }

// SpindleResult is one spindle's result within a MID0101rev1 report. It is
// structurally identical to SpindleStatus but is kept as its own type
// because the reference model treats the two as distinct wire types.
type SpindleResult struct {
	SpindleNumber uint8
	ChannelID     uint8
	OverallStatus uint8
}

func DecodeSpindleResult(d *codec.Decoder) (SpindleResult, error) {
	var s SpindleResult
	var err error
	if s.SpindleNumber, err = codec.DecodeUint8(d, 2); err != nil {
		return SpindleResult{}, err
	}
	if s.ChannelID, err = codec.DecodeUint8(d, 2); err != nil {
		return SpindleResult{}, err
	}
	if s.OverallStatus, err = codec.DecodeUint8(d, 1); err != nil {
		return SpindleResult{}, err
	}
	return s, nil
}

func EncodeSpindleResult(e *codec.Encoder, s SpindleResult) error {
	if err := codec.EncodeUint8(e, s.SpindleNumber, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, s.ChannelID, 2); err != nil {
		return err
	}
	return codec.EncodeUint8(e, s.OverallStatus, 1)
}

// MID0101rev1 reports the final result of a synchronized multi-spindle
// tightening for every spindle involved.
type MID0101rev1 struct {
	NumberOfSpindles  uint8
	SpindlesRunning   uint8
	SyncTighteningID  uint32
	SyncOverallStatus uint8
	VinNumber         string
	JobID             uint8
	ParameterSetID    uint16
	BatchSize         uint16
	BatchCounter      uint16
	BatchStatus       uint8
	Timestamp         time.Time
	SpindleStatuses   []SpindleResult
}

func (MID0101rev1) MidRevision() (uint16, uint16) { return 101, 1 }

func (m MID0101rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint8(e, m.NumberOfSpindles, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.SpindlesRunning, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.SyncTighteningID, 5); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.SyncOverallStatus, 1); err != nil {
		return err
	}
	if err := codec.EncodeString(e, m.VinNumber, 25); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.JobID, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.ParameterSetID, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.BatchSize, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.BatchCounter, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.BatchStatus, 1); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.Timestamp, 19); err != nil {
		return err
	}
	return codec.WriteList(e, m.SpindleStatuses, int(m.NumberOfSpindles), EncodeSpindleResult)
}

func decodeMID0101rev1(d *codec.Decoder) (Message, error) {
	var m MID0101rev1
	var err error
	if m.NumberOfSpindles, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.SpindlesRunning, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.SyncTighteningID, err = codec.DecodeUint32(d, 5); err != nil {
		return nil, err
	}
	if m.SyncOverallStatus, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.VinNumber, err = codec.DecodeString(d, 25); err != nil {
		return nil, err
	}
	if m.JobID, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.ParameterSetID, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.BatchCounter, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.BatchStatus, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.SpindleStatuses, err = codec.ReadList(d, int(m.NumberOfSpindles), DecodeSpindleResult); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0102rev1 acknowledges receipt of a MID0101rev1 report; empty payload.
type MID0102rev1 struct{}

func (MID0102rev1) MidRevision() (uint16, uint16)        { return 102, 1 }
func (MID0102rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0102rev1(d *codec.Decoder) (Message, error) { return MID0102rev1{}, nil }

// MID0103rev1 cancels a previously subscribed multi-spindle result
// notification; empty payload.
type MID0103rev1 struct{}

func (MID0103rev1) MidRevision() (uint16, uint16)        { return 103, 1 }
func (MID0103rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0103rev1(d *codec.Decoder) (Message, error) { return MID0103rev1{}, nil }

// MID0104rev1 requests an old multi-spindle result by its unique ID.
type MID0104rev1 struct {
	OldSyncTighteningID uint32
}

func (MID0104rev1) MidRevision() (uint16, uint16) { return 104, 1 }

func (m MID0104rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint32(e, m.OldSyncTighteningID, 10)
}

func decodeMID0104rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.DecodeUint32(d, 10)
	if err != nil {
		return nil, err
	}
	return MID0104rev1{OldSyncTighteningID: id}, nil
}

func init() {
	register(100, 1, decodeMID0100rev1)
	register(101, 1, decodeMID0101rev1)
	register(102, 1, decodeMID0102rev1)
	register(103, 1, decodeMID0103rev1)
	register(104, 1, decodeMID0104rev1)
}
