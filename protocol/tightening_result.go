package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// TraceType identifies the physical quantity a trace curve records.
type TraceType uint8

const (
	TraceTypeAngle    TraceType = 1
	TraceTypeTorque   TraceType = 2
	TraceTypeCurrent  TraceType = 3
	TraceTypeGradient TraceType = 4
	TraceTypeStroke   TraceType = 5
	TraceTypeForce    TraceType = 6
)

func DecodeTraceType(d *codec.Decoder, size int) (TraceType, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch TraceType(n) {
	case TraceTypeAngle, TraceTypeTorque, TraceTypeCurrent, TraceTypeGradient, TraceTypeStroke, TraceTypeForce:
		return TraceType(n), nil
	default:
		return 0, errInvalidEnumValue("TraceType", uint64(n))
	}
}

func EncodeTraceType(e *codec.Encoder, v TraceType, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// ObjectType identifies what kind of object a MID0900rev3 trace is attached
// to.
type ObjectType uint8

const (
	ObjectTypeDualReading          ObjectType = 1
	ObjectTypeTighteningProduction ObjectType = 2
	ObjectTypeTighteningSimulation ObjectType = 3
	ObjectTypeJointCheck           ObjectType = 4
	ObjectTypeDimensional          ObjectType = 5
)

func DecodeObjectType(d *codec.Decoder, size int) (ObjectType, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch ObjectType(n) {
	case ObjectTypeDualReading, ObjectTypeTighteningProduction, ObjectTypeTighteningSimulation, ObjectTypeJointCheck, ObjectTypeDimensional:
		return ObjectType(n), nil
	default:
		return 0, errInvalidEnumValue("ObjectType", uint64(n))
	}
}

func EncodeObjectType(e *codec.Encoder, v ObjectType, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// MID0060rev1 subscribes to tightening result data; empty payload.
type MID0060rev1 struct{}

func (MID0060rev1) MidRevision() (uint16, uint16)        { return 60, 1 }
func (MID0060rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0060rev1(d *codec.Decoder) (Message, error) { return MID0060rev1{}, nil }

// MID0061rev1 is the first-generation tightening result report.
type MID0061rev1 struct {
	CellID                  uint16
	ChannelID               uint8
	ControllerName          string
	VinNumber               string
	JobID                   uint8
	ParameterSetID          uint16
	BatchSize               uint16
	BatchCounter            uint16
	TighteningStatus        uint8
	TorqueStatus            uint8
	AngleStatus             uint8
	TorqueMinLimit          uint32
	TorqueMaxLimit          uint32
	TorqueFinalTarget       uint32
	Torque                  uint32
	AngleMinLimit           uint16
	AngleMaxLimit           uint16
	AngleFinalTarget        uint16
	Angle                   uint16
	Timestamp               time.Time
	LastParameterSetChange  time.Time
	BatchStatus             uint8
	TighteningID            uint32
}

func (MID0061rev1) MidRevision() (uint16, uint16) { return 61, 1 }

func (m MID0061rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.CellID, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.ChannelID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 3, m.ControllerName, 25, codec.EncodeString); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 4, m.VinNumber, 25, codec.EncodeString); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 5, m.JobID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 6, m.ParameterSetID, 3, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 7, m.BatchSize, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 8, m.BatchCounter, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 9, m.TighteningStatus, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 10, m.TorqueStatus, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 11, m.AngleStatus, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 12, m.TorqueMinLimit, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 13, m.TorqueMaxLimit, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 14, m.TorqueFinalTarget, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 15, m.Torque, 6, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 16, m.AngleMinLimit, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 17, m.AngleMaxLimit, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 18, m.AngleFinalTarget, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 19, m.Angle, 5, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 20, m.Timestamp, 19, EncodeTimestampSized); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 21, m.LastParameterSetChange, 19, EncodeTimestampSized); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 22, m.BatchStatus, 1, codec.EncodeUint8); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 23, m.TighteningID, 10, codec.EncodeUint32)
}

func decodeMID0061rev1(d *codec.Decoder) (Message, error) {
	var m MID0061rev1
	var err error
	if m.CellID, err = codec.ReadNumberedField(d, 1, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ChannelID, err = codec.ReadNumberedField(d, 2, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ControllerName, err = codec.ReadNumberedField(d, 3, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.VinNumber, err = codec.ReadNumberedField(d, 4, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.JobID, err = codec.ReadNumberedField(d, 5, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ParameterSetID, err = codec.ReadNumberedField(d, 6, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.ReadNumberedField(d, 7, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.BatchCounter, err = codec.ReadNumberedField(d, 8, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.TighteningStatus, err = codec.ReadNumberedField(d, 9, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.TorqueStatus, err = codec.ReadNumberedField(d, 10, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.AngleStatus, err = codec.ReadNumberedField(d, 11, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.TorqueMinLimit, err = codec.ReadNumberedField(d, 12, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.TorqueMaxLimit, err = codec.ReadNumberedField(d, 13, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.TorqueFinalTarget, err = codec.ReadNumberedField(d, 14, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.Torque, err = codec.ReadNumberedField(d, 15, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.AngleMinLimit, err = codec.ReadNumberedField(d, 16, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.AngleMaxLimit, err = codec.ReadNumberedField(d, 17, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.AngleFinalTarget, err = codec.ReadNumberedField(d, 18, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Angle, err = codec.ReadNumberedField(d, 19, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Timestamp, err = codec.ReadNumberedField(d, 20, 19, DecodeTimestampSized); err != nil {
		return nil, err
	}
	if m.LastParameterSetChange, err = codec.ReadNumberedField(d, 21, 19, DecodeTimestampSized); err != nil {
		return nil, err
	}
	if m.BatchStatus, err = codec.ReadNumberedField(d, 22, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.TighteningID, err = codec.ReadNumberedField(d, 23, 10, codec.DecodeUint32); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0061rev2 is a near-complete rewrite of rev1's field set: many fields
// widen, statuses split out into dedicated numbers, and several new
// monitoring fields appear. It is modeled as an independent flat struct
// rather than embedding rev1, since its field numbers and widths don't form
// a superset of rev1's.
type MID0061rev2 struct {
	CellID                         uint16
	ChannelID                      uint8
	ControllerName                 string
	VinNumber                      string
	JobID                          uint16
	ParameterSetID                 uint16
	Strategy                       uint8
	StrategyOptions                uint32
	BatchSize                      uint16
	BatchCounter                   uint16
	TighteningStatus               uint8
	BatchStatus                    uint8
	TorqueStatus                   uint8
	AngleStatus                    uint8
	RundownAngleStatus             uint8
	CurrentMonitoringStatus        uint8
	SelfTapStatus                  uint8
	PrevailTorqueMonitoringStatus  uint8
	PrevailTorqueCompensateStatus  uint8
	TighteningErrorStatus          string
	TorqueMinLimit                 uint32
	TorqueMaxLimit                 uint32
	TorqueFinalTarget              uint32
	Torque                         uint32
	AngleMinLimit                  uint16
	AngleMaxLimit                  uint16
	AngleFinalTarget               uint16
	Angle                          uint16
	RundownAngleMin                uint16
	RundownAngleMax                uint16
	RundownAngle                   uint16
	CurrentMonitoringMin           uint16
	CurrentMonitoringMax           uint16
	CurrentMonitoringValue         uint16
	SelfTapTorqueMin               uint32
	SelfTapTorqueMax               uint32
	SelfTapTorque                  uint32
	PrevailTorqueMin               uint32
	PrevailTorqueMax               uint32
	PrevailTorque                  uint32
	TighteningID                   uint32
	JobSequenceNumber              uint16
	SyncTighteningID               uint16
	ToolSerialNumber               string
	Timestamp                      time.Time
	LastParameterSetChange         time.Time
}

func (MID0061rev2) MidRevision() (uint16, uint16) { return 61, 2 }

func (m MID0061rev2) EncodePayload(e *codec.Encoder) error {
	fns := []func() error{
		func() error { return codec.WriteNumberedField(e, 1, m.CellID, 4, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 2, m.ChannelID, 2, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 3, m.ControllerName, 25, codec.EncodeString) },
		func() error { return codec.WriteNumberedField(e, 4, m.VinNumber, 25, codec.EncodeString) },
		func() error { return codec.WriteNumberedField(e, 5, m.JobID, 4, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 6, m.ParameterSetID, 3, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 7, m.Strategy, 2, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 8, m.StrategyOptions, 5, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 9, m.BatchSize, 4, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 10, m.BatchCounter, 4, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 11, m.TighteningStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 12, m.BatchStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 13, m.TorqueStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 14, m.AngleStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 15, m.RundownAngleStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 16, m.CurrentMonitoringStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 17, m.SelfTapStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 18, m.PrevailTorqueMonitoringStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 19, m.PrevailTorqueCompensateStatus, 1, codec.EncodeUint8) },
		func() error { return codec.WriteNumberedField(e, 20, m.TighteningErrorStatus, 10, codec.EncodeString) },
		func() error { return codec.WriteNumberedField(e, 21, m.TorqueMinLimit, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 22, m.TorqueMaxLimit, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 23, m.TorqueFinalTarget, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 24, m.Torque, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 25, m.AngleMinLimit, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 26, m.AngleMaxLimit, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 27, m.AngleFinalTarget, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 28, m.Angle, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 29, m.RundownAngleMin, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 30, m.RundownAngleMax, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 31, m.RundownAngle, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 32, m.CurrentMonitoringMin, 3, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 33, m.CurrentMonitoringMax, 3, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 34, m.CurrentMonitoringValue, 3, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 35, m.SelfTapTorqueMin, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 36, m.SelfTapTorqueMax, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 37, m.SelfTapTorque, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 38, m.PrevailTorqueMin, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 39, m.PrevailTorqueMax, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 40, m.PrevailTorque, 6, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 41, m.TighteningID, 10, codec.EncodeUint32) },
		func() error { return codec.WriteNumberedField(e, 42, m.JobSequenceNumber, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 43, m.SyncTighteningID, 5, codec.EncodeUint16) },
		func() error { return codec.WriteNumberedField(e, 44, m.ToolSerialNumber, 14, codec.EncodeString) },
		func() error { return codec.WriteNumberedField(e, 45, m.Timestamp, 19, EncodeTimestampSized) },
		func() error { return codec.WriteNumberedField(e, 46, m.LastParameterSetChange, 19, EncodeTimestampSized) },
	}
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func decodeMID0061rev2(d *codec.Decoder) (Message, error) {
	var m MID0061rev2
	var err error
	if m.CellID, err = codec.ReadNumberedField(d, 1, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ChannelID, err = codec.ReadNumberedField(d, 2, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ControllerName, err = codec.ReadNumberedField(d, 3, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.VinNumber, err = codec.ReadNumberedField(d, 4, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.JobID, err = codec.ReadNumberedField(d, 5, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ParameterSetID, err = codec.ReadNumberedField(d, 6, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Strategy, err = codec.ReadNumberedField(d, 7, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.StrategyOptions, err = codec.ReadNumberedField(d, 8, 5, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.ReadNumberedField(d, 9, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.BatchCounter, err = codec.ReadNumberedField(d, 10, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.TighteningStatus, err = codec.ReadNumberedField(d, 11, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.BatchStatus, err = codec.ReadNumberedField(d, 12, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.TorqueStatus, err = codec.ReadNumberedField(d, 13, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.AngleStatus, err = codec.ReadNumberedField(d, 14, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.RundownAngleStatus, err = codec.ReadNumberedField(d, 15, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.CurrentMonitoringStatus, err = codec.ReadNumberedField(d, 16, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.SelfTapStatus, err = codec.ReadNumberedField(d, 17, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.PrevailTorqueMonitoringStatus, err = codec.ReadNumberedField(d, 18, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.PrevailTorqueCompensateStatus, err = codec.ReadNumberedField(d, 19, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.TighteningErrorStatus, err = codec.ReadNumberedField(d, 20, 10, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.TorqueMinLimit, err = codec.ReadNumberedField(d, 21, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.TorqueMaxLimit, err = codec.ReadNumberedField(d, 22, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.TorqueFinalTarget, err = codec.ReadNumberedField(d, 23, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.Torque, err = codec.ReadNumberedField(d, 24, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.AngleMinLimit, err = codec.ReadNumberedField(d, 25, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.AngleMaxLimit, err = codec.ReadNumberedField(d, 26, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.AngleFinalTarget, err = codec.ReadNumberedField(d, 27, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Angle, err = codec.ReadNumberedField(d, 28, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.RundownAngleMin, err = codec.ReadNumberedField(d, 29, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.RundownAngleMax, err = codec.ReadNumberedField(d, 30, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.RundownAngle, err = codec.ReadNumberedField(d, 31, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.CurrentMonitoringMin, err = codec.ReadNumberedField(d, 32, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.CurrentMonitoringMax, err = codec.ReadNumberedField(d, 33, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.CurrentMonitoringValue, err = codec.ReadNumberedField(d, 34, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.SelfTapTorqueMin, err = codec.ReadNumberedField(d, 35, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.SelfTapTorqueMax, err = codec.ReadNumberedField(d, 36, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.SelfTapTorque, err = codec.ReadNumberedField(d, 37, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.PrevailTorqueMin, err = codec.ReadNumberedField(d, 38, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.PrevailTorqueMax, err = codec.ReadNumberedField(d, 39, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.PrevailTorque, err = codec.ReadNumberedField(d, 40, 6, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.TighteningID, err = codec.ReadNumberedField(d, 41, 10, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.JobSequenceNumber, err = codec.ReadNumberedField(d, 42, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.SyncTighteningID, err = codec.ReadNumberedField(d, 43, 5, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ToolSerialNumber, err = codec.ReadNumberedField(d, 44, 14, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.Timestamp, err = codec.ReadNumberedField(d, 45, 19, DecodeTimestampSized); err != nil {
		return nil, err
	}
	if m.LastParameterSetChange, err = codec.ReadNumberedField(d, 46, 19, DecodeTimestampSized); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0061rev3 embeds rev2's full field set and appends three more — a
// clean superset, so it's modeled with Go struct embedding rather than as
// an independent copy.
type MID0061rev3 struct {
	MID0061rev2
	ParameterSetName string
	TorqueUnit       uint8
	ResultType       uint8
}

func (MID0061rev3) MidRevision() (uint16, uint16) { return 61, 3 }

func (m MID0061rev3) EncodePayload(e *codec.Encoder) error {
	if err := m.MID0061rev2.EncodePayload(e); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 47, m.ParameterSetName, 25, codec.EncodeString); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 48, m.TorqueUnit, 1, codec.EncodeUint8); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 49, m.ResultType, 2, codec.EncodeUint8)
}

func decodeMID0061rev3(d *codec.Decoder) (Message, error) {
	base, err := decodeMID0061rev2(d)
	if err != nil {
		return nil, err
	}
	m := MID0061rev3{MID0061rev2: base.(MID0061rev2)}
	if m.ParameterSetName, err = codec.ReadNumberedField(d, 47, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.TorqueUnit, err = codec.ReadNumberedField(d, 48, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ResultType, err = codec.ReadNumberedField(d, 49, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0062rev1 acknowledges receipt of a MID0061 tightening result; empty
// payload.
type MID0062rev1 struct{}

func (MID0062rev1) MidRevision() (uint16, uint16)        { return 62, 1 }
func (MID0062rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0062rev1(d *codec.Decoder) (Message, error) { return MID0062rev1{}, nil }

// MID0063rev1 unsubscribes from tightening result data; empty payload.
type MID0063rev1 struct{}

func (MID0063rev1) MidRevision() (uint16, uint16)        { return 63, 1 }
func (MID0063rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0063rev1(d *codec.Decoder) (Message, error) { return MID0063rev1{}, nil }

// MID0064rev1 requests an old tightening result by ID.
type MID0064rev1 struct {
	TighteningID uint32
}

func (MID0064rev1) MidRevision() (uint16, uint16) { return 64, 1 }

func (m MID0064rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.TighteningID, 10, codec.EncodeUint32)
}

func decodeMID0064rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.ReadNumberedField(d, 1, 10, codec.DecodeUint32)
	if err != nil {
		return nil, err
	}
	return MID0064rev1{TighteningID: v}, nil
}

// MID0065rev1 replies with an old tightening result. The reference model
// leaves this message's field list unfinished (it's documented as
// reusing MID0061rev1's shape); this port reflects that by embedding
// MID0061rev1 directly rather than inventing fields the wire format never
// actually specifies.
type MID0065rev1 struct {
	MID0061rev1
}

func (MID0065rev1) MidRevision() (uint16, uint16) { return 65, 1 }

func (m MID0065rev1) EncodePayload(e *codec.Encoder) error {
	return m.MID0061rev1.EncodePayload(e)
}

func decodeMID0065rev1(d *codec.Decoder) (Message, error) {
	base, err := decodeMID0061rev1(d)
	if err != nil {
		return nil, err
	}
	return MID0065rev1{MID0061rev1: base.(MID0061rev1)}, nil
}

// MID0066rev1 reports the number of offline results stored in the
// controller.
type MID0066rev1 struct {
	NumberOfOfflineResults uint8
}

func (MID0066rev1) MidRevision() (uint16, uint16) { return 66, 1 }

func (m MID0066rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.NumberOfOfflineResults, 2, codec.EncodeUint8)
}

func decodeMID0066rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.ReadNumberedField(d, 1, 2, codec.DecodeUint8)
	if err != nil {
		return nil, err
	}
	return MID0066rev1{NumberOfOfflineResults: v}, nil
}

// MID0066rev2 widens the offline-results count and adds an offline-curves
// count.
type MID0066rev2 struct {
	NumberOfOfflineResults uint16
	NumberOfOfflineCurves  uint16
}

func (MID0066rev2) MidRevision() (uint16, uint16) { return 66, 2 }

func (m MID0066rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.NumberOfOfflineResults, 3, codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 2, m.NumberOfOfflineCurves, 3, codec.EncodeUint16)
}

func decodeMID0066rev2(d *codec.Decoder) (Message, error) {
	var m MID0066rev2
	var err error
	if m.NumberOfOfflineResults, err = codec.ReadNumberedField(d, 1, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.NumberOfOfflineCurves, err = codec.ReadNumberedField(d, 2, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0067rev1 requests a range of tightening results for offline upload.
type MID0067rev1 struct {
	StartIndex uint32
	Count      uint16
}

func (MID0067rev1) MidRevision() (uint16, uint16) { return 67, 1 }

func (m MID0067rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.StartIndex, 10, codec.EncodeUint32); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 2, m.Count, 3, codec.EncodeUint16)
}

func decodeMID0067rev1(d *codec.Decoder) (Message, error) {
	var m MID0067rev1
	var err error
	if m.StartIndex, err = codec.ReadNumberedField(d, 1, 10, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.Count, err = codec.ReadNumberedField(d, 2, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0900rev1 carries trace curve data for the most recent tightening.
type MID0900rev1 struct {
	ResultDataID            uint32
	Timestamp               time.Time
	NumberOfPIDs            uint16
	DataFields              []DataField
	TraceType               TraceType
	TransducerType          uint8
	Unit                    uint16
	NumberOfParameterFields uint16
	ParameterFields         []DataField
	NumberOfResolutionFields uint16
	ResolutionFields        []DataField
	NumberOfTraceSamples    uint32
	TraceSamples            []TraceSample
}

func (MID0900rev1) MidRevision() (uint16, uint16) { return 900, 1 }

func (m MID0900rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint32(e, m.ResultDataID, 10); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.Timestamp, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfPIDs, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.DataFields, int(m.NumberOfPIDs), EncodeDataField); err != nil {
		return err
	}
	if err := EncodeTraceType(e, m.TraceType, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.TransducerType, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.Unit, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfParameterFields, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.ParameterFields, int(m.NumberOfParameterFields), EncodeDataField); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfResolutionFields, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.ResolutionFields, int(m.NumberOfResolutionFields), EncodeDataField); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.NumberOfTraceSamples, 5); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, 0, 1); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.TraceSamples, 2, int(m.NumberOfTraceSamples), EncodeTraceSample)
}

func decodeMID0900rev1(d *codec.Decoder) (Message, error) {
	var m MID0900rev1
	var err error
	if m.ResultDataID, err = codec.DecodeUint32(d, 10); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.NumberOfPIDs, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.DataFields, err = codec.ReadList(d, int(m.NumberOfPIDs), DecodeDataField); err != nil {
		return nil, err
	}
	if m.TraceType, err = DecodeTraceType(d, 2); err != nil {
		return nil, err
	}
	if m.TransducerType, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.Unit, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.NumberOfParameterFields, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ParameterFields, err = codec.ReadList(d, int(m.NumberOfParameterFields), DecodeDataField); err != nil {
		return nil, err
	}
	if m.NumberOfResolutionFields, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ResolutionFields, err = codec.ReadList(d, int(m.NumberOfResolutionFields), DecodeDataField); err != nil {
		return nil, err
	}
	if m.NumberOfTraceSamples, err = codec.DecodeUint32(d, 5); err != nil {
		return nil, err
	}
	if _, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.TraceSamples, err = codec.ReadSizedList(d, int(m.NumberOfTraceSamples), 2, DecodeTraceSample); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0900rev2 adds request_mid, recording which request (MID0006 or
// MID0008) this trace answers.
type MID0900rev2 struct {
	ResultDataID             uint32
	Timestamp                time.Time
	NumberOfPIDs             uint16
	DataFields               []DataField
	TraceType                TraceType
	TransducerType           uint8
	Unit                     uint16
	RequestMid               uint16
	NumberOfParameterFields  uint16
	ParameterFields          []DataField
	NumberOfResolutionFields uint16
	ResolutionFields         []DataField
	NumberOfTraceSamples     uint32
	TraceSamples             []TraceSample
}

func (MID0900rev2) MidRevision() (uint16, uint16) { return 900, 2 }

func (m MID0900rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint32(e, m.ResultDataID, 10); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.Timestamp, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfPIDs, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.DataFields, int(m.NumberOfPIDs), EncodeDataField); err != nil {
		return err
	}
	if err := EncodeTraceType(e, m.TraceType, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.TransducerType, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.Unit, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.RequestMid, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfParameterFields, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.ParameterFields, int(m.NumberOfParameterFields), EncodeDataField); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfResolutionFields, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.ResolutionFields, int(m.NumberOfResolutionFields), EncodeDataField); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.NumberOfTraceSamples, 5); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, 0, 1); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.TraceSamples, 2, int(m.NumberOfTraceSamples), EncodeTraceSample)
}

func decodeMID0900rev2(d *codec.Decoder) (Message, error) {
	var m MID0900rev2
	var err error
	if m.ResultDataID, err = codec.DecodeUint32(d, 10); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.NumberOfPIDs, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.DataFields, err = codec.ReadList(d, int(m.NumberOfPIDs), DecodeDataField); err != nil {
		return nil, err
	}
	if m.TraceType, err = DecodeTraceType(d, 2); err != nil {
		return nil, err
	}
	if m.TransducerType, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.Unit, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.RequestMid, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.NumberOfParameterFields, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ParameterFields, err = codec.ReadList(d, int(m.NumberOfParameterFields), DecodeDataField); err != nil {
		return nil, err
	}
	if m.NumberOfResolutionFields, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ResolutionFields, err = codec.ReadList(d, int(m.NumberOfResolutionFields), DecodeDataField); err != nil {
		return nil, err
	}
	if m.NumberOfTraceSamples, err = codec.DecodeUint32(d, 5); err != nil {
		return nil, err
	}
	if _, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.TraceSamples, err = codec.ReadSizedList(d, int(m.NumberOfTraceSamples), 2, DecodeTraceSample); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0900rev3 adds object identity fields, for traces attached to
// non-tightening objects (dimensional checks, joint checks, etc.).
type MID0900rev3 struct {
	ResultDataID             uint32
	Timestamp                time.Time
	ObjectID                 uint16
	ObjectType               ObjectType
	ReferenceObjectID        uint16
	NumberOfPIDs             uint16
	DataFields               []DataField
	TraceType                TraceType
	TransducerType           uint8
	Unit                     uint16
	RequestMid               uint16
	NumberOfParameterFields  uint16
	ParameterFields          []DataField
	NumberOfResolutionFields uint16
	ResolutionFields         []DataField
	NumberOfTraceSamples     uint32
	TraceSamples             []TraceSample
}

func (MID0900rev3) MidRevision() (uint16, uint16) { return 900, 3 }

func (m MID0900rev3) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint32(e, m.ResultDataID, 10); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.Timestamp, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.ObjectID, 4); err != nil {
		return err
	}
	if err := EncodeObjectType(e, m.ObjectType, 1); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.ReferenceObjectID, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfPIDs, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.DataFields, int(m.NumberOfPIDs), EncodeDataField); err != nil {
		return err
	}
	if err := EncodeTraceType(e, m.TraceType, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.TransducerType, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.Unit, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.RequestMid, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfParameterFields, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.ParameterFields, int(m.NumberOfParameterFields), EncodeDataField); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfResolutionFields, 3); err != nil {
		return err
	}
	if err := codec.WriteList(e, m.ResolutionFields, int(m.NumberOfResolutionFields), EncodeDataField); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.NumberOfTraceSamples, 5); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, 0, 1); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.TraceSamples, 2, int(m.NumberOfTraceSamples), EncodeTraceSample)
}

func decodeMID0900rev3(d *codec.Decoder) (Message, error) {
	var m MID0900rev3
	var err error
	if m.ResultDataID, err = codec.DecodeUint32(d, 10); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.ObjectID, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.ObjectType, err = DecodeObjectType(d, 1); err != nil {
		return nil, err
	}
	if m.ReferenceObjectID, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.NumberOfPIDs, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.DataFields, err = codec.ReadList(d, int(m.NumberOfPIDs), DecodeDataField); err != nil {
		return nil, err
	}
	if m.TraceType, err = DecodeTraceType(d, 2); err != nil {
		return nil, err
	}
	if m.TransducerType, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.Unit, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.RequestMid, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.NumberOfParameterFields, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ParameterFields, err = codec.ReadList(d, int(m.NumberOfParameterFields), DecodeDataField); err != nil {
		return nil, err
	}
	if m.NumberOfResolutionFields, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ResolutionFields, err = codec.ReadList(d, int(m.NumberOfResolutionFields), DecodeDataField); err != nil {
		return nil, err
	}
	if m.NumberOfTraceSamples, err = codec.DecodeUint32(d, 5); err != nil {
		return nil, err
	}
	if _, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.TraceSamples, err = codec.ReadSizedList(d, int(m.NumberOfTraceSamples), 2, DecodeTraceSample); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0900RequestExtraData is the extra_data payload carried inside a
// MID0006 request for MID 0900: which result's trace to return, which
// trace type, and which tool. Not registered — only ever appears nested.
type MID0900RequestExtraData struct {
	Index      uint64
	TraceType  TraceType
	ToolNumber uint16
}

func DecodeMID0900RequestExtraData(d *codec.Decoder) (MID0900RequestExtraData, error) {
	var v MID0900RequestExtraData
	var err error
	if v.Index, err = codec.DecodeUint64(d, 10); err != nil {
		return MID0900RequestExtraData{}, err
	}
	if v.TraceType, err = DecodeTraceType(d, 3); err != nil {
		return MID0900RequestExtraData{}, err
	}
	if v.ToolNumber, err = codec.DecodeUint16(d, 4); err != nil {
		return MID0900RequestExtraData{}, err
	}
	return v, nil
}

func EncodeMID0900RequestExtraData(e *codec.Encoder, v MID0900RequestExtraData) error {
	if err := codec.EncodeUint64(e, v.Index, 10); err != nil {
		return err
	}
	if err := EncodeTraceType(e, v.TraceType, 3); err != nil {
		return err
	}
	return codec.EncodeUint16(e, v.ToolNumber, 4)
}

// MID0900SubscribeExtraData is the extra_data payload carried inside a
// MID0008 subscription for MID 0900. The reference model leaves its field
// list unspecified; it is ported as empty until a concrete layout is
// documented.
type MID0900SubscribeExtraData struct{}

func DecodeMID0900SubscribeExtraData(d *codec.Decoder) (MID0900SubscribeExtraData, error) {
	return MID0900SubscribeExtraData{}, nil
}

func EncodeMID0900SubscribeExtraData(e *codec.Encoder, v MID0900SubscribeExtraData) error {
	return nil
}

// MID0900UnsubscribeExtraData is the extra_data payload carried inside a
// MID0009 unsubscribe for MID 0900. Same unspecified-in-the-reference-model
// situation as MID0900SubscribeExtraData.
type MID0900UnsubscribeExtraData struct{}

func DecodeMID0900UnsubscribeExtraData(d *codec.Decoder) (MID0900UnsubscribeExtraData, error) {
	return MID0900UnsubscribeExtraData{}, nil
}

func EncodeMID0900UnsubscribeExtraData(e *codec.Encoder, v MID0900UnsubscribeExtraData) error {
	return nil
}

// MID0901rev1/rev2/rev3 configure trace plotting parameters. The reference
// model leaves all three revisions as empty placeholders pending a
// documented field layout; this port carries that forward rather than
// inventing a wire shape no source confirms.
type MID0901rev1 struct{}

func (MID0901rev1) MidRevision() (uint16, uint16)        { return 901, 1 }
func (MID0901rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0901rev1(d *codec.Decoder) (Message, error) { return MID0901rev1{}, nil }

type MID0901rev2 struct{}

func (MID0901rev2) MidRevision() (uint16, uint16)        { return 901, 2 }
func (MID0901rev2) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0901rev2(d *codec.Decoder) (Message, error) { return MID0901rev2{}, nil }

type MID0901rev3 struct{}

func (MID0901rev3) MidRevision() (uint16, uint16)        { return 901, 3 }
func (MID0901rev3) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0901rev3(d *codec.Decoder) (Message, error) { return MID0901rev3{}, nil }

// MID0902rev1 reports the tightening result database's capacity and the
// sequence range currently stored.
type MID0902rev1 struct {
	Capacity             uint64
	OldestSequenceNumber uint64
	OldestTime           time.Time
	NewestSequenceNumber uint64
	NewestTime           time.Time
	NumberOfPIDs         uint16
	DataFields           []DataField
}

func (MID0902rev1) MidRevision() (uint16, uint16) { return 902, 1 }

func (m MID0902rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint64(e, m.Capacity, 10); err != nil {
		return err
	}
	if err := codec.EncodeUint64(e, m.OldestSequenceNumber, 10); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.OldestTime, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint64(e, m.NewestSequenceNumber, 10); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.NewestTime, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfPIDs, 3); err != nil {
		return err
	}
	return codec.WriteList(e, m.DataFields, int(m.NumberOfPIDs), EncodeDataField)
}

func decodeMID0902rev1(d *codec.Decoder) (Message, error) {
	var m MID0902rev1
	var err error
	if m.Capacity, err = codec.DecodeUint64(d, 10); err != nil {
		return nil, err
	}
	if m.OldestSequenceNumber, err = codec.DecodeUint64(d, 10); err != nil {
		return nil, err
	}
	if m.OldestTime, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.NewestSequenceNumber, err = codec.DecodeUint64(d, 10); err != nil {
		return nil, err
	}
	if m.NewestTime, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.NumberOfPIDs, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.DataFields, err = codec.ReadList(d, int(m.NumberOfPIDs), DecodeDataField); err != nil {
		return nil, err
	}
	return m, nil
}

func init() {
	register(60, 1, decodeMID0060rev1)
	register(61, 1, decodeMID0061rev1)
	register(61, 2, decodeMID0061rev2)
	register(61, 3, decodeMID0061rev3)
	register(62, 1, decodeMID0062rev1)
	register(63, 1, decodeMID0063rev1)
	register(64, 1, decodeMID0064rev1)
	register(65, 1, decodeMID0065rev1)
	register(66, 1, decodeMID0066rev1)
	register(66, 2, decodeMID0066rev2)
	register(67, 1, decodeMID0067rev1)
	register(900, 1, decodeMID0900rev1)
	register(900, 2, decodeMID0900rev2)
	register(900, 3, decodeMID0900rev3)
	register(901, 1, decodeMID0901rev1)
	register(901, 2, decodeMID0901rev2)
	register(901, 3, decodeMID0901rev3)
	register(902, 1, decodeMID0902rev1)
}
