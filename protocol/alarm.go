package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// ToolReadyStatus reports whether the tool is ready to operate.
type ToolReadyStatus uint8

const (
	ToolReadyStatusNOK ToolReadyStatus = 0
	ToolReadyStatusOK  ToolReadyStatus = 1
)

func DecodeToolReadyStatus(d *codec.Decoder, size int) (ToolReadyStatus, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch ToolReadyStatus(n) {
	case ToolReadyStatusNOK, ToolReadyStatusOK:
		return ToolReadyStatus(n), nil
	default:
		return 0, errInvalidEnumValue("ToolReadyStatus", uint64(n))
	}
}

func EncodeToolReadyStatus(e *codec.Encoder, v ToolReadyStatus, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// ControllerReadyStatus reports whether the controller is ready to operate.
type ControllerReadyStatus uint8

const (
	ControllerReadyStatusNOK ControllerReadyStatus = 0
	ControllerReadyStatusOK  ControllerReadyStatus = 1
)

func DecodeControllerReadyStatus(d *codec.Decoder, size int) (ControllerReadyStatus, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch ControllerReadyStatus(n) {
	case ControllerReadyStatusNOK, ControllerReadyStatusOK:
		return ControllerReadyStatus(n), nil
	default:
		return 0, errInvalidEnumValue("ControllerReadyStatus", uint64(n))
	}
}

func EncodeControllerReadyStatus(e *codec.Encoder, v ControllerReadyStatus, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// AlarmStatus reports whether an alarm is currently active.
type AlarmStatus uint8

const (
	AlarmStatusNoAlarm     AlarmStatus = 0
	AlarmStatusAlarmActive AlarmStatus = 1
)

func DecodeAlarmStatus(d *codec.Decoder, size int) (AlarmStatus, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch AlarmStatus(n) {
	case AlarmStatusNoAlarm, AlarmStatusAlarmActive:
		return AlarmStatus(n), nil
	default:
		return 0, errInvalidEnumValue("AlarmStatus", uint64(n))
	}
}

func EncodeAlarmStatus(e *codec.Encoder, v AlarmStatus, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// MID0070rev1 subscribes to alarms on the controller; empty payload.
type MID0070rev1 struct{}

func (MID0070rev1) MidRevision() (uint16, uint16)        { return 70, 1 }
func (MID0070rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0070rev1(d *codec.Decoder) (Message, error) { return MID0070rev1{}, nil }

// MID0071rev1 is sent when an alarm appears in the controller.
type MID0071rev1 struct {
	ErrorCode             string
	ControllerReadyStatus ControllerReadyStatus
	ToolReadyStatus       ToolReadyStatus
	Timestamp             time.Time
}

func (MID0071rev1) MidRevision() (uint16, uint16) { return 71, 1 }

func (m MID0071rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeString(e, m.ErrorCode, 4); err != nil {
		return err
	}
	if err := EncodeControllerReadyStatus(e, m.ControllerReadyStatus, 1); err != nil {
		return err
	}
	if err := EncodeToolReadyStatus(e, m.ToolReadyStatus, 1); err != nil {
		return err
	}
	return EncodeTimestampSized(e, m.Timestamp, 19)
}

func decodeMID0071rev1(d *codec.Decoder) (Message, error) {
	var m MID0071rev1
	var err error
	if m.ErrorCode, err = codec.DecodeString(d, 4); err != nil {
		return nil, err
	}
	if m.ControllerReadyStatus, err = DecodeControllerReadyStatus(d, 1); err != nil {
		return nil, err
	}
	if m.ToolReadyStatus, err = DecodeToolReadyStatus(d, 1); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0072rev1 acknowledges receipt of MID 0071 Alarm; empty payload.
type MID0072rev1 struct{}

func (MID0072rev1) MidRevision() (uint16, uint16)        { return 72, 1 }
func (MID0072rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0072rev1(d *codec.Decoder) (Message, error) { return MID0072rev1{}, nil }

// MID0073rev1 cancels a previously subscribed alarm notification; empty
// payload.
type MID0073rev1 struct{}

func (MID0073rev1) MidRevision() (uint16, uint16)        { return 73, 1 }
func (MID0073rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0073rev1(d *codec.Decoder) (Message, error) { return MID0073rev1{}, nil }

// MID0074rev1 informs that the alarm has been acknowledged on the
// controller.
type MID0074rev1 struct {
	ErrorCode string
}

func (MID0074rev1) MidRevision() (uint16, uint16) { return 74, 1 }

func (m MID0074rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeString(e, m.ErrorCode, 4)
}

func decodeMID0074rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.DecodeString(d, 4)
	if err != nil {
		return nil, err
	}
	return MID0074rev1{ErrorCode: v}, nil
}

// MID0075rev1 acknowledges receipt of MID 0074 Alarm Acknowledged on
// Controller; empty payload.
type MID0075rev1 struct{}

func (MID0075rev1) MidRevision() (uint16, uint16)        { return 75, 1 }
func (MID0075rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0075rev1(d *codec.Decoder) (Message, error) { return MID0075rev1{}, nil }

// MID0076rev1 reports alarm status after subscription.
type MID0076rev1 struct {
	AlarmStatus           AlarmStatus
	ErrorCode             string
	ControllerReadyStatus ControllerReadyStatus
	ToolReadyStatus       ToolReadyStatus
	Timestamp             time.Time
}

func (MID0076rev1) MidRevision() (uint16, uint16) { return 76, 1 }

func (m MID0076rev1) EncodePayload(e *codec.Encoder) error {
	if err := EncodeAlarmStatus(e, m.AlarmStatus, 1); err != nil {
		return err
	}
	if err := codec.EncodeString(e, m.ErrorCode, 4); err != nil {
		return err
	}
	if err := EncodeControllerReadyStatus(e, m.ControllerReadyStatus, 1); err != nil {
		return err
	}
	if err := EncodeToolReadyStatus(e, m.ToolReadyStatus, 1); err != nil {
		return err
	}
	return EncodeTimestampSized(e, m.Timestamp, 19)
}

func decodeMID0076rev1(d *codec.Decoder) (Message, error) {
	var m MID0076rev1
	var err error
	if m.AlarmStatus, err = DecodeAlarmStatus(d, 1); err != nil {
		return nil, err
	}
	if m.ErrorCode, err = codec.DecodeString(d, 4); err != nil {
		return nil, err
	}
	if m.ControllerReadyStatus, err = DecodeControllerReadyStatus(d, 1); err != nil {
		return nil, err
	}
	if m.ToolReadyStatus, err = DecodeToolReadyStatus(d, 1); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0077rev1 acknowledges receipt of MID 0076 Alarm Status; empty payload.
type MID0077rev1 struct{}

func (MID0077rev1) MidRevision() (uint16, uint16)        { return 77, 1 }
func (MID0077rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0077rev1(d *codec.Decoder) (Message, error) { return MID0077rev1{}, nil }

// MID0078rev1 remotely acknowledges the current alarm on the controller.
type MID0078rev1 struct {
	ErrorCode string
}

func (MID0078rev1) MidRevision() (uint16, uint16) { return 78, 1 }

func (m MID0078rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeString(e, m.ErrorCode, 4)
}

func decodeMID0078rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.DecodeString(d, 4)
	if err != nil {
		return nil, err
	}
	return MID0078rev1{ErrorCode: v}, nil
}

// MID1000rev1 reports an alarm appearing in the controller; replaces the
// older MID 0071.
type MID1000rev1 struct {
	ErrorCode        string
	Timestamp        time.Time
	NumberOfDataFields uint16
	// DataFields is a raw byte payload, not a list of DataField records — the
	// reference model declares this field as plain bytes, unlike MID0900's
	// structured data_fields.
	DataFields []uint8
}

func (MID1000rev1) MidRevision() (uint16, uint16) { return 1000, 1 }

func (m MID1000rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeString(e, m.ErrorCode, 5); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.Timestamp, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfDataFields, 3); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.DataFields, 1, int(m.NumberOfDataFields), codec.EncodeUint8)
}

func decodeMID1000rev1(d *codec.Decoder) (Message, error) {
	var m MID1000rev1
	var err error
	if m.ErrorCode, err = codec.DecodeString(d, 5); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.NumberOfDataFields, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.DataFields, err = codec.ReadSizedList(d, int(m.NumberOfDataFields), 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID1001rev1 acknowledges receipt of MID 1000 Alarm; empty payload.
type MID1001rev1 struct{}

func (MID1001rev1) MidRevision() (uint16, uint16)        { return 1001, 1 }
func (MID1001rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID1001rev1(d *codec.Decoder) (Message, error) { return MID1001rev1{}, nil }

func init() {
	register(70, 1, decodeMID0070rev1)
	register(71, 1, decodeMID0071rev1)
	register(72, 1, decodeMID0072rev1)
	register(73, 1, decodeMID0073rev1)
	register(74, 1, decodeMID0074rev1)
	register(75, 1, decodeMID0075rev1)
	register(76, 1, decodeMID0076rev1)
	register(77, 1, decodeMID0077rev1)
	register(78, 1, decodeMID0078rev1)
	register(1000, 1, decodeMID1000rev1)
	register(1001, 1, decodeMID1001rev1)
}
