package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// MID0040rev6 requests tool data for a given tool number.
type MID0040rev6 struct {
	ToolNumber uint16
}

func (MID0040rev6) MidRevision() (uint16, uint16) { return 40, 6 }

func (m MID0040rev6) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint16(e, m.ToolNumber, 4)
}

func decodeMID0040rev6(d *codec.Decoder) (Message, error) {
	n, err := codec.DecodeUint16(d, 4)
	if err != nil {
		return nil, err
	}
	return MID0040rev6{ToolNumber: n}, nil
}

// MID0041rev1 uploads tool data.
type MID0041rev1 struct {
	ToolSerialNumber       string
	NumberOfTightenings    uint32
	LastCalibrationDate    time.Time
	ControllerSerialNumber string
}

func (MID0041rev1) MidRevision() (uint16, uint16) { return 41, 1 }

func (m MID0041rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeString(e, m.ToolSerialNumber, 14); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.NumberOfTightenings, 10); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.LastCalibrationDate, 19); err != nil {
		return err
	}
	return codec.EncodeString(e, m.ControllerSerialNumber, 10)
}

func decodeMID0041rev1(d *codec.Decoder) (Message, error) {
	var m MID0041rev1
	var err error
	if m.ToolSerialNumber, err = codec.DecodeString(d, 14); err != nil {
		return nil, err
	}
	if m.NumberOfTightenings, err = codec.DecodeUint32(d, 10); err != nil {
		return nil, err
	}
	if m.LastCalibrationDate, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.ControllerSerialNumber, err = codec.DecodeString(d, 10); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0041rev2 adds calibration and service-interval fields over rev1.
type MID0041rev2 struct {
	ToolSerialNumber        string
	NumberOfTightenings     uint32
	LastCalibrationDate     time.Time
	ControllerSerialNumber  string
	CalibrationValue        uint32
	LastServiceDate         time.Time
	TighteningsSinceService uint32
	ToolType                uint8
}

func (MID0041rev2) MidRevision() (uint16, uint16) { return 41, 2 }

func (m MID0041rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeString(e, m.ToolSerialNumber, 14); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.NumberOfTightenings, 10); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.LastCalibrationDate, 19); err != nil {
		return err
	}
	if err := codec.EncodeString(e, m.ControllerSerialNumber, 10); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.CalibrationValue, 6); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.LastServiceDate, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.TighteningsSinceService, 10); err != nil {
		return err
	}
	return codec.EncodeUint8(e, m.ToolType, 2)
}

func decodeMID0041rev2(d *codec.Decoder) (Message, error) {
	var m MID0041rev2
	var err error
	if m.ToolSerialNumber, err = codec.DecodeString(d, 14); err != nil {
		return nil, err
	}
	if m.NumberOfTightenings, err = codec.DecodeUint32(d, 10); err != nil {
		return nil, err
	}
	if m.LastCalibrationDate, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.ControllerSerialNumber, err = codec.DecodeString(d, 10); err != nil {
		return nil, err
	}
	if m.CalibrationValue, err = codec.DecodeUint32(d, 6); err != nil {
		return nil, err
	}
	if m.LastServiceDate, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.TighteningsSinceService, err = codec.DecodeUint32(d, 10); err != nil {
		return nil, err
	}
	if m.ToolType, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0042rev2 disables a tool.
type MID0042rev2 struct {
	ToolNumber uint16
	DisableType uint8
}

func (MID0042rev2) MidRevision() (uint16, uint16) { return 42, 2 }

func (m MID0042rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.ToolNumber, 4); err != nil {
		return err
	}
	return codec.EncodeUint8(e, m.DisableType, 2)
}

func decodeMID0042rev2(d *codec.Decoder) (Message, error) {
	var m MID0042rev2
	var err error
	if m.ToolNumber, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.DisableType, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0043rev2 enables a tool.
type MID0043rev2 struct {
	ToolNumber uint16
}

func (MID0043rev2) MidRevision() (uint16, uint16) { return 43, 2 }

func (m MID0043rev2) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint16(e, m.ToolNumber, 4)
}

func decodeMID0043rev2(d *codec.Decoder) (Message, error) {
	n, err := codec.DecodeUint16(d, 4)
	if err != nil {
		return nil, err
	}
	return MID0043rev2{ToolNumber: n}, nil
}

// MID0044rev1 requests permission to disconnect the tool; empty payload.
type MID0044rev1 struct{}

func (MID0044rev1) MidRevision() (uint16, uint16)        { return 44, 1 }
func (MID0044rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0044rev1(d *codec.Decoder) (Message, error) { return MID0044rev1{}, nil }

// MID0045rev1 sets the tool's calibration value.
type MID0045rev1 struct {
	CalibrationValueUnit uint8
	CalibrationValue     uint32
}

func (MID0045rev1) MidRevision() (uint16, uint16) { return 45, 1 }

func (m MID0045rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint8(e, m.CalibrationValueUnit, 1); err != nil {
		return err
	}
	return codec.EncodeUint32(e, m.CalibrationValue, 6)
}

func decodeMID0045rev1(d *codec.Decoder) (Message, error) {
	var m MID0045rev1
	var err error
	if m.CalibrationValueUnit, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.CalibrationValue, err = codec.DecodeUint32(d, 6); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0045rev2 adds a channel number over rev1.
type MID0045rev2 struct {
	CalibrationValueUnit uint8
	CalibrationValue     uint32
	ChannelNumber        uint8
}

func (MID0045rev2) MidRevision() (uint16, uint16) { return 45, 2 }

func (m MID0045rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint8(e, m.CalibrationValueUnit, 1); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.CalibrationValue, 6); err != nil {
		return err
	}
	return codec.EncodeUint8(e, m.ChannelNumber, 2)
}

func decodeMID0045rev2(d *codec.Decoder) (Message, error) {
	var m MID0045rev2
	var err error
	if m.CalibrationValueUnit, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.CalibrationValue, err = codec.DecodeUint32(d, 6); err != nil {
		return nil, err
	}
	if m.ChannelNumber, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0046rev1 designates the primary tool on a multi-tool channel.
type MID0046rev1 struct {
	PrimaryTool uint8
}

func (MID0046rev1) MidRevision() (uint16, uint16) { return 46, 1 }

func (m MID0046rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint8(e, m.PrimaryTool, 2)
}

func decodeMID0046rev1(d *codec.Decoder) (Message, error) {
	n, err := codec.DecodeUint8(d, 2)
	if err != nil {
		return nil, err
	}
	return MID0046rev1{PrimaryTool: n}, nil
}

// MID0047rev1 requests a tool-pairing action.
type MID0047rev1 struct {
	PairingHandlingType uint8
}

func (MID0047rev1) MidRevision() (uint16, uint16) { return 47, 1 }

func (m MID0047rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint8(e, m.PairingHandlingType, 2)
}

func decodeMID0047rev1(d *codec.Decoder) (Message, error) {
	n, err := codec.DecodeUint8(d, 2)
	if err != nil {
		return nil, err
	}
	return MID0047rev1{PairingHandlingType: n}, nil
}

// MID0048rev1 reports the current tool-pairing status.
type MID0048rev1 struct {
	PairingStatus uint8
	Timestamp     time.Time
}

func (MID0048rev1) MidRevision() (uint16, uint16) { return 48, 1 }

func (m MID0048rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint8(e, m.PairingStatus, 2); err != nil {
		return err
	}
	return EncodeTimestampSized(e, m.Timestamp, 19)
}

func decodeMID0048rev1(d *codec.Decoder) (Message, error) {
	var m MID0048rev1
	var err error
	if m.PairingStatus, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	return m, nil
}

func init() {
	register(40, 6, decodeMID0040rev6)
	register(41, 1, decodeMID0041rev1)
	register(41, 2, decodeMID0041rev2)
	register(42, 2, decodeMID0042rev2)
	register(43, 2, decodeMID0043rev2)
	register(44, 1, decodeMID0044rev1)
	register(45, 1, decodeMID0045rev1)
	register(45, 2, decodeMID0045rev2)
	register(46, 1, decodeMID0046rev1)
	register(47, 1, decodeMID0047rev1)
	register(48, 1, decodeMID0048rev1)
}
