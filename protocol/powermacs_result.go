package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// MID0105rev1 subscribes to PowerMACS tightening result data; empty payload.
type MID0105rev1 struct{}

func (MID0105rev1) MidRevision() (uint16, uint16)        { return 105, 1 }
func (MID0105rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0105rev1(d *codec.Decoder) (Message, error) { return MID0105rev1{}, nil }

// MID0106rev1 reports the PowerMACS station summary for the last result.
type MID0106rev1 struct {
	StationNumber  uint16
	StationName    string
	BatchSize      uint16
	BatchCounter   uint16
	BatchStartTime time.Time
	BatchStatus    uint8
	TighteningID   uint32
}

func (MID0106rev1) MidRevision() (uint16, uint16) { return 106, 1 }

func (m MID0106rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.StationNumber, 4); err != nil {
		return err
	}
	if err := codec.EncodeString(e, m.StationName, 25); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.BatchSize, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.BatchCounter, 4); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.BatchStartTime, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.BatchStatus, 1); err != nil {
		return err
	}
	return codec.EncodeUint32(e, m.TighteningID, 10)
}

func decodeMID0106rev1(d *codec.Decoder) (Message, error) {
	var m MID0106rev1
	var err error
	if m.StationNumber, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.StationName, err = codec.DecodeString(d, 25); err != nil {
		return nil, err
	}
	if m.BatchSize, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.BatchCounter, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.BatchStartTime, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.BatchStatus, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.TighteningID, err = codec.DecodeUint32(d, 10); err != nil {
		return nil, err
	}
	return m, nil
}

// BoltData is one bolt's torque/angle result within a MID0107rev1 report.
// Despite the name overlap, this is a distinct wire type from mode.go's
// ModeBoltData: same name in the reference model, different shape.
type BoltData struct {
	BoltNumber uint32
	BoltTorque uint32
	BoltAngle  uint16
}

func DecodeBoltData(d *codec.Decoder) (BoltData, error) {
	var b BoltData
	var err error
	if b.BoltNumber, err = codec.DecodeUint32(d, 4); err != nil {
		return BoltData{}, err
	}
	if b.BoltTorque, err = codec.DecodeUint32(d, 6); err != nil {
		return BoltData{}, err
	}
	if b.BoltAngle, err = codec.DecodeUint16(d, 5); err != nil {
		return BoltData{}, err
	}
	return b, nil
}

func EncodeBoltData(e *codec.Encoder, b BoltData) error {
	if err := codec.EncodeUint32(e, b.BoltNumber, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, b.BoltTorque, 6); err != nil {
		return err
	}
	return codec.EncodeUint16(e, b.BoltAngle, 5)
}

// MID0107rev1 reports per-bolt torque/angle data for the last PowerMACS
// tightening result.
type MID0107rev1 struct {
	NumberOfBolts uint16
	BoltData      []BoltData
}

func (MID0107rev1) MidRevision() (uint16, uint16) { return 107, 1 }

func (m MID0107rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.NumberOfBolts, 3); err != nil {
		return err
	}
	return codec.WriteList(e, m.BoltData, int(m.NumberOfBolts), EncodeBoltData)
}

func decodeMID0107rev1(d *codec.Decoder) (Message, error) {
	var m MID0107rev1
	var err error
	if m.NumberOfBolts, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.BoltData, err = codec.ReadList(d, int(m.NumberOfBolts), DecodeBoltData); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0108rev1 acknowledges receipt of PowerMACS tightening result data;
// empty payload.
type MID0108rev1 struct{}

func (MID0108rev1) MidRevision() (uint16, uint16)        { return 108, 1 }
func (MID0108rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0108rev1(d *codec.Decoder) (Message, error) { return MID0108rev1{}, nil }

// MID0109rev1 unsubscribes from PowerMACS tightening result data; empty
// payload.
type MID0109rev1 struct{}

func (MID0109rev1) MidRevision() (uint16, uint16)        { return 109, 1 }
func (MID0109rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0109rev1(d *codec.Decoder) (Message, error) { return MID0109rev1{}, nil }

func init() {
	register(105, 1, decodeMID0105rev1)
	register(106, 1, decodeMID0106rev1)
	register(107, 1, decodeMID0107rev1)
	register(108, 1, decodeMID0108rev1)
	register(109, 1, decodeMID0109rev1)
}
