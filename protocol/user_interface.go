package protocol

import "github.com/dezemand/openprotocol-go/codec"

// RemovalCondition selects when a graphical-display message may be
// dismissed.
type RemovalCondition uint8

const (
	RemovalConditionAcknowledgeOrWait RemovalCondition = 0
	RemovalConditionAcknowledge       RemovalCondition = 1
)

func DecodeRemovalCondition(d *codec.Decoder, size int) (RemovalCondition, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch RemovalCondition(n) {
	case RemovalConditionAcknowledgeOrWait, RemovalConditionAcknowledge:
		return RemovalCondition(n), nil
	default:
		return 0, errInvalidEnumValue("RemovalCondition", uint64(n))
	}
}

func EncodeRemovalCondition(e *codec.Encoder, v RemovalCondition, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// MID0110rev1 displays user text on a compact display.
type MID0110rev1 struct {
	UserText string
}

func (MID0110rev1) MidRevision() (uint16, uint16) { return 110, 1 }

func (m MID0110rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeString(e, m.UserText, 4)
}

func decodeMID0110rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.DecodeString(d, 4)
	if err != nil {
		return nil, err
	}
	return MID0110rev1{UserText: v}, nil
}

// MID0111rev1 displays user text on a graphical display.
type MID0111rev1 struct {
	DisplayDuration  uint16
	RemovalCondition RemovalCondition
	Lines            []string
}

func (MID0111rev1) MidRevision() (uint16, uint16) { return 111, 1 }

func (m MID0111rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.DisplayDuration, 4); err != nil {
		return err
	}
	if err := EncodeRemovalCondition(e, m.RemovalCondition, 1); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.Lines, 25, 4, codec.EncodeString)
}

func decodeMID0111rev1(d *codec.Decoder) (Message, error) {
	var m MID0111rev1
	var err error
	if m.DisplayDuration, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.RemovalCondition, err = DecodeRemovalCondition(d, 1); err != nil {
		return nil, err
	}
	if m.Lines, err = codec.ReadSizedList(d, 4, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0113rev1 flashes the tool's green light until the trigger is pulled;
// empty payload.
type MID0113rev1 struct{}

func (MID0113rev1) MidRevision() (uint16, uint16)        { return 113, 1 }
func (MID0113rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0113rev1(d *codec.Decoder) (Message, error) { return MID0113rev1{}, nil }

func init() {
	register(110, 1, decodeMID0110rev1)
	register(111, 1, decodeMID0111rev1)
	register(113, 1, decodeMID0113rev1)
}
