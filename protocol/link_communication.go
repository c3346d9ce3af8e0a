package protocol

import "github.com/dezemand/openprotocol-go/codec"

// MID9998rev1 reports an acknowledge error for header-sequence-numbered
// traffic. Unlike MID0004, error_code here is a plain 4-digit number, not
// the ErrorCode struct.
type MID9998rev1 struct {
	MidNumber uint16
	ErrorCode uint16
}

func (MID9998rev1) MidRevision() (uint16, uint16) { return 9998, 1 }

func (m MID9998rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.MidNumber, 4); err != nil {
		return err
	}
	return codec.EncodeUint16(e, m.ErrorCode, 4)
}

func decodeMID9998rev1(d *codec.Decoder) (Message, error) {
	var m MID9998rev1
	var err error
	if m.MidNumber, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.ErrorCode, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	return m, nil
}

// MID9997rev1 acknowledges a header-sequence-numbered message.
type MID9997rev1 struct {
	MidNumber uint16
}

func (MID9997rev1) MidRevision() (uint16, uint16) { return 9997, 1 }

func (m MID9997rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint16(e, m.MidNumber, 4)
}

func decodeMID9997rev1(d *codec.Decoder) (Message, error) {
	n, err := codec.DecodeUint16(d, 4)
	if err != nil {
		return nil, err
	}
	return MID9997rev1{MidNumber: n}, nil
}

func init() {
	register(9998, 1, decodeMID9998rev1)
	register(9997, 1, decodeMID9997rev1)
}
