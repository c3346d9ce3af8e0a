package protocol

import "github.com/dezemand/openprotocol-go/codec"

// MID0050rev1 sends a VIN down to the controller.
type MID0050rev1 struct {
	VinNumber string
}

func (MID0050rev1) MidRevision() (uint16, uint16) { return 50, 1 }

func (m MID0050rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeString(e, m.VinNumber, 25)
}

func decodeMID0050rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.DecodeString(d, 25)
	if err != nil {
		return nil, err
	}
	return MID0050rev1{VinNumber: v}, nil
}

// MID0051rev1 subscribes to VIN and other identifier updates; empty payload.
type MID0051rev1 struct{}

func (MID0051rev1) MidRevision() (uint16, uint16)        { return 51, 1 }
func (MID0051rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0051rev1(d *codec.Decoder) (Message, error) { return MID0051rev1{}, nil }

// MID0052rev1 reports the current VIN.
type MID0052rev1 struct {
	VinNumber string
}

func (MID0052rev1) MidRevision() (uint16, uint16) { return 52, 1 }

func (m MID0052rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeString(e, m.VinNumber, 25)
}

func decodeMID0052rev1(d *codec.Decoder) (Message, error) {
	v, err := codec.DecodeString(d, 25)
	if err != nil {
		return nil, err
	}
	return MID0052rev1{VinNumber: v}, nil
}

// MID0052rev2 adds up to three additional identifier parts over rev1.
type MID0052rev2 struct {
	VinNumber             string
	AdditionalIdentifiers []string
}

func (MID0052rev2) MidRevision() (uint16, uint16) { return 52, 2 }

func (m MID0052rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeString(e, m.VinNumber, 25); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.AdditionalIdentifiers, 25, 3, codec.EncodeString)
}

func decodeMID0052rev2(d *codec.Decoder) (Message, error) {
	var m MID0052rev2
	var err error
	if m.VinNumber, err = codec.DecodeString(d, 25); err != nil {
		return nil, err
	}
	if m.AdditionalIdentifiers, err = codec.ReadSizedList(d, 3, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0053rev1 acknowledges receipt of the VIN; empty payload.
type MID0053rev1 struct{}

func (MID0053rev1) MidRevision() (uint16, uint16)        { return 53, 1 }
func (MID0053rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0053rev1(d *codec.Decoder) (Message, error) { return MID0053rev1{}, nil }

// MID0054rev1 unsubscribes from identifier updates; empty payload.
type MID0054rev1 struct{}

func (MID0054rev1) MidRevision() (uint16, uint16)        { return 54, 1 }
func (MID0054rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0054rev1(d *codec.Decoder) (Message, error) { return MID0054rev1{}, nil }

// MID0054rev2 is a wire-identical revision bump of MID0054rev1.
type MID0054rev2 struct{}

func (MID0054rev2) MidRevision() (uint16, uint16)        { return 54, 2 }
func (MID0054rev2) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0054rev2(d *codec.Decoder) (Message, error) { return MID0054rev2{}, nil }

func init() {
	register(50, 1, decodeMID0050rev1)
	register(51, 1, decodeMID0051rev1)
	register(52, 1, decodeMID0052rev1)
	register(52, 2, decodeMID0052rev2)
	register(53, 1, decodeMID0053rev1)
	register(54, 1, decodeMID0054rev1)
	register(54, 2, decodeMID0054rev2)
}
