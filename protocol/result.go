package protocol

import "github.com/dezemand/openprotocol-go/codec"

// MID1201rev1 requests the last tightening result upload; empty payload.
type MID1201rev1 struct{}

func (MID1201rev1) MidRevision() (uint16, uint16)        { return 1201, 1 }
func (MID1201rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID1201rev1(d *codec.Decoder) (Message, error) { return MID1201rev1{}, nil }

// MID1201rev2 is a wire-identical revision bump of MID1201rev1.
type MID1201rev2 struct{}

func (MID1201rev2) MidRevision() (uint16, uint16)        { return 1201, 2 }
func (MID1201rev2) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID1201rev2(d *codec.Decoder) (Message, error) { return MID1201rev2{}, nil }

// MID1201rev3 is a wire-identical revision bump of MID1201rev2.
type MID1201rev3 struct{}

func (MID1201rev3) MidRevision() (uint16, uint16)        { return 1201, 3 }
func (MID1201rev3) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID1201rev3(d *codec.Decoder) (Message, error) { return MID1201rev3{}, nil }

// MID1201RequestExtraData is the extra_data payload carried inside a
// MID0006 request for MID 1201: which tightening result index to return
// (zero means "the most recent"). It isn't registered in the message
// registry itself, since it's never framed with its own header — it only
// ever appears nested inside another message's extra_data bytes.
type MID1201RequestExtraData struct {
	Index uint64
}

func DecodeMID1201RequestExtraData(d *codec.Decoder) (MID1201RequestExtraData, error) {
	index, err := codec.DecodeUint64(d, 10)
	if err != nil {
		return MID1201RequestExtraData{}, err
	}
	return MID1201RequestExtraData{Index: index}, nil
}

func EncodeMID1201RequestExtraData(e *codec.Encoder, v MID1201RequestExtraData) error {
	return codec.EncodeUint64(e, v.Index, 10)
}

// MID1201SubscriptionExtraData is the (empty) extra_data payload carried
// inside a MID0008 subscription for MID 1201.
type MID1201SubscriptionExtraData struct{}

func DecodeMID1201SubscriptionExtraData(d *codec.Decoder) (MID1201SubscriptionExtraData, error) {
	return MID1201SubscriptionExtraData{}, nil
}

func EncodeMID1201SubscriptionExtraData(e *codec.Encoder, v MID1201SubscriptionExtraData) error {
	return nil
}

// MID1202rev1 acknowledges receipt of a tightening result; empty payload.
type MID1202rev1 struct{}

func (MID1202rev1) MidRevision() (uint16, uint16)        { return 1202, 1 }
func (MID1202rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID1202rev1(d *codec.Decoder) (Message, error) { return MID1202rev1{}, nil }

// MID1202rev2 is a wire-identical revision bump of MID1202rev1.
type MID1202rev2 struct{}

func (MID1202rev2) MidRevision() (uint16, uint16)        { return 1202, 2 }
func (MID1202rev2) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID1202rev2(d *codec.Decoder) (Message, error) { return MID1202rev2{}, nil }

// MID1203rev1 unsubscribes from tightening result notifications; empty
// payload.
type MID1203rev1 struct{}

func (MID1203rev1) MidRevision() (uint16, uint16)        { return 1203, 1 }
func (MID1203rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID1203rev1(d *codec.Decoder) (Message, error) { return MID1203rev1{}, nil }

func init() {
	register(1201, 1, decodeMID1201rev1)
	register(1201, 2, decodeMID1201rev2)
	register(1201, 3, decodeMID1201rev3)
	register(1202, 1, decodeMID1202rev1)
	register(1202, 2, decodeMID1202rev2)
	register(1203, 1, decodeMID1203rev1)
}
