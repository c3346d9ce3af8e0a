package protocol

import "github.com/dezemand/openprotocol-go/codec"

// MID9999rev1 is the transport-level keep-alive probe; empty payload.
type MID9999rev1 struct{}

func (MID9999rev1) MidRevision() (uint16, uint16)        { return 9999, 1 }
func (MID9999rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID9999rev1(d *codec.Decoder) (Message, error) { return MID9999rev1{}, nil }

func init() {
	register(9999, 1, decodeMID9999rev1)
}
