package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// MID0080rev1 requests the controller's current system time; empty payload.
type MID0080rev1 struct{}

func (MID0080rev1) MidRevision() (uint16, uint16)        { return 80, 1 }
func (MID0080rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0080rev1(d *codec.Decoder) (Message, error) { return MID0080rev1{}, nil }

// MID0081rev1 reports the controller's current system time.
type MID0081rev1 struct {
	Time time.Time
}

func (MID0081rev1) MidRevision() (uint16, uint16) { return 81, 1 }

func (m MID0081rev1) EncodePayload(e *codec.Encoder) error {
	return EncodeTimestampSized(e, m.Time, 19)
}

func decodeMID0081rev1(d *codec.Decoder) (Message, error) {
	t, err := DecodeTimestampSized(d, 19)
	if err != nil {
		return nil, err
	}
	return MID0081rev1{Time: t}, nil
}

// MID0082rev1 sets the controller's system time.
type MID0082rev1 struct {
	Time time.Time
}

func (MID0082rev1) MidRevision() (uint16, uint16) { return 82, 1 }

func (m MID0082rev1) EncodePayload(e *codec.Encoder) error {
	return EncodeTimestampSized(e, m.Time, 19)
}

func decodeMID0082rev1(d *codec.Decoder) (Message, error) {
	t, err := DecodeTimestampSized(d, 19)
	if err != nil {
		return nil, err
	}
	return MID0082rev1{Time: t}, nil
}

func init() {
	register(80, 1, decodeMID0080rev1)
	register(81, 1, decodeMID0081rev1)
	register(82, 1, decodeMID0082rev1)
}
