package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// MID0090rev1 subscribes to multi-spindle status notifications; empty
// payload. For PowerFocus controllers the subscription must be addressed to
// the sync master.
type MID0090rev1 struct{}

func (MID0090rev1) MidRevision() (uint16, uint16)        { return 90, 1 }
func (MID0090rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0090rev1(d *codec.Decoder) (Message, error) { return MID0090rev1{}, nil }

// SpindleStatus is one spindle's status within a MID0091rev1 report.
type SpindleStatus struct {
	SpindleNumber uint8
	ChannelID     uint8
	OverallStatus uint8
}

func DecodeSpindleStatus(d *codec.Decoder) (SpindleStatus, error) {
	var s SpindleStatus
	var err error
	if s.SpindleNumber, err = codec.DecodeUint8(d, 2); err != nil {
		return SpindleStatus{}, err
	}
	if s.ChannelID, err = codec.DecodeUint8(d, 2); err != nil {
		return SpindleStatus{}, err
	}
	if s.OverallStatus, err = codec.DecodeUint8(d, 1); err != nil {
		return SpindleStatus{}, err
	}
	return s, nil
}

func EncodeSpindleStatus(e *codec.Encoder, s SpindleStatus) error {
	if err := codec.EncodeUint8(e, s.SpindleNumber, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, s.ChannelID, 2); err != nil {
		return err
	}
	return codec.EncodeUint8(e, s.OverallStatus, 1)
}

// MID0091rev1 reports the result of a synchronized multi-spindle
// tightening, sent after each sync tightening.
type MID0091rev1 struct {
	NumberOfSpindles  uint8
	SpindlesRunning   uint8
	SyncTighteningID  uint32
	Timestamp         time.Time
	SyncOverallStatus uint8
	SpindleStatuses   []SpindleStatus
}

func (MID0091rev1) MidRevision() (uint16, uint16) { return 91, 1 }

func (m MID0091rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint8(e, m.NumberOfSpindles, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.SpindlesRunning, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, m.SyncTighteningID, 5); err != nil {
		return err
	}
	if err := EncodeTimestampSized(e, m.Timestamp, 19); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, m.SyncOverallStatus, 1); err != nil {
		return err
	}
	return codec.WriteList(e, m.SpindleStatuses, int(m.NumberOfSpindles), EncodeSpindleStatus)
}

func decodeMID0091rev1(d *codec.Decoder) (Message, error) {
	var m MID0091rev1
	var err error
	if m.NumberOfSpindles, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.SpindlesRunning, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.SyncTighteningID, err = codec.DecodeUint32(d, 5); err != nil {
		return nil, err
	}
	if m.Timestamp, err = DecodeTimestampSized(d, 19); err != nil {
		return nil, err
	}
	if m.SyncOverallStatus, err = codec.DecodeUint8(d, 1); err != nil {
		return nil, err
	}
	if m.SpindleStatuses, err = codec.ReadList(d, int(m.NumberOfSpindles), DecodeSpindleStatus); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0092rev1 acknowledges receipt of a MID0091rev1 report; empty payload.
type MID0092rev1 struct{}

func (MID0092rev1) MidRevision() (uint16, uint16)        { return 92, 1 }
func (MID0092rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0092rev1(d *codec.Decoder) (Message, error) { return MID0092rev1{}, nil }

// MID0093rev1 cancels a previously subscribed multi-spindle status
// notification; empty payload.
type MID0093rev1 struct{}

func (MID0093rev1) MidRevision() (uint16, uint16)        { return 93, 1 }
func (MID0093rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0093rev1(d *codec.Decoder) (Message, error) { return MID0093rev1{}, nil }

func init() {
	register(90, 1, decodeMID0090rev1)
	register(91, 1, decodeMID0091rev1)
	register(92, 1, decodeMID0092rev1)
	register(93, 1, decodeMID0093rev1)
}
