package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// MID2600rev1 requests the number of modes on the controller; empty payload.
type MID2600rev1 struct{}

func (MID2600rev1) MidRevision() (uint16, uint16)        { return 2600, 1 }
func (MID2600rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID2600rev1(d *codec.Decoder) (Message, error) { return MID2600rev1{}, nil }

// ModeData is one entry in a MID2601rev1 mode list.
type ModeData struct {
	ModeID       uint32
	ModeNameSize uint16
	ModeName     string
}

func DecodeModeData(d *codec.Decoder) (ModeData, error) {
	var m ModeData
	var err error
	if m.ModeID, err = codec.DecodeUint32(d, 4); err != nil {
		return ModeData{}, err
	}
	if m.ModeNameSize, err = codec.DecodeUint16(d, 2); err != nil {
		return ModeData{}, err
	}
	if m.ModeName, err = codec.DecodeString(d, int(m.ModeNameSize)); err != nil {
		return ModeData{}, err
	}
	return m, nil
}

func EncodeModeData(e *codec.Encoder, m ModeData) error {
	if err := codec.EncodeUint32(e, m.ModeID, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.ModeNameSize, 2); err != nil {
		return err
	}
	return codec.EncodeString(e, m.ModeName, int(m.ModeNameSize))
}

// MID2601rev1 lists every mode defined on the controller.
type MID2601rev1 struct {
	NumberOfModes uint16
	ModeData      []ModeData
}

func (MID2601rev1) MidRevision() (uint16, uint16) { return 2601, 1 }

func (m MID2601rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.NumberOfModes, 3); err != nil {
		return err
	}
	return codec.WriteList(e, m.ModeData, int(m.NumberOfModes), EncodeModeData)
}

func decodeMID2601rev1(d *codec.Decoder) (Message, error) {
	var m MID2601rev1
	var err error
	if m.NumberOfModes, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.ModeData, err = codec.ReadList(d, int(m.NumberOfModes), DecodeModeData); err != nil {
		return nil, err
	}
	return m, nil
}

// MID2602rev1 requests detailed data for a single mode.
type MID2602rev1 struct {
	ModeID uint32
}

func (MID2602rev1) MidRevision() (uint16, uint16) { return 2602, 1 }

func (m MID2602rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.ModeID, 4, codec.EncodeUint32)
}

func decodeMID2602rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 4, codec.DecodeUint32)
	if err != nil {
		return nil, err
	}
	return MID2602rev1{ModeID: id}, nil
}

// ModeBoltData is one bolt assignment in a MID2603rev1 mode. Named to avoid
// colliding with the BoltData type powermacs_result.go defines for an
// unrelated, differently-shaped wire struct of the same name.
type ModeBoltData struct {
	PsetID      uint16
	ToolNumber  uint16
	BoltNumber  uint32
	BoltNameSize uint16
	BoltName    string
}

func DecodeModeBoltData(d *codec.Decoder) (ModeBoltData, error) {
	var b ModeBoltData
	var err error
	if b.PsetID, err = codec.DecodeUint16(d, 3); err != nil {
		return ModeBoltData{}, err
	}
	if b.ToolNumber, err = codec.DecodeUint16(d, 3); err != nil {
		return ModeBoltData{}, err
	}
	if b.BoltNumber, err = codec.DecodeUint32(d, 4); err != nil {
		return ModeBoltData{}, err
	}
	if b.BoltNameSize, err = codec.DecodeUint16(d, 2); err != nil {
		return ModeBoltData{}, err
	}
	if b.BoltName, err = codec.DecodeString(d, int(b.BoltNameSize)); err != nil {
		return ModeBoltData{}, err
	}
	return b, nil
}

func EncodeModeBoltData(e *codec.Encoder, b ModeBoltData) error {
	if err := codec.EncodeUint16(e, b.PsetID, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, b.ToolNumber, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint32(e, b.BoltNumber, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, b.BoltNameSize, 2); err != nil {
		return err
	}
	return codec.EncodeString(e, b.BoltName, int(b.BoltNameSize))
}

// MID2603rev1 provides a mode's full detail including its bolt list.
type MID2603rev1 struct {
	ModeID        uint32
	ModeNameSize  uint16
	ModeName      string
	NumberOfBolts uint16
	BoltData      []ModeBoltData
}

func (MID2603rev1) MidRevision() (uint16, uint16) { return 2603, 1 }

func (m MID2603rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint32(e, m.ModeID, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.ModeNameSize, 2); err != nil {
		return err
	}
	if err := codec.EncodeString(e, m.ModeName, int(m.ModeNameSize)); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.NumberOfBolts, 3); err != nil {
		return err
	}
	return codec.WriteList(e, m.BoltData, int(m.NumberOfBolts), EncodeModeBoltData)
}

func decodeMID2603rev1(d *codec.Decoder) (Message, error) {
	var m MID2603rev1
	var err error
	if m.ModeID, err = codec.DecodeUint32(d, 4); err != nil {
		return nil, err
	}
	if m.ModeNameSize, err = codec.DecodeUint16(d, 2); err != nil {
		return nil, err
	}
	if m.ModeName, err = codec.DecodeString(d, int(m.ModeNameSize)); err != nil {
		return nil, err
	}
	if m.NumberOfBolts, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	if m.BoltData, err = codec.ReadList(d, int(m.NumberOfBolts), DecodeModeBoltData); err != nil {
		return nil, err
	}
	return m, nil
}

// MID2604rev1 confirms a mode selection.
type MID2604rev1 struct {
	ModeID        uint32
	LastChangeDate time.Time
	NumberOfBolts uint16
}

func (MID2604rev1) MidRevision() (uint16, uint16) { return 2604, 1 }

func (m MID2604rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.ModeID, 4, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.LastChangeDate, 19, EncodeTimestampSized); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 3, m.NumberOfBolts, 3, codec.EncodeUint16)
}

func decodeMID2604rev1(d *codec.Decoder) (Message, error) {
	var m MID2604rev1
	var err error
	if m.ModeID, err = codec.ReadNumberedField(d, 1, 4, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.LastChangeDate, err = codec.ReadNumberedField(d, 2, 19, DecodeTimestampSized); err != nil {
		return nil, err
	}
	if m.NumberOfBolts, err = codec.ReadNumberedField(d, 3, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID2605rev1 acknowledges a mode selection; empty payload.
type MID2605rev1 struct{}

func (MID2605rev1) MidRevision() (uint16, uint16)        { return 2605, 1 }
func (MID2605rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID2605rev1(d *codec.Decoder) (Message, error) { return MID2605rev1{}, nil }

// MID2606rev1 requests mode selection by ID.
type MID2606rev1 struct {
	ModeID uint32
}

func (MID2606rev1) MidRevision() (uint16, uint16) { return 2606, 1 }

func (m MID2606rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.ModeID, 4, codec.EncodeUint32)
}

func decodeMID2606rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 4, codec.DecodeUint32)
	if err != nil {
		return nil, err
	}
	return MID2606rev1{ModeID: id}, nil
}

func init() {
	register(2600, 1, decodeMID2600rev1)
	register(2601, 1, decodeMID2601rev1)
	register(2602, 1, decodeMID2602rev1)
	register(2603, 1, decodeMID2603rev1)
	register(2604, 1, decodeMID2604rev1)
	register(2605, 1, decodeMID2605rev1)
	register(2606, 1, decodeMID2606rev1)
}
