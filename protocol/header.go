package protocol

import "github.com/dezemand/openprotocol-go/codec"

// HeaderSize is the fixed width, in bytes, of every Open Protocol frame
// header — independent of the variable-length payload that follows it.
const HeaderSize = 20

// Header is the fixed 20-byte ASCII-framed header that precedes every
// Open Protocol payload. Every field past length/mid is optional: a
// controller that doesn't use header sequencing sends spaces, which decode
// to a nil pointer.
type Header struct {
	Length            uint16
	Mid               uint16
	Revision          *uint16
	NoAckFlag         *bool
	StationID         *uint8
	SpindleID         *uint8
	SequenceNumber    *uint8
	MessageParts      *uint8
	MessagePartNumber *uint8
}

// RevisionNumber returns the dispatch revision the message registry keys
// on. A missing or explicit-1/0 revision both normalize to 1, mirroring
// controllers that omit the field entirely on the oldest wire revision.
func (h Header) RevisionNumber() uint16 {
	if h.Revision == nil {
		return 1
	}
	switch *h.Revision {
	case 0, 1:
		return 1
	default:
		return *h.Revision
	}
}

// DecodeHeader reads the fixed 20-byte header shape from d.
func DecodeHeader(d *codec.Decoder) (Header, error) {
	var h Header
	var err error

	h.Length, err = codec.DecodeUint16(d, 4)
	if err != nil {
		return Header{}, err
	}
	h.Mid, err = codec.DecodeUint16(d, 4)
	if err != nil {
		return Header{}, err
	}
	h.Revision, err = codec.DecodeOptional(d, 3, codec.DecodeUint16)
	if err != nil {
		return Header{}, err
	}
	h.NoAckFlag, err = codec.DecodeOptional(d, 1, codec.DecodeBool)
	if err != nil {
		return Header{}, err
	}
	h.StationID, err = codec.DecodeOptional(d, 2, codec.DecodeUint8)
	if err != nil {
		return Header{}, err
	}
	h.SpindleID, err = codec.DecodeOptional(d, 2, codec.DecodeUint8)
	if err != nil {
		return Header{}, err
	}
	h.SequenceNumber, err = codec.DecodeOptional(d, 2, codec.DecodeUint8)
	if err != nil {
		return Header{}, err
	}
	h.MessageParts, err = codec.DecodeOptional(d, 1, codec.DecodeUint8)
	if err != nil {
		return Header{}, err
	}
	h.MessagePartNumber, err = codec.DecodeOptional(d, 1, codec.DecodeUint8)
	if err != nil {
		return Header{}, err
	}
	return h, nil
}

// EncodeHeader writes the fixed 20-byte header shape to e.
func EncodeHeader(e *codec.Encoder, h Header) error {
	if err := codec.EncodeUint16(e, h.Length, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, h.Mid, 4); err != nil {
		return err
	}
	if err := codec.EncodeOptional(e, h.Revision, 3, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.EncodeOptional(e, h.NoAckFlag, 1, codec.EncodeBool); err != nil {
		return err
	}
	if err := codec.EncodeOptional(e, h.StationID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.EncodeOptional(e, h.SpindleID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.EncodeOptional(e, h.SequenceNumber, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.EncodeOptional(e, h.MessageParts, 1, codec.EncodeUint8); err != nil {
		return err
	}
	return codec.EncodeOptional(e, h.MessagePartNumber, 1, codec.EncodeUint8)
}
