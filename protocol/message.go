package protocol

import "github.com/dezemand/openprotocol-go/codec"

// Message is implemented by every MID-revision payload type. Mirroring the
// reference implementation's closed message enum, dispatch always happens
// through the registry below rather than through type switches scattered
// across callers.
type Message interface {
	// MidRevision returns the (MID, revision) pair this payload type is
	// registered under.
	MidRevision() (mid uint16, revision uint16)
	// EncodePayload writes this message's payload fields (everything past
	// the 20-byte header) to e.
	EncodePayload(e *codec.Encoder) error
}

type midRevisionKey struct {
	mid      uint16
	revision uint16
}

type payloadDecoder func(d *codec.Decoder) (Message, error)

var registry = map[midRevisionKey]payloadDecoder{}

// register is called from each message family's init() to populate the
// registry. A duplicate (mid, revision) registration is a programming
// error in this package, not a runtime condition, so it panics.
func register(mid, revision uint16, decode payloadDecoder) {
	key := midRevisionKey{mid: mid, revision: revision}
	if _, exists := registry[key]; exists {
		panic("protocol: duplicate registration for MID " + itoa(mid) + " revision " + itoa(revision))
	}
	registry[key] = decode
}

func itoa(n uint16) string {
	if n == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// DecodeMessage reads a header off d, confirms d holds the full frame
// header.Length declares, looks up the registered decoder for the header's
// (mid, RevisionNumber()) pair, and decodes the payload that follows. A
// short buffer is reported the same way every other partial read is —
// *codec.InsufficientBytesError — so transport.FrameReader learns the
// frame's true size up front instead of discovering the shortfall one
// field at a time. Callers other than FrameReader (direct use of this
// function against a complete in-memory frame) still get header/payload
// validation for free; they do not need to check d's length themselves.
// The trailing 0x00 frame terminator is not this function's concern — it
// is checked by the caller once DecodeMessage succeeds (FrameReader does
// this immediately after a successful decode).
func DecodeMessage(d *codec.Decoder) (Header, Message, error) {
	header, err := DecodeHeader(d)
	if err != nil {
		return Header{}, nil, err
	}

	if d.Len() < int(header.Length) {
		return header, nil, &codec.InsufficientBytesError{Have: d.Len(), Need: int(header.Length)}
	}

	decode, ok := registry[midRevisionKey{mid: header.Mid, revision: header.RevisionNumber()}]
	if !ok {
		return header, nil, &UnregisteredMessageError{Mid: header.Mid, Revision: header.RevisionNumber()}
	}

	payload, err := decode(d)
	if err != nil {
		return header, nil, err
	}
	return header, payload, nil
}

// HeaderOverrides customizes the header fields EncodeMessage does not
// derive from the message itself (length and mid are always computed;
// revision defaults to the message's own registered revision but can be
// forced, e.g. to request an older wire revision from the controller).
type HeaderOverrides struct {
	Revision          *uint16
	NoAckFlag         *bool
	StationID         *uint8
	SpindleID         *uint8
	SequenceNumber    *uint8
	MessageParts      *uint8
	MessagePartNumber *uint8
}

// EncodeMessage encodes m's payload, then prepends a header whose length
// and mid are derived from the encoded payload and m.MidRevision(), with
// every other header field taken from overrides.
func EncodeMessage(m Message, overrides HeaderOverrides) ([]byte, error) {
	payloadEncoder := codec.NewEncoder()
	if err := m.EncodePayload(payloadEncoder); err != nil {
		return nil, err
	}
	payload := payloadEncoder.Bytes()

	mid, revision := m.MidRevision()
	header := Header{
		Length:            uint16(HeaderSize + len(payload)),
		Mid:               mid,
		Revision:          overrides.Revision,
		NoAckFlag:         overrides.NoAckFlag,
		StationID:         overrides.StationID,
		SpindleID:         overrides.SpindleID,
		SequenceNumber:    overrides.SequenceNumber,
		MessageParts:      overrides.MessageParts,
		MessagePartNumber: overrides.MessagePartNumber,
	}
	if header.Revision == nil {
		header.Revision = &revision
	}

	headerEncoder := codec.NewEncoder()
	if err := EncodeHeader(headerEncoder, header); err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, headerEncoder.Bytes()...)
	out = append(out, payload...)
	return out, nil
}
