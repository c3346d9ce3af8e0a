package protocol

import (
	"fmt"
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// DecodeTimestampSized adapts codec.DecodeTimestamp to the sized decoder
// shape the numbered/sized field combinators expect. The wire width of a
// timestamp is always 19 bytes; size is checked rather than ignored so a
// mismatched field declaration fails loudly instead of silently misreading.
func DecodeTimestampSized(d *codec.Decoder, size int) (time.Time, error) {
	if size != 19 {
		return time.Time{}, fmt.Errorf("protocol: timestamp fields are always 19 bytes wide, got %d", size)
	}
	return codec.DecodeTimestamp(d)
}

// EncodeTimestampSized is DecodeTimestampSized's encode-side counterpart.
func EncodeTimestampSized(e *codec.Encoder, t time.Time, size int) error {
	if size != 19 {
		return fmt.Errorf("protocol: timestamp fields are always 19 bytes wide, got %d", size)
	}
	return codec.EncodeTimestamp(e, t)
}
