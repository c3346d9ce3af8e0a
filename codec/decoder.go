// Package codec implements the cursor-based ASCII field codec that Open
// Protocol frames are built from: fixed- and variable-width unsigned
// integers, ASCII strings, booleans, timestamps and the numbered/list field
// shapes layered on top of them. It has no dependencies outside the
// standard library by design — every other package in this module builds on
// it.
package codec

// Decoder walks an immutable byte slice with a cursor, the same shape as
// the reference decoder this format comes from: a read-only buffer plus a
// position, with Back the only operation allowed to move the cursor left
// (used by the numbered-optional field shape and by DecodeOptional).
type Decoder struct {
	bytes  []byte
	cursor int
}

// NewDecoder wraps bytes for decoding. bytes is not copied; callers must not
// mutate it while the Decoder is in use.
func NewDecoder(bytes []byte) *Decoder {
	return &Decoder{bytes: bytes}
}

// ReadByte returns the byte at the cursor and advances by one. Running off
// the end of the buffer is reported as InsufficientBytesError rather than a
// generic bounds error, since it's the one decode failure the frame reader
// (package transport) recovers from by reading more and retrying.
func (d *Decoder) ReadByte() (byte, error) {
	if d.cursor >= len(d.bytes) {
		return 0, errInsufficientBytes(len(d.bytes), d.cursor+1)
	}
	b := d.bytes[d.cursor]
	d.cursor++
	return b, nil
}

// ReadBytes returns the next n bytes and advances the cursor past them. The
// returned slice aliases the decoder's backing array.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if d.cursor+n > len(d.bytes) {
		return nil, errInsufficientBytes(len(d.bytes), d.cursor+n)
	}
	b := d.bytes[d.cursor : d.cursor+n]
	d.cursor += n
	return b, nil
}

// Skip advances the cursor by n without returning the bytes.
func (d *Decoder) Skip(n int) error {
	if d.cursor+n > len(d.bytes) {
		return errInsufficientBytes(len(d.bytes), d.cursor+n)
	}
	d.cursor += n
	return nil
}

// Back rewinds the cursor by n. It is the only way the cursor moves left,
// used by the numbered-optional field shape to undo a speculative field-number
// read when the number doesn't match.
func (d *Decoder) Back(n int) error {
	if d.cursor < n {
		return errOutOfLeftBound(n, d.cursor)
	}
	d.cursor -= n
	return nil
}

// Pos returns the current cursor position.
func (d *Decoder) Pos() int { return d.cursor }

// Len returns the total length of the underlying buffer.
func (d *Decoder) Len() int { return len(d.bytes) }

// Remaining returns how many unread bytes are left.
func (d *Decoder) Remaining() int { return len(d.bytes) - d.cursor }

// ExpectChar reads one byte and fails unless it equals expected, used between
// the numeric components of a timestamp field.
func (d *Decoder) ExpectChar(expected byte) error {
	pos := d.cursor
	got, err := DecodeChar(d)
	if err != nil {
		return err
	}
	if got != expected {
		return errExpectedCharacter(got, expected, pos)
	}
	return nil
}
