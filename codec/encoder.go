package codec

import "bytes"

// Encoder accumulates encoded bytes, modeled on the reference encoder's
// append-only byte vector.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// WriteByte appends a single byte.
func (e *Encoder) WriteByte(b byte) error {
	return e.buf.WriteByte(b)
}

// WriteBytes appends bytes verbatim.
func (e *Encoder) WriteBytes(b []byte) error {
	_, err := e.buf.Write(b)
	return err
}

// Bytes returns the accumulated payload.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// Len returns how many bytes have been written so far.
func (e *Encoder) Len() int { return e.buf.Len() }

// String returns the accumulated payload as a string.
func (e *Encoder) String() string { return e.buf.String() }
