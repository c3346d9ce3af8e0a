package codec

import (
	"time"
	"unicode/utf8"
)

// EncodeUint8 writes v as size zero-padded ASCII digits.
func EncodeUint8(e *Encoder, v uint8, size int) error {
	return encodeUint(e, uint64(v), size)
}

// EncodeUint16 writes v as size zero-padded ASCII digits.
func EncodeUint16(e *Encoder, v uint16, size int) error {
	return encodeUint(e, uint64(v), size)
}

// EncodeUint32 writes v as size zero-padded ASCII digits.
func EncodeUint32(e *Encoder, v uint32, size int) error {
	return encodeUint(e, uint64(v), size)
}

// EncodeUint64 writes v as size zero-padded ASCII digits.
func EncodeUint64(e *Encoder, v uint64, size int) error {
	return encodeUint(e, v, size)
}

func encodeUint(e *Encoder, v uint64, size int) error {
	pow := func(n int) uint64 {
		r := uint64(1)
		for i := 0; i < n; i++ {
			r *= 10
		}
		return r
	}
	for i := size - 1; i >= 0; i-- {
		digit := byte((v/pow(i))%10) + '0'
		if err := e.WriteByte(digit); err != nil {
			return err
		}
	}
	return nil
}

// EncodeChar writes a single ASCII byte, rejecting non-ASCII runes the way
// the reference encoder does.
func EncodeChar(e *Encoder, c rune) error {
	if c > 127 {
		return errNonASCIICharacter(c)
	}
	return e.WriteByte(byte(c))
}

// EncodeBool writes '1' or '0'.
func EncodeBool(e *Encoder, v bool, size int) error {
	if size != 1 {
		return errInvalidSize(size)
	}
	if v {
		return e.WriteByte('1')
	}
	return e.WriteByte('0')
}

// EncodeString right-pads s with spaces to exactly size bytes. Oversized
// input is rejected rather than truncated.
func EncodeString(e *Encoder, s string, size int) error {
	length := utf8.RuneCountInString(s)
	if length > size {
		return errInvalidSize(size)
	}
	for _, r := range s {
		if err := EncodeChar(e, r); err != nil {
			return err
		}
	}
	for i := 0; i < size-length; i++ {
		if err := e.WriteByte(' '); err != nil {
			return err
		}
	}
	return nil
}

// EncodeOptional writes size spaces for a nil value, otherwise encodeSized(v).
func EncodeOptional[T any](e *Encoder, v *T, size int, encodeSized func(*Encoder, T, int) error) error {
	if v == nil {
		for i := 0; i < size; i++ {
			if err := e.WriteByte(' '); err != nil {
				return err
			}
		}
		return nil
	}
	return encodeSized(e, *v, size)
}

// EncodeTimestamp writes the fixed 19-byte "YYYY-MM-DD:HH:MM:SS" shape.
func EncodeTimestamp(e *Encoder, t time.Time) error {
	if err := EncodeUint32(e, uint32(t.Year()), 4); err != nil {
		return err
	}
	if err := EncodeChar(e, '-'); err != nil {
		return err
	}
	if err := EncodeUint32(e, uint32(t.Month()), 2); err != nil {
		return err
	}
	if err := EncodeChar(e, '-'); err != nil {
		return err
	}
	if err := EncodeUint32(e, uint32(t.Day()), 2); err != nil {
		return err
	}
	if err := EncodeChar(e, ':'); err != nil {
		return err
	}
	if err := EncodeUint32(e, uint32(t.Hour()), 2); err != nil {
		return err
	}
	if err := EncodeChar(e, ':'); err != nil {
		return err
	}
	if err := EncodeUint32(e, uint32(t.Minute()), 2); err != nil {
		return err
	}
	if err := EncodeChar(e, ':'); err != nil {
		return err
	}
	return EncodeUint32(e, uint32(t.Second()), 2)
}
