package codec

// This file implements the field-shape combinators (C2) that sit on top of
// the cursor primitives: fixed-length fields, two-digit numbered fields, and
// list repetition. Each per-MID payload type in package protocol composes
// these directly instead of going through a schema/reflection layer, the
// same "ordinary struct plus hand-written method" shape the teacher favors
// over macro-driven (de)serialization.

// FieldNumberLen is the width of the two-digit field-number tag that
// precedes every numbered field.
const FieldNumberLen = 2

// ReadSizedField decodes a single fixed-width value via decodeSized.
func ReadSizedField[T any](d *Decoder, size int, decodeSized func(*Decoder, int) (T, error)) (T, error) {
	return decodeSized(d, size)
}

// WriteSizedField encodes a single fixed-width value via encodeSized.
func WriteSizedField[T any](e *Encoder, v T, size int, encodeSized func(*Encoder, T, int) error) error {
	return encodeSized(e, v, size)
}

// ReadNumberedField reads a two-digit field number, checks it against want,
// and if it matches, decodes T via decodeSized at size.
func ReadNumberedField[T any](d *Decoder, want uint8, size int, decodeSized func(*Decoder, int) (T, error)) (T, error) {
	var zero T
	got, err := DecodeUint8(d, FieldNumberLen)
	if err != nil {
		return zero, err
	}
	if got != want {
		return zero, errInvalidArgNumber(want, got)
	}
	return decodeSized(d, size)
}

// WriteNumberedField writes the two-digit field number followed by v.
func WriteNumberedField[T any](e *Encoder, number uint8, v T, size int, encodeSized func(*Encoder, T, int) error) error {
	if err := EncodeUint8(e, number, FieldNumberLen); err != nil {
		return err
	}
	return encodeSized(e, v, size)
}

// ReadNumberedSizedOptionalField reads a two-digit field number; if it doesn't
// match want, it rewinds those two bytes and reports the field absent
// (nil, nil) rather than failing — the only place besides a plain Back call
// where the cursor is allowed to retreat.
func ReadNumberedSizedOptionalField[T any](d *Decoder, want uint8, size int, decodeSized func(*Decoder, int) (T, error)) (*T, error) {
	got, err := DecodeUint8(d, FieldNumberLen)
	if err != nil {
		return nil, err
	}
	if got != want {
		if err := d.Back(FieldNumberLen); err != nil {
			return nil, err
		}
		return nil, nil
	}
	v, err := decodeSized(d, size)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteNumberedSizedOptionalField writes nothing when v is nil, otherwise the
// field number followed by the value.
func WriteNumberedSizedOptionalField[T any](e *Encoder, number uint8, v *T, size int, encodeSized func(*Encoder, T, int) error) error {
	if v == nil {
		return nil
	}
	if err := EncodeUint8(e, number, FieldNumberLen); err != nil {
		return err
	}
	return encodeSized(e, *v, size)
}

// ReadSizedList decodes count items, each occupying exactly itemSize bytes.
func ReadSizedList[T any](d *Decoder, count int, itemSize int, decodeSized func(*Decoder, int) (T, error)) ([]T, error) {
	list := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := decodeSized(d, itemSize)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// WriteSizedList encodes amount items from list, each occupying itemSize
// bytes.
func WriteSizedList[T any](e *Encoder, list []T, itemSize int, amount int, encodeSized func(*Encoder, T, int) error) error {
	for i := 0; i < amount; i++ {
		if err := encodeSized(e, list[i], itemSize); err != nil {
			return err
		}
	}
	return nil
}

// ReadList decodes count items whose own Decode knows its natural width
// (e.g. a nested struct decoder), rather than a caller-supplied fixed size.
func ReadList[T any](d *Decoder, count int, decode func(*Decoder) (T, error)) ([]T, error) {
	list := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := decode(d)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// WriteList encodes amount items from list via their natural-width encode.
func WriteList[T any](e *Encoder, list []T, amount int, encode func(*Encoder, T) error) error {
	for i := 0; i < amount; i++ {
		if err := encode(e, list[i]); err != nil {
			return err
		}
	}
	return nil
}
