package codec

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DecodeUint8 reads size ASCII digits (1-3) as an unsigned integer capped at
// 255 (u8 overflow ceiling), the same per-digit accumulate-and-check the
// reference decoder uses so an overflow is caught mid-read rather than by
// parsing the full number first and comparing.
func DecodeUint8(d *Decoder, size int) (uint8, error) {
	if size < 1 || size > 3 {
		return 0, errSizeMismatch("u8", size)
	}
	var result uint8
	for i := 0; i < size; i++ {
		digit, err := readDigit(d)
		if err != nil {
			return 0, err
		}
		if result > 25 || (result == 25 && digit > 5) {
			return 0, errIntegerOverflow("u8", uint64(result)*10+uint64(digit))
		}
		result = result*10 + digit
	}
	return result, nil
}

// DecodeUint16 reads size ASCII digits (1-5), ceiling 65535.
func DecodeUint16(d *Decoder, size int) (uint16, error) {
	if size < 1 || size > 5 {
		return 0, errSizeMismatch("u16", size)
	}
	var result uint32
	for i := 0; i < size; i++ {
		digit, err := readDigit(d)
		if err != nil {
			return 0, err
		}
		if result > 6553 || (result == 6553 && digit > 5) {
			return 0, errIntegerOverflow("u16", uint64(result)*10+uint64(digit))
		}
		result = result*10 + uint32(digit)
	}
	return uint16(result), nil
}

// DecodeUint32 reads size ASCII digits (1-10), ceiling 4294967295.
func DecodeUint32(d *Decoder, size int) (uint32, error) {
	if size < 1 || size > 10 {
		return 0, errSizeMismatch("u32", size)
	}
	var result uint64
	for i := 0; i < size; i++ {
		digit, err := readDigit(d)
		if err != nil {
			return 0, err
		}
		if result > 429496729 || (result == 429496729 && digit > 5) {
			return 0, errIntegerOverflow("u32", result*10+uint64(digit))
		}
		result = result*10 + uint64(digit)
	}
	return uint32(result), nil
}

// DecodeUint64 reads size ASCII digits (1-20), ceiling the full uint64 range.
func DecodeUint64(d *Decoder, size int) (uint64, error) {
	if size < 1 || size > 20 {
		return 0, errSizeMismatch("u64", size)
	}
	var result uint64
	for i := 0; i < size; i++ {
		digit, err := readDigit(d)
		if err != nil {
			return 0, err
		}
		if result > 1844674407370955161 || (result == 1844674407370955161 && digit > 5) {
			return 0, errIntegerOverflow("u64", result*10+uint64(digit))
		}
		result = result*10 + uint64(digit)
	}
	return result, nil
}

func readDigit(d *Decoder) (digit uint8, err error) {
	pos := d.Pos()
	raw, err := d.ReadByte()
	if err != nil {
		return 0, err
	}
	if raw < '0' || raw > '9' {
		return 0, errInvalidDigit(raw, pos)
	}
	return raw - '0', nil
}

// DecodeChar reads a single raw byte.
func DecodeChar(d *Decoder) (byte, error) {
	return d.ReadByte()
}

// DecodeBool reads exactly one byte, '1' for true and '0' for false. size
// must be 1, matching EncodeBool's signature so both compose with the
// field-shape combinators.
func DecodeBool(d *Decoder, size int) (bool, error) {
	if size != 1 {
		return false, errInvalidSize(size)
	}
	pos := d.Pos()
	c, err := DecodeChar(d)
	if err != nil {
		return false, err
	}
	switch c {
	case '1':
		return true, nil
	case '0':
		return false, nil
	default:
		return false, errInvalidBoolean(c, pos)
	}
}

// DecodeString reads exactly size bytes, trims trailing spaces and
// lossily converts to UTF-8, matching the reference decoder's
// String::from_utf8_lossy texture for malformed input.
func DecodeString(d *Decoder, size int) (string, error) {
	raw, err := d.ReadBytes(size)
	if err != nil {
		return "", err
	}
	end := len(raw)
	for end > 0 && raw[end-1] == ' ' {
		end--
	}
	return lossyUTF8(raw[:end]), nil
}

// DecodeOptional reads size bytes and treats an all-spaces field as absent,
// otherwise rewinds and decodes T from the same bytes via decodeSized. A nil
// return with no error means the field was absent.
func DecodeOptional[T any](d *Decoder, size int, decodeSized func(*Decoder, int) (T, error)) (*T, error) {
	raw, err := d.ReadBytes(size)
	if err != nil {
		return nil, err
	}
	allSpaces := true
	for _, b := range raw {
		if b != ' ' {
			allSpaces = false
			break
		}
	}
	if allSpaces {
		return nil, nil
	}
	if err := d.Back(size); err != nil {
		return nil, err
	}
	v, err := decodeSized(d, size)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeTimestamp reads the fixed 19-byte "YYYY-MM-DD:HH:MM:SS" shape,
// checking literal separators with ExpectChar the same way the reference
// decoder does component-by-component rather than via a single format
// string, so a malformed separator fails with a precise position.
func DecodeTimestamp(d *Decoder) (time.Time, error) {
	year, err := DecodeUint32(d, 4)
	if err != nil {
		return time.Time{}, err
	}
	if err := d.ExpectChar('-'); err != nil {
		return time.Time{}, err
	}
	month, err := DecodeUint32(d, 2)
	if err != nil {
		return time.Time{}, err
	}
	if err := d.ExpectChar('-'); err != nil {
		return time.Time{}, err
	}
	day, err := DecodeUint32(d, 2)
	if err != nil {
		return time.Time{}, err
	}
	if err := d.ExpectChar(':'); err != nil {
		return time.Time{}, err
	}
	hour, err := DecodeUint32(d, 2)
	if err != nil {
		return time.Time{}, err
	}
	if err := d.ExpectChar(':'); err != nil {
		return time.Time{}, err
	}
	minute, err := DecodeUint32(d, 2)
	if err != nil {
		return time.Time{}, err
	}
	if err := d.ExpectChar(':'); err != nil {
		return time.Time{}, err
	}
	second, err := DecodeUint32(d, 2)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(int(year), time.Month(month), int(day), int(hour), int(minute), int(second), 0, time.Local)
	// time.Date normalizes out-of-range components instead of failing, so a
	// non-existent local time (Feb 30, hour 25, ...) is caught by checking
	// the normalized value roundtrips to what was asked for.
	if t.Year() != int(year) || t.Month() != time.Month(month) || t.Day() != int(day) ||
		t.Hour() != int(hour) || t.Minute() != int(minute) || t.Second() != int(second) {
		return time.Time{}, errInvalidTimestamp()
	}
	return t, nil
}

// lossyUTF8 mirrors String::from_utf8_lossy: invalid byte sequences become
// the Unicode replacement character instead of failing the decode.
func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
