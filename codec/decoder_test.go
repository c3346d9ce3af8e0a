package codec

import (
	"testing"
	"time"
)

func TestDecoderReadByte(t *testing.T) {
	d := NewDecoder([]byte("12345678"))

	for _, want := range []byte{'1', '2', '3', '4'} {
		got, err := d.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte: %v", err)
		}
		if got != want {
			t.Errorf("ReadByte() = %q, want %q", got, want)
		}
	}
	if d.Pos() != 4 {
		t.Errorf("Pos() = %d, want 4", d.Pos())
	}
}

func TestDecoderReadBytes(t *testing.T) {
	d := NewDecoder([]byte("12345678"))

	got, err := d.ReadBytes(4)
	if err != nil || string(got) != "1234" {
		t.Fatalf("ReadBytes(4) = %q, %v", got, err)
	}
	got, err = d.ReadBytes(2)
	if err != nil || string(got) != "56" {
		t.Fatalf("ReadBytes(2) = %q, %v", got, err)
	}
	if d.Pos() != 6 {
		t.Errorf("Pos() = %d, want 6", d.Pos())
	}
}

func TestDecodeBool(t *testing.T) {
	d := NewDecoder([]byte("1010"))
	for _, want := range []bool{true, false, true, false} {
		got, err := DecodeBool(d, 1)
		if err != nil {
			t.Fatalf("DecodeBool: %v", err)
		}
		if got != want {
			t.Errorf("DecodeBool() = %v, want %v", got, want)
		}
	}
	if d.Pos() != 4 {
		t.Errorf("Pos() = %d, want 4", d.Pos())
	}
}

func TestDecodeUint8(t *testing.T) {
	d := NewDecoder([]byte("12345678"))

	got, err := DecodeUint8(d, 3)
	if err != nil || got != 123 {
		t.Fatalf("DecodeUint8(3) = %d, %v", got, err)
	}
	got, err = DecodeUint8(d, 2)
	if err != nil || got != 45 {
		t.Fatalf("DecodeUint8(2) = %d, %v", got, err)
	}
	if d.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", d.Pos())
	}
}

func TestDecodeUint8Overflow(t *testing.T) {
	d := NewDecoder([]byte("256"))

	_, err := DecodeUint8(d, 3)
	if err == nil {
		t.Fatal("DecodeUint8(3) expected overflow error, got nil")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindIntegerOverflow {
		t.Errorf("DecodeUint8(3) error = %v, want integer_overflow", err)
	}
}

func TestDecodeUint16(t *testing.T) {
	d := NewDecoder([]byte("12345678"))

	got, err := DecodeUint16(d, 5)
	if err != nil || got != 12345 {
		t.Fatalf("DecodeUint16(5) = %d, %v", got, err)
	}
	if d.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", d.Pos())
	}
}

func TestDecodeUint32(t *testing.T) {
	d := NewDecoder([]byte("12345678"))

	got, err := DecodeUint32(d, 8)
	if err != nil || got != 12345678 {
		t.Fatalf("DecodeUint32(8) = %d, %v", got, err)
	}
	if d.Pos() != 8 {
		t.Errorf("Pos() = %d, want 8", d.Pos())
	}
}

func TestDecodeString(t *testing.T) {
	d := NewDecoder([]byte("Hello678"))

	got, err := DecodeString(d, 5)
	if err != nil || got != "Hello" {
		t.Fatalf("DecodeString(5) = %q, %v", got, err)
	}
	if d.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", d.Pos())
	}
}

func TestDecodeOptionalPresent(t *testing.T) {
	d := NewDecoder([]byte("Hello678"))

	got, err := DecodeOptional(d, 5, DecodeString)
	if err != nil {
		t.Fatalf("DecodeOptional: %v", err)
	}
	if got == nil || *got != "Hello" {
		t.Fatalf("DecodeOptional() = %v, want Hello", got)
	}
	if d.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", d.Pos())
	}
}

func TestDecodeOptionalAbsent(t *testing.T) {
	d := NewDecoder([]byte("     678"))

	got, err := DecodeOptional(d, 5, DecodeString)
	if err != nil {
		t.Fatalf("DecodeOptional: %v", err)
	}
	if got != nil {
		t.Fatalf("DecodeOptional() = %v, want nil", got)
	}
	if d.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", d.Pos())
	}
}

func TestReadNumberedSizedField(t *testing.T) {
	d := NewDecoder([]byte("01Hello021"))

	got, err := ReadNumberedField(d, 1, 5, DecodeString)
	if err != nil || got != "Hello" {
		t.Fatalf("ReadNumberedField(1) = %q, %v", got, err)
	}
	b, err := ReadNumberedField(d, 2, 1, DecodeBool)
	if err != nil || b != true {
		t.Fatalf("ReadNumberedField(2) = %v, %v", b, err)
	}
	if d.Pos() != 10 {
		t.Errorf("Pos() = %d, want 10", d.Pos())
	}
}

func TestReadNumberedSizedFieldInvalidNumber(t *testing.T) {
	d := NewDecoder([]byte("01Hello021"))

	_, err := ReadNumberedField(d, 4, 5, DecodeString)
	if err == nil {
		t.Fatal("expected invalid field number error")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindInvalidArgNumber {
		t.Errorf("error = %v, want invalid_arg_number", err)
	}
	if d.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", d.Pos())
	}
}

func TestDecodeTimestamp(t *testing.T) {
	d := NewDecoder([]byte("2001-12-01:20:12:45000000"))

	got, err := DecodeTimestamp(d)
	if err != nil {
		t.Fatalf("DecodeTimestamp: %v", err)
	}
	want := time.Date(2001, 12, 1, 20, 12, 45, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("DecodeTimestamp() = %v, want %v", got, want)
	}
}

func TestDecodeInvalidTimestamp(t *testing.T) {
	d := NewDecoder([]byte("2001:12:01:20:12:45000000"))

	_, err := DecodeTimestamp(d)
	if err == nil {
		t.Fatal("expected expected-character error for malformed separator")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindExpectedCharacter {
		t.Errorf("error = %v, want expected_character", err)
	}
}

func TestDecodeTimestampNonExistentDate(t *testing.T) {
	// February 30th does not exist in any year.
	d := NewDecoder([]byte("2023-02-30:10:00:00"))

	_, err := DecodeTimestamp(d)
	if err == nil {
		t.Fatal("expected invalid-timestamp error for Feb 30")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindInvalidTimestamp {
		t.Errorf("error = %v, want invalid_timestamp", err)
	}
}
