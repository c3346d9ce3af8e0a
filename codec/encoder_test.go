package codec

import (
	"testing"
	"time"
)

func TestEncodeUint8(t *testing.T) {
	e := NewEncoder()
	if err := EncodeUint8(e, 5, 3); err != nil {
		t.Fatalf("EncodeUint8: %v", err)
	}
	if e.String() != "005" {
		t.Errorf("EncodeUint8() = %q, want %q", e.String(), "005")
	}
}

func TestEncodeString(t *testing.T) {
	e := NewEncoder()
	if err := EncodeString(e, "Hi", 5); err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if e.String() != "Hi   " {
		t.Errorf("EncodeString() = %q, want %q", e.String(), "Hi   ")
	}
}

func TestEncodeStringTooLong(t *testing.T) {
	e := NewEncoder()
	if err := EncodeString(e, "Hello World", 5); err == nil {
		t.Fatal("expected invalid-size error for oversized string")
	}
}

func TestEncodeOptionalNil(t *testing.T) {
	e := NewEncoder()
	if err := EncodeOptional[string](e, nil, 5, EncodeString); err != nil {
		t.Fatalf("EncodeOptional: %v", err)
	}
	if e.String() != "     " {
		t.Errorf("EncodeOptional(nil) = %q, want 5 spaces", e.String())
	}
}

func TestEncodeOptionalPresent(t *testing.T) {
	e := NewEncoder()
	v := "Hi"
	if err := EncodeOptional(e, &v, 5, EncodeString); err != nil {
		t.Fatalf("EncodeOptional: %v", err)
	}
	if e.String() != "Hi   " {
		t.Errorf("EncodeOptional(&v) = %q, want %q", e.String(), "Hi   ")
	}
}

func TestEncodeTimestamp(t *testing.T) {
	e := NewEncoder()
	ts := time.Date(2001, 12, 1, 20, 12, 45, 0, time.Local)
	if err := EncodeTimestamp(e, ts); err != nil {
		t.Fatalf("EncodeTimestamp: %v", err)
	}
	if e.String() != "2001-12-01:20:12:45" {
		t.Errorf("EncodeTimestamp() = %q, want %q", e.String(), "2001-12-01:20:12:45")
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	e := NewEncoder()
	if err := WriteNumberedField(e, 1, uint16(42), 3, EncodeUint16); err != nil {
		t.Fatalf("WriteNumberedField: %v", err)
	}

	d := NewDecoder(e.Bytes())
	got, err := ReadNumberedField(d, 1, 3, DecodeUint16)
	if err != nil {
		t.Fatalf("ReadNumberedField: %v", err)
	}
	if got != 42 {
		t.Errorf("roundtrip value = %d, want 42", got)
	}
}
