package protocol

import (
	"testing"

	"github.com/dezemand/openprotocol-go/codec"
)

func TestEncode0010(t *testing.T) {
	m := MID0010rev1{}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), ""; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}

// MID0012rev1's single field carries no field-number tag, matching its
// struct declaration rather than a numbered-field shape.
func TestEncode0012(t *testing.T) {
	m := MID0012rev1{ParameterSetID: 12}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), "012"; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}

func TestEncode0011rev1(t *testing.T) {
	m := MID0011rev1{
		NumberOfParameterSets: 5,
		ParameterSetIDs:       []uint16{1, 2, 3, 10, 20},
	}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), "005001002003010020"; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}

func TestDecode0011rev1(t *testing.T) {
	d := codec.NewDecoder([]byte("005001002003010020"))

	msg, err := decodeMID0011rev1(d)
	if err != nil {
		t.Fatalf("decodeMID0011rev1: %v", err)
	}
	got, ok := msg.(MID0011rev1)
	if !ok {
		t.Fatalf("msg is %T, want MID0011rev1", msg)
	}
	if got.NumberOfParameterSets != 5 {
		t.Errorf("NumberOfParameterSets = %d, want 5", got.NumberOfParameterSets)
	}
	want := []uint16{1, 2, 3, 10, 20}
	if len(got.ParameterSetIDs) != len(want) {
		t.Fatalf("ParameterSetIDs = %v, want %v", got.ParameterSetIDs, want)
	}
	for i := range want {
		if got.ParameterSetIDs[i] != want[i] {
			t.Errorf("ParameterSetIDs[%d] = %d, want %d", i, got.ParameterSetIDs[i], want[i])
		}
	}
}
