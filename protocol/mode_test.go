package protocol

import (
	"testing"

	"github.com/dezemand/openprotocol-go/codec"
)

func TestEncode2601(t *testing.T) {
	m := MID2601rev1{
		NumberOfModes: 2,
		ModeData: []ModeData{
			{ModeID: 1, ModeNameSize: 5, ModeName: "Hello"},
			{ModeID: 2, ModeNameSize: 5, ModeName: "World"},
		},
	}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), "002000105Hello000205World"; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}

func TestDecode2601(t *testing.T) {
	d := codec.NewDecoder([]byte("002000105Hello000205World"))

	msg, err := decodeMID2601rev1(d)
	if err != nil {
		t.Fatalf("decodeMID2601rev1: %v", err)
	}
	got, ok := msg.(MID2601rev1)
	if !ok {
		t.Fatalf("msg is %T, want MID2601rev1", msg)
	}
	if got.NumberOfModes != 2 || len(got.ModeData) != 2 {
		t.Fatalf("decodeMID2601rev1() = %+v", got)
	}
	want := []ModeData{
		{ModeID: 1, ModeNameSize: 5, ModeName: "Hello"},
		{ModeID: 2, ModeNameSize: 5, ModeName: "World"},
	}
	for i := range want {
		if got.ModeData[i] != want[i] {
			t.Errorf("ModeData[%d] = %+v, want %+v", i, got.ModeData[i], want[i])
		}
	}
}
