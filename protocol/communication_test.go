package protocol

import (
	"testing"

	"github.com/dezemand/openprotocol-go/codec"
)

func TestEncodeMID0001rev7WithKeepAlive(t *testing.T) {
	keepAlive := KeepAliveUse
	m := MID0001rev7{KeepAlive: &keepAlive}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), "010"; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}

func TestEncodeMID0001rev7Empty(t *testing.T) {
	m := MID0001rev7{}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), ""; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}

func TestParseMID0002rev1(t *testing.T) {
	d := codec.NewDecoder([]byte("010001020103Airbag1                  "))

	msg, err := decodeMID0002rev1(d)
	if err != nil {
		t.Fatalf("decodeMID0002rev1: %v", err)
	}
	want := MID0002rev1{CellID: 1, ChannelID: 1, ControllerName: "Airbag1"}
	if msg != want {
		t.Errorf("decodeMID0002rev1() = %+v, want %+v", msg, want)
	}
}

func TestWriteMID0002rev1(t *testing.T) {
	m := MID0002rev1{CellID: 1, ChannelID: 1, ControllerName: "Airbag1"}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), "010001020103Airbag1                  "; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}
