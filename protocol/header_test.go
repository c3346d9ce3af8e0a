package protocol

import (
	"errors"
	"testing"

	"github.com/dezemand/openprotocol-go/codec"
)

func uint16ptr(n uint16) *uint16 { return &n }

func TestParseHeader(t *testing.T) {
	d := codec.NewDecoder([]byte("00530071            "))

	got, err := DecodeHeader(d)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	want := Header{Length: 53, Mid: 71}
	if got != want {
		t.Errorf("DecodeHeader() = %+v, want %+v", got, want)
	}
}

func TestParseHeaderSmall(t *testing.T) {
	d := codec.NewDecoder([]byte("00530071"))

	_, err := DecodeHeader(d)
	if err == nil {
		t.Fatal("expected out-of-bounds error for a truncated header")
	}
}

func TestWriteHeader(t *testing.T) {
	e := codec.NewEncoder()
	h := Header{Length: 53, Mid: 71, Revision: uint16ptr(7)}

	if err := EncodeHeader(e, h); err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	if got, want := string(e.Bytes()), "00530071007         "; got != want {
		t.Errorf("EncodeHeader() = %q, want %q", got, want)
	}
}

func TestReadPayload(t *testing.T) {
	packet := "00380011001         005001002003010020"
	d := codec.NewDecoder([]byte(packet))

	header, msg, err := DecodeMessage(d)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}

	if header.Length != 38 || header.Mid != 11 || header.Revision == nil || *header.Revision != 1 ||
		header.NoAckFlag != nil || header.StationID != nil || header.SpindleID != nil ||
		header.SequenceNumber != nil || header.MessageParts != nil || header.MessagePartNumber != nil {
		t.Errorf("header = %+v, want Length 38, Mid 11, Revision 1, all other fields absent", header)
	}

	mid, revision := msg.MidRevision()
	if mid != 11 || revision != 1 {
		t.Errorf("MidRevision() = (%d, %d), want (11, 1)", mid, revision)
	}

	want := MID0011rev1{
		NumberOfParameterSets: 5,
		ParameterSetIDs:       []uint16{1, 2, 3, 10, 20},
	}
	got, ok := msg.(MID0011rev1)
	if !ok {
		t.Fatalf("msg is %T, want MID0011rev1", msg)
	}
	if got.NumberOfParameterSets != want.NumberOfParameterSets || len(got.ParameterSetIDs) != len(want.ParameterSetIDs) {
		t.Fatalf("msg = %+v, want %+v", got, want)
	}
	for i := range want.ParameterSetIDs {
		if got.ParameterSetIDs[i] != want.ParameterSetIDs[i] {
			t.Errorf("ParameterSetIDs[%d] = %d, want %d", i, got.ParameterSetIDs[i], want.ParameterSetIDs[i])
		}
	}
}

func TestReadPayloadShortBuffer(t *testing.T) {
	// Header declares Length 38, but only 20 bytes (the header itself) are
	// present — DecodeMessage must fail with InsufficientBytesError before
	// ever consulting the message registry, the same length check
	// transport.FrameReader relies on to learn a frame's true size up front.
	packet := "00380011001         "
	d := codec.NewDecoder([]byte(packet))

	_, _, err := DecodeMessage(d)
	var insuff *codec.InsufficientBytesError
	if !errors.As(err, &insuff) {
		t.Fatalf("DecodeMessage() err = %v (%T), want *codec.InsufficientBytesError", err, err)
	}
	if insuff.Need != 38 {
		t.Errorf("insuff.Need = %d, want 38", insuff.Need)
	}
	if insuff.Have != len(packet) {
		t.Errorf("insuff.Have = %d, want %d", insuff.Have, len(packet))
	}
}

func TestEncodePayload(t *testing.T) {
	payload := MID0011rev1{
		NumberOfParameterSets: 5,
		ParameterSetIDs:       []uint16{1, 2, 3, 10, 20},
	}

	e := codec.NewEncoder()
	if err := payload.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), "005001002003010020"; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}
