package protocol

import (
	"testing"

	"github.com/dezemand/openprotocol-go/codec"
)

func TestDecodeErrorCodeSpecific(t *testing.T) {
	d := codec.NewDecoder([]byte("0002"))

	got, err := DecodeErrorCode(d, 4)
	if err != nil {
		t.Fatalf("DecodeErrorCode: %v", err)
	}
	if got.Code != ErrorCodeParameterSetIdNotPresent || got.Number != 2 {
		t.Errorf("DecodeErrorCode() = %+v, want {Code: ErrorCodeParameterSetIdNotPresent, Number: 2}", got)
	}
}

func TestDecodeErrorCodeApplicationSpecific(t *testing.T) {
	d := codec.NewDecoder([]byte("0950"))

	got, err := DecodeErrorCode(d, 4)
	if err != nil {
		t.Fatalf("DecodeErrorCode: %v", err)
	}
	if got.Code != ErrorCodeApplicationSpecific || got.Number != 950 {
		t.Errorf("DecodeErrorCode() = %+v, want {Code: ErrorCodeApplicationSpecific, Number: 950}", got)
	}
}

func TestDecodeErrorCodeUnknown(t *testing.T) {
	d := codec.NewDecoder([]byte("0500"))

	got, err := DecodeErrorCode(d, 4)
	if err != nil {
		t.Fatalf("DecodeErrorCode: %v", err)
	}
	if got.Code != ErrorCodeUnknown || got.Number != 500 {
		t.Errorf("DecodeErrorCode() = %+v, want {Code: ErrorCodeUnknown, Number: 500}", got)
	}
}

func TestEncodeErrorCodeRoundTrip(t *testing.T) {
	v := ErrorCode{Code: ErrorCodeJobCannotBeSet, Number: 20}

	e := codec.NewEncoder()
	if err := EncodeErrorCode(e, v, 4); err != nil {
		t.Fatalf("EncodeErrorCode: %v", err)
	}
	if got, want := string(e.Bytes()), "0020"; got != want {
		t.Errorf("EncodeErrorCode() = %q, want %q", got, want)
	}
}
