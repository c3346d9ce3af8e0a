package protocol

import (
	"testing"

	"github.com/dezemand/openprotocol-go/codec"
)

func TestDecodeDataField(t *testing.T) {
	d := codec.NewDecoder([]byte("0000100201001000012"))

	got, err := DecodeDataField(d)
	if err != nil {
		t.Fatalf("DecodeDataField: %v", err)
	}
	want := DataField{
		ParameterID: 1,
		Length:      2,
		DataType:    DataTypeUnsignedInteger,
		Unit:        1,
		StepNo:      nil,
		DataValue:   "12",
	}
	if got.ParameterID != want.ParameterID || got.Length != want.Length || got.DataType != want.DataType ||
		got.Unit != want.Unit || got.StepNo != nil || got.DataValue != want.DataValue {
		t.Errorf("DecodeDataField() = %+v, want %+v", got, want)
	}
}

func TestEncodeDataField(t *testing.T) {
	f := DataField{
		ParameterID: 1,
		Length:      2,
		DataType:    DataTypeUnsignedInteger,
		Unit:        1,
		StepNo:      nil,
		DataValue:   "12",
	}

	e := codec.NewEncoder()
	if err := EncodeDataField(e, f); err != nil {
		t.Fatalf("EncodeDataField: %v", err)
	}
	if got, want := string(e.Bytes()), "0000100201001000012"; got != want {
		t.Errorf("EncodeDataField() = %q, want %q", got, want)
	}
}

func TestDataFieldParseBytes(t *testing.T) {
	f := DataField{
		ParameterID: 1,
		Length:      8,
		DataType:    DataTypeHexadecimal,
		Unit:        1,
		DataValue:   "DEADBEEF",
	}

	got, err := f.ParseBytes()
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if len(got) != len(want) {
		t.Fatalf("ParseBytes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseBytes()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestDataFieldParseBytesWrongType(t *testing.T) {
	f := DataField{DataType: DataTypeString, Length: 2, DataValue: "12"}

	_, err := f.ParseBytes()
	if err == nil {
		t.Fatal("expected a type-mismatch error for a non-hexadecimal field")
	}
}
