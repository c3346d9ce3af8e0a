package protocol

import (
	"testing"

	"github.com/dezemand/openprotocol-go/codec"
)

func TestDecodeDataTypeValid(t *testing.T) {
	cases := []struct {
		wire string
		want DataType
	}{
		{"01", DataTypeUnsignedInteger},
		{"02", DataTypeSignedInteger},
		{"03", DataTypeFloat},
		{"04", DataTypeString},
		{"05", DataTypeTimestamp},
		{"06", DataTypeBoolean},
		{"07", DataTypeHexadecimal},
		{"08", DataTypePlotPointPL1},
		{"09", DataTypePlotPointPL2},
		{"10", DataTypePlotPointPL4},
		{"50", DataTypeFloatArray},
		{"51", DataTypeUnsignedIntegerArray},
		{"52", DataTypeSignedIntegerArray},
	}
	for _, c := range cases {
		d := codec.NewDecoder([]byte(c.wire))
		got, err := DecodeDataType(d, 2)
		if err != nil {
			t.Errorf("DecodeDataType(%q): %v", c.wire, err)
			continue
		}
		if got != c.want {
			t.Errorf("DecodeDataType(%q) = %v, want %v", c.wire, got, c.want)
		}
	}
}

func TestDecodeDataTypeInvalid(t *testing.T) {
	d := codec.NewDecoder([]byte("99"))
	if _, err := DecodeDataType(d, 2); err == nil {
		t.Fatal("expected an error for an unrecognized DataType code")
	}
}

func TestEncodeDataType(t *testing.T) {
	e := codec.NewEncoder()
	if err := EncodeDataType(e, DataTypeHexadecimal, 2); err != nil {
		t.Fatalf("EncodeDataType: %v", err)
	}
	if got, want := string(e.Bytes()), "07"; got != want {
		t.Errorf("EncodeDataType() = %q, want %q", got, want)
	}
}
