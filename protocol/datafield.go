package protocol

import (
	"fmt"
	"strconv"

	"github.com/dezemand/openprotocol-go/codec"
)

// DataField is a self-describing (PID, type, value) triple used by the
// trace/result-upload messages. Its shape is hand-written rather than
// built from the field-shape combinators because step_no swaps between 0
// and "absent" without using the space-padded Option encoding every other
// optional field in this package uses, and data_value's width depends on
// another field already read (length) rather than a compile-time constant.
type DataField struct {
	ParameterID uint32
	Length      uint16
	DataType    DataType
	Unit        uint16
	// StepNo is nil when the wire value is 0 ("not relevant"), matching
	// the reference decoder's zero-means-absent convention for this field.
	StepNo    *uint16
	DataValue string
}

// DecodeDataField reads a DataField at its natural (length-prefixed)
// width; there is no fixed size to pass in.
func DecodeDataField(d *codec.Decoder) (DataField, error) {
	var f DataField
	var err error

	f.ParameterID, err = codec.DecodeUint32(d, 5)
	if err != nil {
		return DataField{}, err
	}
	f.Length, err = codec.DecodeUint16(d, 3)
	if err != nil {
		return DataField{}, err
	}
	f.DataType, err = DecodeDataType(d, 2)
	if err != nil {
		return DataField{}, err
	}
	f.Unit, err = codec.DecodeUint16(d, 3)
	if err != nil {
		return DataField{}, err
	}
	stepNo, err := codec.DecodeUint16(d, 4)
	if err != nil {
		return DataField{}, err
	}
	if stepNo != 0 {
		f.StepNo = &stepNo
	}
	f.DataValue, err = codec.DecodeString(d, int(f.Length))
	if err != nil {
		return DataField{}, err
	}
	return f, nil
}

// EncodeDataField writes f at its natural width.
func EncodeDataField(e *codec.Encoder, f DataField) error {
	if err := codec.EncodeUint32(e, f.ParameterID, 5); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, f.Length, 3); err != nil {
		return err
	}
	if err := EncodeDataType(e, f.DataType, 2); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, f.Unit, 3); err != nil {
		return err
	}
	stepNo := uint16(0)
	if f.StepNo != nil {
		stepNo = *f.StepNo
	}
	if err := codec.EncodeUint16(e, stepNo, 4); err != nil {
		return err
	}
	return codec.EncodeString(e, f.DataValue, int(f.Length))
}

// ErrDataFieldTypeMismatch is returned by the Parse* helpers when DataType
// doesn't match the value being requested.
type ErrDataFieldTypeMismatch struct {
	Want DataType
	Have DataType
}

func (e *ErrDataFieldTypeMismatch) Error() string {
	return "data field type mismatch: want " + strconv.Itoa(int(e.Want)) + ", have " + strconv.Itoa(int(e.Have))
}

// ParseUint32 interprets DataValue as an unsigned integer, failing if
// DataType isn't DataTypeUnsignedInteger.
func (f DataField) ParseUint32() (uint32, error) {
	if f.DataType != DataTypeUnsignedInteger {
		return 0, &ErrDataFieldTypeMismatch{Want: DataTypeUnsignedInteger, Have: f.DataType}
	}
	d := codec.NewDecoder([]byte(f.DataValue))
	return codec.DecodeUint32(d, int(f.Length))
}

// ParseBool interprets DataValue as a boolean, failing if DataType isn't
// DataTypeBoolean.
func (f DataField) ParseBool() (bool, error) {
	if f.DataType != DataTypeBoolean {
		return false, &ErrDataFieldTypeMismatch{Want: DataTypeBoolean, Have: f.DataType}
	}
	d := codec.NewDecoder([]byte(f.DataValue))
	return codec.DecodeBool(d, 1)
}

// ParseString returns DataValue as-is, failing if DataType isn't
// DataTypeString.
func (f DataField) ParseString() (string, error) {
	if f.DataType != DataTypeString {
		return "", &ErrDataFieldTypeMismatch{Want: DataTypeString, Have: f.DataType}
	}
	return f.DataValue, nil
}

// ParseBytes decodes DataValue as hex pairs, failing if DataType isn't
// DataTypeHexadecimal.
func (f DataField) ParseBytes() ([]byte, error) {
	if f.DataType != DataTypeHexadecimal {
		return nil, &ErrDataFieldTypeMismatch{Want: DataTypeHexadecimal, Have: f.DataType}
	}
	n := int(f.Length) / 2
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, err := strconv.ParseUint(f.DataValue[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(b))
	}
	return out, nil
}

// TraceSample is a single raw big-endian 2-byte trace curve sample. Unlike
// every other field in this package it is NOT ASCII-digit encoded: it
// carries a binary uint16 straight from the wire, so it implements its own
// decode/encode pair outside the ASCII primitive set.
type TraceSample uint16

// DecodeTraceSample reads the raw 2-byte big-endian sample. size must be 2.
func DecodeTraceSample(d *codec.Decoder, size int) (TraceSample, error) {
	if size != 2 {
		return 0, errSizeMismatchTraceSample(size)
	}
	raw, err := d.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return TraceSample(uint16(raw[0])<<8 | uint16(raw[1])), nil
}

// EncodeTraceSample writes the raw 2-byte big-endian sample. size must be 2.
func EncodeTraceSample(e *codec.Encoder, v TraceSample, size int) error {
	if size != 2 {
		return errSizeMismatchTraceSample(size)
	}
	if err := e.WriteByte(byte(v >> 8)); err != nil {
		return err
	}
	return e.WriteByte(byte(v))
}

func errSizeMismatchTraceSample(size int) error {
	return fmt.Errorf("protocol: TraceSample must be read/written at size 2, got %d", size)
}
