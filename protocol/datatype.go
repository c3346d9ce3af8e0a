package protocol

import "github.com/dezemand/openprotocol-go/codec"

// DataType tags the shape of a DataField's raw data_value string, so
// callers know how to interpret it (ParseUint32, ParseString, ParseBytes, ...).
type DataType uint8

const (
	DataTypeUnsignedInteger     DataType = 1
	DataTypeSignedInteger       DataType = 2
	DataTypeFloat               DataType = 3
	DataTypeString              DataType = 4
	DataTypeTimestamp           DataType = 5
	DataTypeBoolean             DataType = 6
	DataTypeHexadecimal         DataType = 7
	DataTypePlotPointPL1        DataType = 8
	DataTypePlotPointPL2        DataType = 9
	DataTypePlotPointPL4        DataType = 10
	DataTypeFloatArray          DataType = 50
	DataTypeUnsignedIntegerArray DataType = 51
	DataTypeSignedIntegerArray  DataType = 52
)

// DecodeDataType reads a DataType's two-digit numeric code.
func DecodeDataType(d *codec.Decoder, size int) (DataType, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch DataType(n) {
	case DataTypeUnsignedInteger, DataTypeSignedInteger, DataTypeFloat, DataTypeString,
		DataTypeTimestamp, DataTypeBoolean, DataTypeHexadecimal, DataTypePlotPointPL1,
		DataTypePlotPointPL2, DataTypePlotPointPL4, DataTypeFloatArray,
		DataTypeUnsignedIntegerArray, DataTypeSignedIntegerArray:
		return DataType(n), nil
	default:
		return 0, errInvalidEnumValue("DataType", uint64(n))
	}
}

// EncodeDataType writes a DataType's numeric code.
func EncodeDataType(e *codec.Encoder, v DataType, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}
