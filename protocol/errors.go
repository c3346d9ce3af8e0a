package protocol

import "fmt"

// InvalidEnumValueError is returned when a decoded numeric field does not
// match any known variant of a closed enum (one without a range or
// catch-all fallback, unlike ErrorCode).
type InvalidEnumValueError struct {
	TypeName string
	Number   uint64
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value: %d", e.TypeName, e.Number)
}

func errInvalidEnumValue(typeName string, number uint64) error {
	return &InvalidEnumValueError{TypeName: typeName, Number: number}
}

// UnregisteredMessageError is returned when DecodeMessage sees a (mid,
// revision) pair absent from the registry.
type UnregisteredMessageError struct {
	Mid      uint16
	Revision uint16
}

func (e *UnregisteredMessageError) Error() string {
	return fmt.Sprintf("unregistered message mid=%d revision=%d", e.Mid, e.Revision)
}
