package protocol

import "github.com/dezemand/openprotocol-go/codec"

// KeepAlive selects whether the client wants the controller to send
// periodic MID 9999 keep-alive probes.
type KeepAlive uint8

const (
	KeepAliveUse    KeepAlive = 0
	KeepAliveIgnore KeepAlive = 1
)

// DecodeKeepAlive reads a single numbered-field digit.
func DecodeKeepAlive(d *codec.Decoder, size int) (KeepAlive, error) {
	n, err := codec.DecodeUint8(d, size)
	if err != nil {
		return 0, err
	}
	switch KeepAlive(n) {
	case KeepAliveUse, KeepAliveIgnore:
		return KeepAlive(n), nil
	default:
		return 0, errInvalidEnumValue("KeepAlive", uint64(n))
	}
}

// EncodeKeepAlive writes a single digit.
func EncodeKeepAlive(e *codec.Encoder, v KeepAlive, size int) error {
	return codec.EncodeUint8(e, uint8(v), size)
}

// MID0001rev7 starts (or restarts) the application-level communication
// channel. It is also used for MID 0001 revision 1, which is an alias:
// the registry binds both (1, 1) and (1, 7) to this type since the wire
// shape never changed between those two declared revisions.
type MID0001rev7 struct {
	KeepAlive *KeepAlive
}

func (MID0001rev7) MidRevision() (uint16, uint16) { return 1, 7 }

func (m MID0001rev7) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedSizedOptionalField(e, 1, m.KeepAlive, 1, EncodeKeepAlive)
}

func decodeMID0001rev7(d *codec.Decoder) (Message, error) {
	var m MID0001rev7
	var err error
	m.KeepAlive, err = codec.ReadNumberedSizedOptionalField(d, 1, 1, DecodeKeepAlive)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MID0002rev1 is the controller's reply to MID 0001.
type MID0002rev1 struct {
	CellID         uint16
	ChannelID      uint8
	ControllerName string
}

func (MID0002rev1) MidRevision() (uint16, uint16) { return 2, 1 }

func (m MID0002rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.CellID, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.ChannelID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 3, m.ControllerName, 25, codec.EncodeString)
}

func decodeMID0002rev1(d *codec.Decoder) (Message, error) {
	var m MID0002rev1
	var err error
	if m.CellID, err = codec.ReadNumberedField(d, 1, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ChannelID, err = codec.ReadNumberedField(d, 2, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ControllerName, err = codec.ReadNumberedField(d, 3, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0002rev2 adds supplier_code over rev1.
type MID0002rev2 struct {
	CellID         uint16
	ChannelID      uint8
	ControllerName string
	SupplierCode   string
}

func (MID0002rev2) MidRevision() (uint16, uint16) { return 2, 2 }

func (m MID0002rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.CellID, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.ChannelID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 3, m.ControllerName, 25, codec.EncodeString); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 4, m.SupplierCode, 3, codec.EncodeString)
}

func decodeMID0002rev2(d *codec.Decoder) (Message, error) {
	var m MID0002rev2
	var err error
	if m.CellID, err = codec.ReadNumberedField(d, 1, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ChannelID, err = codec.ReadNumberedField(d, 2, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ControllerName, err = codec.ReadNumberedField(d, 3, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.SupplierCode, err = codec.ReadNumberedField(d, 4, 3, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0002rev3 adds the three software-version fields over rev2.
type MID0002rev3 struct {
	CellID                    uint16
	ChannelID                 uint8
	ControllerName            string
	SupplierCode              string
	OpenProtocolVersion       string
	ControllerSoftwareVersion string
	ToolSoftwareVersion       string
}

func (MID0002rev3) MidRevision() (uint16, uint16) { return 2, 3 }

func (m MID0002rev3) EncodePayload(e *codec.Encoder) error {
	fields := []struct {
		num  uint8
		v    string
		size int
	}{
		{4, m.SupplierCode, 3},
		{5, m.OpenProtocolVersion, 19},
		{6, m.ControllerSoftwareVersion, 19},
		{7, m.ToolSoftwareVersion, 19},
	}
	if err := codec.WriteNumberedField(e, 1, m.CellID, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.ChannelID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 3, m.ControllerName, 25, codec.EncodeString); err != nil {
		return err
	}
	for _, f := range fields {
		if err := codec.WriteNumberedField(e, f.num, f.v, f.size, codec.EncodeString); err != nil {
			return err
		}
	}
	return nil
}

func decodeMID0002rev3(d *codec.Decoder) (Message, error) {
	var m MID0002rev3
	var err error
	if m.CellID, err = codec.ReadNumberedField(d, 1, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.ChannelID, err = codec.ReadNumberedField(d, 2, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ControllerName, err = codec.ReadNumberedField(d, 3, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.SupplierCode, err = codec.ReadNumberedField(d, 4, 3, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.OpenProtocolVersion, err = codec.ReadNumberedField(d, 5, 19, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.ControllerSoftwareVersion, err = codec.ReadNumberedField(d, 6, 19, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.ToolSoftwareVersion, err = codec.ReadNumberedField(d, 7, 19, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0002rev4 adds rbu_type and controller_serial_number over rev3.
type MID0002rev4 struct {
	CellID                    uint16
	ChannelID                 uint8
	ControllerName            string
	SupplierCode              string
	OpenProtocolVersion       string
	ControllerSoftwareVersion string
	ToolSoftwareVersion       string
	RbuType                   string
	ControllerSerialNumber    string
}

func (MID0002rev4) MidRevision() (uint16, uint16) { return 2, 4 }

func (m MID0002rev4) EncodePayload(e *codec.Encoder) error {
	if err := (MID0002rev3{m.CellID, m.ChannelID, m.ControllerName, m.SupplierCode,
		m.OpenProtocolVersion, m.ControllerSoftwareVersion, m.ToolSoftwareVersion}).EncodePayload(e); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 8, m.RbuType, 24, codec.EncodeString); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 9, m.ControllerSerialNumber, 10, codec.EncodeString)
}

func decodeMID0002rev4(d *codec.Decoder) (Message, error) {
	base, err := decodeMID0002rev3(d)
	if err != nil {
		return nil, err
	}
	b := base.(MID0002rev3)
	m := MID0002rev4{
		CellID: b.CellID, ChannelID: b.ChannelID, ControllerName: b.ControllerName,
		SupplierCode: b.SupplierCode, OpenProtocolVersion: b.OpenProtocolVersion,
		ControllerSoftwareVersion: b.ControllerSoftwareVersion, ToolSoftwareVersion: b.ToolSoftwareVersion,
	}
	if m.RbuType, err = codec.ReadNumberedField(d, 8, 24, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.ControllerSerialNumber, err = codec.ReadNumberedField(d, 9, 10, codec.DecodeString); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0002rev5 adds system_type and system_subtype over rev4.
type MID0002rev5 struct {
	MID0002rev4
	SystemType    uint16
	SystemSubtype uint16
}

func (MID0002rev5) MidRevision() (uint16, uint16) { return 2, 5 }

func (m MID0002rev5) EncodePayload(e *codec.Encoder) error {
	if err := m.MID0002rev4.EncodePayload(e); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 10, m.SystemType, 3, codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 11, m.SystemSubtype, 3, codec.EncodeUint16)
}

func decodeMID0002rev5(d *codec.Decoder) (Message, error) {
	base, err := decodeMID0002rev4(d)
	if err != nil {
		return nil, err
	}
	m := MID0002rev5{MID0002rev4: base.(MID0002rev4)}
	if m.SystemType, err = codec.ReadNumberedField(d, 10, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.SystemSubtype, err = codec.ReadNumberedField(d, 11, 3, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0002rev6 adds sequencing/linking/station fields over rev5.
type MID0002rev6 struct {
	MID0002rev5
	SequenceNumberSupported bool
	LinkingHandlingSupported bool
	StationOrCellID         uint32
	StationOrCellName       string
	ClientID                uint8
}

func (MID0002rev6) MidRevision() (uint16, uint16) { return 2, 6 }

func (m MID0002rev6) EncodePayload(e *codec.Encoder) error {
	if err := m.MID0002rev5.EncodePayload(e); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 12, m.SequenceNumberSupported, 1, codec.EncodeBool); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 13, m.LinkingHandlingSupported, 1, codec.EncodeBool); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 14, m.StationOrCellID, 10, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 15, m.StationOrCellName, 25, codec.EncodeString); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 16, m.ClientID, 1, codec.EncodeUint8)
}

func decodeMID0002rev6(d *codec.Decoder) (Message, error) {
	base, err := decodeMID0002rev5(d)
	if err != nil {
		return nil, err
	}
	m := MID0002rev6{MID0002rev5: base.(MID0002rev5)}
	if m.SequenceNumberSupported, err = codec.ReadNumberedField(d, 12, 1, codec.DecodeBool); err != nil {
		return nil, err
	}
	if m.LinkingHandlingSupported, err = codec.ReadNumberedField(d, 13, 1, codec.DecodeBool); err != nil {
		return nil, err
	}
	if m.StationOrCellID, err = codec.ReadNumberedField(d, 14, 10, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.StationOrCellName, err = codec.ReadNumberedField(d, 15, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.ClientID, err = codec.ReadNumberedField(d, 16, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0002rev7 adds keep_alive over rev6.
type MID0002rev7 struct {
	MID0002rev6
	KeepAlive *KeepAlive
}

func (MID0002rev7) MidRevision() (uint16, uint16) { return 2, 7 }

func (m MID0002rev7) EncodePayload(e *codec.Encoder) error {
	if err := m.MID0002rev6.EncodePayload(e); err != nil {
		return err
	}
	return codec.WriteNumberedSizedOptionalField(e, 17, m.KeepAlive, 1, EncodeKeepAlive)
}

func decodeMID0002rev7(d *codec.Decoder) (Message, error) {
	base, err := decodeMID0002rev6(d)
	if err != nil {
		return nil, err
	}
	m := MID0002rev7{MID0002rev6: base.(MID0002rev6)}
	if m.KeepAlive, err = codec.ReadNumberedSizedOptionalField(d, 17, 1, DecodeKeepAlive); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0003rev1 stops application communication; empty payload.
type MID0003rev1 struct{}

func (MID0003rev1) MidRevision() (uint16, uint16)        { return 3, 1 }
func (MID0003rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0003rev1(d *codec.Decoder) (Message, error) { return MID0003rev1{}, nil }

// MID0004rev1 is a negative acknowledge with a 2-digit error code.
type MID0004rev1 struct {
	Mid       uint16
	ErrorCode ErrorCode
}

func (MID0004rev1) MidRevision() (uint16, uint16) { return 4, 1 }

func (m MID0004rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.Mid, 4); err != nil {
		return err
	}
	return EncodeErrorCode(e, m.ErrorCode, 2)
}

func decodeMID0004rev1(d *codec.Decoder) (Message, error) {
	var m MID0004rev1
	var err error
	if m.Mid, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.ErrorCode, err = DecodeErrorCode(d, 2); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0004rev2 widens the error code to 3 digits over rev1.
type MID0004rev2 struct {
	Mid       uint16
	ErrorCode ErrorCode
}

func (MID0004rev2) MidRevision() (uint16, uint16) { return 4, 2 }

func (m MID0004rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.Mid, 4); err != nil {
		return err
	}
	return EncodeErrorCode(e, m.ErrorCode, 3)
}

func decodeMID0004rev2(d *codec.Decoder) (Message, error) {
	var m MID0004rev2
	var err error
	if m.Mid, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.ErrorCode, err = DecodeErrorCode(d, 3); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0005rev1 is a positive acknowledge naming the accepted MID.
type MID0005rev1 struct {
	Mid uint16
}

func (MID0005rev1) MidRevision() (uint16, uint16) { return 5, 1 }

func (m MID0005rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint16(e, m.Mid, 4)
}

func decodeMID0005rev1(d *codec.Decoder) (Message, error) {
	mid, err := codec.DecodeUint16(d, 4)
	if err != nil {
		return nil, err
	}
	return MID0005rev1{Mid: mid}, nil
}

// MID0006rev1 is the generic data-request message, substituting for every
// MID-specific request message.
type MID0006rev1 struct {
	RequestedMid    uint16
	WantedRevision  uint16
	ExtraData       []uint8
}

func (MID0006rev1) MidRevision() (uint16, uint16) { return 6, 1 }

func (m MID0006rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.RequestedMid, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.WantedRevision, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, uint8(len(m.ExtraData)), 2); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.ExtraData, 1, len(m.ExtraData), codec.EncodeUint8)
}

func decodeMID0006rev1(d *codec.Decoder) (Message, error) {
	var m MID0006rev1
	var err error
	if m.RequestedMid, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.WantedRevision, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	extraLen, err := codec.DecodeUint8(d, 2)
	if err != nil {
		return nil, err
	}
	if m.ExtraData, err = codec.ReadSizedList(d, int(extraLen), 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0008rev1 subscribes to a MID, substituting for every MID-specific
// subscribe message.
type MID0008rev1 struct {
	SubscriptionMid uint16
	WantedRevision  uint16
	ExtraData       []uint8
}

func (MID0008rev1) MidRevision() (uint16, uint16) { return 8, 1 }

func (m MID0008rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.SubscriptionMid, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.WantedRevision, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, uint16(len(m.ExtraData)), 2); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.ExtraData, 1, len(m.ExtraData), codec.EncodeUint8)
}

func decodeMID0008rev1(d *codec.Decoder) (Message, error) {
	var m MID0008rev1
	var err error
	if m.SubscriptionMid, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.WantedRevision, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	extraLen, err := codec.DecodeUint16(d, 2)
	if err != nil {
		return nil, err
	}
	if m.ExtraData, err = codec.ReadSizedList(d, int(extraLen), 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0009rev1 unsubscribes from a previously subscribed MID.
type MID0009rev1 struct {
	UnsubscriptionMid uint16
	ExtraDataRevision uint16
	ExtraData         []uint8
}

func (MID0009rev1) MidRevision() (uint16, uint16) { return 9, 1 }

func (m MID0009rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.UnsubscriptionMid, 4); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, m.ExtraDataRevision, 3); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, uint16(len(m.ExtraData)), 2); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.ExtraData, 1, len(m.ExtraData), codec.EncodeUint8)
}

func decodeMID0009rev1(d *codec.Decoder) (Message, error) {
	var m MID0009rev1
	var err error
	if m.UnsubscriptionMid, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.ExtraDataRevision, err = codec.DecodeUint16(d, 3); err != nil {
		return nil, err
	}
	extraLen, err := codec.DecodeUint16(d, 2)
	if err != nil {
		return nil, err
	}
	if m.ExtraData, err = codec.ReadSizedList(d, int(extraLen), 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

func init() {
	register(1, 1, decodeMID0001rev7)
	register(1, 7, decodeMID0001rev7)
	register(2, 1, decodeMID0002rev1)
	register(2, 2, decodeMID0002rev2)
	register(2, 3, decodeMID0002rev3)
	register(2, 4, decodeMID0002rev4)
	register(2, 5, decodeMID0002rev5)
	register(2, 6, decodeMID0002rev6)
	register(2, 7, decodeMID0002rev7)
	register(3, 1, decodeMID0003rev1)
	register(4, 1, decodeMID0004rev1)
	register(4, 2, decodeMID0004rev2)
	register(5, 1, decodeMID0005rev1)
	register(6, 1, decodeMID0006rev1)
	register(8, 1, decodeMID0008rev1)
	register(9, 1, decodeMID0009rev1)
}
