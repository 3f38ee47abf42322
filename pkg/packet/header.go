package packet

// Publish fixed-header flag bits (bits 3-0 of the first byte).
// MQTT 5.0 Section 3.3.1, MQTT 3.1.1 Section 3.3.1
const (
	publishFlagQoSShift = 1      // Bits 2-1: QoS level
	publishFlagDup      = 1 << 3 // Bit 3: DUP flag
)

// typeFlags returns the fixed flag nibble required for a non-publish packet
// type. SUBSCRIBE, UNSUBSCRIBE and PUBREL carry the reserved bit pattern
// 0010; every other defined type carries 0000.
// MQTT 3.1.1 Section 2.2.2
func typeFlags(t Type) (byte, bool) {
	switch t {
	case TypeSubscribe, TypeUnsubscribe, TypePubrel:
		return 0x02, true
	case TypeConnect, TypeConnack, TypePuback, TypePubrec, TypePubcomp,
		TypeSuback, TypeUnsuback, TypePingreq, TypePingresp,
		TypeDisconnect, TypeAuth:
		return 0x00, true
	default:
		return 0, false
	}
}

// FixedHeader is the first two bytes of every control packet: the packet
// type nibble, the flag nibble, and a zero placeholder for the
// remaining-length field owned by the envelope layer.
//
// It is a closed variant: StandardHeader for the thirteen types whose flags
// are fixed by the type, PublishHeader for PUBLISH, whose QoS and DUP bits
// vary per packet.
type FixedHeader interface {
	// Type returns the control packet type.
	Type() Type

	// Encode returns the two header bytes. Byte 1 is always 0x00.
	Encode() ([2]byte, error)
}

// StandardHeader is the fixed header for every packet type except PUBLISH
// and RESERVED; its flag bits are implied by the type.
type StandardHeader struct {
	packetType Type
}

// NewHeader returns the standard header for t. It fails with
// ErrInvalidPacketType for TypeReserved, and for TypePublish, which must be
// built with NewPublishHeader since its QoS and DUP bits are per-packet.
func NewHeader(t Type) (StandardHeader, error) {
	switch t {
	case TypeReserved, TypePublish:
		return StandardHeader{}, ErrInvalidPacketType
	default:
		return StandardHeader{packetType: t}, nil
	}
}

// Type returns the control packet type.
func (h StandardHeader) Type() Type {
	return h.packetType
}

// Encode returns the header bytes: the type in bits 7-4, the type's fixed
// flag nibble in bits 3-0, and a zero second byte. It fails with
// ErrInvalidPacketType when the type is not one of the thirteen
// standard-header types.
func (h StandardHeader) Encode() ([2]byte, error) {
	flags, ok := typeFlags(h.packetType)
	if !ok {
		return [2]byte{}, ErrInvalidPacketType
	}
	return [2]byte{byte(h.packetType)<<4 | flags, 0x00}, nil
}

// PublishHeader is the fixed header for a PUBLISH packet, carrying the QoS
// level and the DUP (re-delivery) flag that cannot be derived from the type.
type PublishHeader struct {
	qos QoS
	dup bool
}

// NewPublishHeader returns a publish header with the given QoS level and
// DUP flag. It fails with ErrInvalidQoS when qos is not 0, 1 or 2.
func NewPublishHeader(qos QoS, dup bool) (PublishHeader, error) {
	if !qos.Valid() {
		return PublishHeader{}, ErrInvalidQoS
	}
	return PublishHeader{qos: qos, dup: dup}, nil
}

// Type returns TypePublish.
func (h PublishHeader) Type() Type {
	return TypePublish
}

// QoS returns the delivery-guarantee level.
func (h PublishHeader) QoS() QoS {
	return h.qos
}

// Dup reports whether the packet is marked as a re-delivery.
func (h PublishHeader) Dup() bool {
	return h.dup
}

// Encode returns the header bytes: the PUBLISH type in bits 7-4, the DUP
// flag in bit 3, the QoS level in bits 2-1, bit 0 zero, and a zero second
// byte.
func (h PublishHeader) Encode() ([2]byte, error) {
	b := byte(TypePublish) << 4
	if h.dup {
		b |= publishFlagDup
	}
	b |= byte(h.qos) << publishFlagQoSShift
	return [2]byte{b, 0x00}, nil
}

// DecodeHeader parses the first header byte back into its variant. It fails
// with ErrInvalidPacketType for a reserved type or a flag nibble that does
// not match the type's fixed pattern, with ErrInvalidQoS for a PUBLISH byte
// carrying QoS 3, and with ErrInvalidDup for a PUBLISH byte with the
// reserved bit 0 set.
func DecodeHeader(b byte) (FixedHeader, error) {
	t := Type(b >> 4)
	flags := b & 0x0F

	if t == TypePublish {
		qos := QoS(flags >> publishFlagQoSShift & 0x03)
		if !qos.Valid() {
			return nil, ErrInvalidQoS
		}
		if flags&0x01 != 0 {
			return nil, ErrInvalidDup
		}
		return PublishHeader{qos: qos, dup: flags&publishFlagDup != 0}, nil
	}

	want, ok := typeFlags(t)
	if !ok || flags != want {
		return nil, ErrInvalidPacketType
	}
	return StandardHeader{packetType: t}, nil
}
