package packet

// Packet is an MQTT control packet: a fixed header, an optional variable
// header, and an optional payload, in that order on the wire.
type Packet struct {
	FixedHeader    FixedHeader
	VariableHeader *VariableHeader
	Payload        *Payload
}

// VariableHeader is a placeholder for the per-type variable header.
type VariableHeader struct{}

// Payload is a placeholder for the per-type payload.
type Payload struct{}

// NewPacket returns a packet with the given fixed header and no variable
// header or payload.
func NewPacket(h FixedHeader) Packet {
	return Packet{FixedHeader: h}
}
