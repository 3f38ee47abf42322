package wire

// MaxVarInt is the largest value representable as a variable byte integer
// (28 bits, 4 encoded bytes).
// MQTT 5.0 Section 1.5.5, MQTT 3.1.1 Section 2.2.3
const MaxVarInt = 0x0FFFFFFF

// VarInt is a variable byte integer: a value up to MaxVarInt together with
// its minimal encoded length in bytes. The length is derived from the value
// and never set independently.
type VarInt struct {
	value  uint32
	length int
}

// NewVarInt returns the VarInt for value. It fails with ErrMalformedVarInt
// when value exceeds MaxVarInt, and with ErrVarIntOutOfRange when the
// encoding would need more than 4 bytes (unreachable once the value check
// passed, kept as overflow defense).
func NewVarInt(value uint32) (VarInt, error) {
	if value > MaxVarInt {
		return VarInt{}, ErrMalformedVarInt
	}

	x := value
	length := 1
	for x >= 128 {
		x /= 128
		length++
	}

	if length > 4 {
		return VarInt{}, ErrVarIntOutOfRange
	}

	return VarInt{value: value, length: length}, nil
}

// Value returns the integer value.
func (v VarInt) Value() uint32 {
	return v.value
}

// Len returns the number of significant bytes Encode produces.
func (v VarInt) Len() int {
	return v.length
}

// Encode returns the base-128 encoding: 7 value bits per byte, least
// significant digit first, bit 7 set on every byte except the last. Only
// the first Len() bytes are significant; the rest are zero and must not be
// transmitted.
func (v VarInt) Encode() [4]byte {
	var out [4]byte
	x := v.value
	i := 0

	for {
		b := byte(x % 128)
		x /= 128
		if x > 0 {
			b |= 0x80
		}
		out[i] = b
		i++
		if x == 0 {
			break
		}
	}

	return out
}

// DecodeVarInt decodes a variable byte integer from the front of buf. It
// reads at most 4 bytes, stopping at the first byte with the continuation
// bit clear, and fails with ErrMalformedVarInt when no terminator appears
// within the permitted width (including truncated input).
func DecodeVarInt(buf []byte) (VarInt, error) {
	var value uint32
	var multiplier uint32 = 1

	for i := 0; i < len(buf) && i < 4; i++ {
		// A multiplier past 128^3 means a fifth digit position; the loop
		// bound already prevents that, so this only guards against overflow.
		if multiplier > 128*128*128 {
			return VarInt{}, ErrMalformedVarInt
		}

		b := buf[i]
		value += uint32(b&0x7F) * multiplier
		multiplier *= 128

		if b&0x80 == 0 {
			return VarInt{value: value, length: i + 1}, nil
		}
	}

	return VarInt{}, ErrMalformedVarInt
}
