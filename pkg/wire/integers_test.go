package wire

import "testing"

func TestTwoByteIntRoundTrip(t *testing.T) {
	values := []TwoByteInt{0, 1, 0x1234, 0x7FFF, 0xFFFF}

	for _, v := range values {
		got := TwoByteIntFromBytes(v.Bytes())
		if got != v {
			t.Errorf("round trip: got 0x%04X, want 0x%04X", uint16(got), uint16(v))
		}
	}
}

func TestTwoByteIntBigEndian(t *testing.T) {
	b := TwoByteInt(0x1234).Bytes()
	if b != [2]byte{0x12, 0x34} {
		t.Errorf("got % X, want 12 34", b)
	}
}

func TestFourByteIntRoundTrip(t *testing.T) {
	values := []FourByteInt{0, 1, 0x12345678, 0x7FFFFFFF, 0xFFFFFFFF}

	for _, v := range values {
		got := FourByteIntFromBytes(v.Bytes())
		if got != v {
			t.Errorf("round trip: got 0x%08X, want 0x%08X", uint32(got), uint32(v))
		}
	}
}

func TestFourByteIntBigEndian(t *testing.T) {
	b := FourByteInt(0x12345678).Bytes()
	if b != [4]byte{0x12, 0x34, 0x56, 0x78} {
		t.Errorf("got % X, want 12 34 56 78", b)
	}
}
