package configrom

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestIsBigEndian(t *testing.T) {
	hostOrder := make([]byte, 20)
	binary.BigEndian.PutUint32(hostOrder[4:8], busNameQuadlet)

	swapped := make([]byte, len(hostOrder))
	copy(swapped, hostOrder)
	swapped[4], swapped[5], swapped[6], swapped[7] = swapped[7], swapped[6], swapped[5], swapped[4]

	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"already in canonical order", hostOrder, false},
		{"byte-swapped bus name", swapped, true},
		{"too short to tell", []byte{0x01, 0x02, 0x03}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBigEndian(tt.buf); got != tt.want {
				t.Errorf("IsBigEndian() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeByteOrderIdempotence(t *testing.T) {
	canonical := make([]byte, 20)
	binary.BigEndian.PutUint32(canonical[4:8], busNameQuadlet)
	for i := range canonical {
		if i < 4 || i >= 8 {
			canonical[i] = byte(i)
		}
	}

	swapped := make([]byte, len(canonical))
	for i := 0; i < len(canonical); i += 4 {
		swapped[i], swapped[i+1], swapped[i+2], swapped[i+3] =
			canonical[i+3], canonical[i+2], canonical[i+1], canonical[i]
	}

	got1 := NormalizeByteOrder(canonical)
	got2 := NormalizeByteOrder(swapped)

	if !bytes.Equal(got1, canonical) {
		t.Errorf("NormalizeByteOrder(canonical) changed an already-canonical buffer")
	}
	if !bytes.Equal(got2, canonical) {
		t.Errorf("NormalizeByteOrder(swapped) = %x, want %x", got2, canonical)
	}
}

func TestQuadletAt(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if got := quadletAt(buf, 0); got != 0x01020304 {
		t.Errorf("quadletAt(buf, 0) = %#x, want 0x01020304", got)
	}
	if got := quadletAt(buf, 4); got != 0x05060708 {
		t.Errorf("quadletAt(buf, 4) = %#x, want 0x05060708", got)
	}
}
