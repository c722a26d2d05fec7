package configrom

import "encoding/binary"

// Quadlet is the atomic 32-bit storage unit of a Configuration ROM.
// Every field in this package is decoded from a Quadlet using
// big-endian bit numbering (bit 31 is the MSB), as IEEE 1212 defines,
// once NormalizeByteOrder has run.
type Quadlet = uint32

// busNameQuadlet is the ASCII literal "1394", read MSB-first, as it
// appears in quadlet index 1 of a bus information block.
const busNameQuadlet Quadlet = 0x31333934

// quadletAt reads the quadlet at the given byte offset using IEEE
// 1212 bit numbering (big-endian). Callers must have already run
// NormalizeByteOrder over buf.
func quadletAt(buf []byte, offset int) Quadlet {
	return binary.BigEndian.Uint32(buf[offset : offset+4])
}

// IsBigEndian reports whether buf needs byte-swapping before it can
// be read with quadletAt.
//
// The second quadlet of every Configuration ROM is the ASCII bus
// name; for IEEE 1394 it is always "1394". When a little-endian
// 32-bit load of those four bytes (the native load on every realistic
// Go target) equals that value, every quadlet of the dump is stored
// byte-reversed relative to the big-endian field reads this package
// makes, and needs reversing, quadlet by quadlet. In every other case
// — including a dump whose bytes already read "1394" in order — no
// swap is needed. Shorter buffers are reported as needing no swap,
// matching the original tool's behavior of never failing the
// detector itself.
func IsBigEndian(buf []byte) bool {
	if len(buf) < 8 {
		return false
	}
	return binary.LittleEndian.Uint32(buf[4:8]) == busNameQuadlet
}

// NormalizeByteOrder returns a copy of buf with every complete
// quadlet's four bytes reversed, if and only if IsBigEndian reports
// that buf needs it. After this call, every quadletAt read decodes
// correctly regardless of how the dump was originally packed.
//
// A trailing partial quadlet (buf's length not a multiple of 4) is
// left untouched; it is never addressed as a Quadlet by the rest of
// this package.
func NormalizeByteOrder(buf []byte) []byte {
	if !IsBigEndian(buf) {
		return buf
	}

	out := make([]byte, len(buf))
	copy(out, buf)

	n := len(out) - len(out)%4
	for i := 0; i < n; i += 4 {
		out[i], out[i+1], out[i+2], out[i+3] = out[i+3], out[i+2], out[i+1], out[i]
	}
	return out
}
