package configrom

import (
	"encoding/binary"
	"strings"
	"testing"
)

// buildCleanROM returns a 12-byte image consisting only of a bus
// information block (declared length 1 quadlet, crc_length 0, so its
// declared CRC of 0 matches computeCRC16 of an empty slice) and an
// empty root directory (declared length 0 quadlets, so its declared
// CRC of 0 matches computeCRC16 of no content quadlets either). Every
// block tiles exactly with no orphan region, so FindAnomalies should
// report nothing at all.
func buildCleanROM() []byte {
	buf := make([]byte, 12)
	binary.BigEndian.PutUint32(buf[0:4], 0x01000000)
	binary.BigEndian.PutUint32(buf[4:8], busNameQuadlet)
	binary.BigEndian.PutUint32(buf[8:12], 0x00000000)
	return buf
}

func TestFindAnomaliesCleanROM(t *testing.T) {
	buf := buildCleanROM()
	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	anomalies := FindAnomalies(set, len(buf))
	if len(anomalies) != 0 {
		t.Errorf("FindAnomalies() on a clean ROM = %+v, want none", anomalies)
	}
	if HasCRCMismatch(anomalies) {
		t.Errorf("HasCRCMismatch() on a clean ROM = true, want false")
	}
}

func TestFindAnomaliesReportsCRCMismatchesAndOrphans(t *testing.T) {
	buf := buildSampleROM(4)
	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	anomalies := FindAnomalies(set, len(buf))
	if !HasCRCMismatch(anomalies) {
		t.Fatalf("HasCRCMismatch() = false, want true: %+v", anomalies)
	}

	var sawOrphan bool
	for _, a := range anomalies {
		if strings.Contains(a.Message, "unreferenced") {
			sawOrphan = true
			if a.Offset != 36+configRomOffset {
				t.Errorf("orphan anomaly offset = %#x, want %#x", a.Offset, 36+configRomOffset)
			}
		}
	}
	if !sawOrphan {
		t.Errorf("FindAnomalies() did not report the orphan region: %+v", anomalies)
	}
}

func TestHasCRCMismatchIgnoresTruncatedCRCLength(t *testing.T) {
	// bus_info_length 1 (block itself fits in 12 bytes) but crc_length
	// 5 (4*(5+1)=24 bytes of CRC coverage, past the 12-byte image).
	// This is a length anomaly, not a CRC mismatch, even though its
	// message mentions "crc_length".
	buf := make([]byte, 12)
	binary.BigEndian.PutUint32(buf[0:4], 0x01050000)
	binary.BigEndian.PutUint32(buf[4:8], busNameQuadlet)
	binary.BigEndian.PutUint32(buf[8:12], 0x00000000)

	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	anomalies := FindAnomalies(set, len(buf))
	if len(anomalies) == 0 {
		t.Fatalf("FindAnomalies() reported no anomalies, want the crc_length truncation")
	}
	for _, a := range anomalies {
		if a.Kind == AnomalyCRCMismatch {
			t.Errorf("anomaly %+v classified as a CRC mismatch, want AnomalyLengthMismatch", a)
		}
	}
	if HasCRCMismatch(anomalies) {
		t.Errorf("HasCRCMismatch() = true for a truncated crc_length, want false")
	}
}

func TestFindAnomaliesOffsetsAreCSRAddresses(t *testing.T) {
	buf := buildSampleROM(4)
	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	for _, a := range FindAnomalies(set, len(buf)) {
		if a.Offset < configRomOffset {
			t.Errorf("anomaly offset %#x was not translated into CSR address space", a.Offset)
		}
	}
}
