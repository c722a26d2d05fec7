package configrom

import (
	"strings"
	"testing"
)

func TestFormatSBPLogicalUnitNumber(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  string
	}{
		{"disk, unit 0", 0x000000, "type Disk,"},
		{"tape, unit 0", 0x010000, "type Tape,"},
		{"well known LUN", 0x1f001e, "type w.k.LUN,"},
		{"unknown LUN", 0x1f001f, "type unknown,"},
		{"isochronous flag set", 0x200000, "isoch 1,"},
		{"extended status flag set", 0x800000, "extended_status 1,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatSBPLogicalUnitNumber(tt.value)
			if !strings.Contains(got, tt.want) {
				t.Errorf("formatSBPLogicalUnitNumber(%#x) = %q, want it to contain %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatSBP3Revision(t *testing.T) {
	tests := []struct {
		value uint32
		want  string
	}{
		{0, "0 = SBP-2"},
		{1, "1 = SBP-3"},
		{2, "2"},
	}
	for _, tt := range tests {
		if got := formatSBP3Revision(tt.value); got != tt.want {
			t.Errorf("formatSBP3Revision(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatSBP3PlugControlRegister(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  string
	}{
		{"input plug 3", 0x03, "iPCR, plug_index 3"},
		{"output plug 1", 0x21, "oPCR, plug_index 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatSBP3PlugControlRegister(tt.value)
			if !strings.Contains(got, tt.want) {
				t.Errorf("formatSBP3PlugControlRegister(%#x) = %q, want it to contain %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatSBPReconnectTimeout(t *testing.T) {
	got := formatSBPReconnectTimeout(9)
	if !strings.Contains(got, "max_reconnect_hold 10s") {
		t.Errorf("formatSBPReconnectTimeout(9) = %q, want max_reconnect_hold 10s (value+1)", got)
	}
}

func TestFormatIIDC131UnitSubSWVersion(t *testing.T) {
	if got := formatIIDC131UnitSubSWVersion(0x20); got != "v1.32" {
		t.Errorf("formatIIDC131UnitSubSWVersion(0x20) = %q, want %q", got, "v1.32")
	}
}

func TestFormatIIDC2UnitSubSWVersion(t *testing.T) {
	if got := formatIIDC2UnitSubSWVersion(0x00010203); got != "v1.2.3" {
		t.Errorf("formatIIDC2UnitSubSWVersion(0x00010203) = %q, want %q", got, "v1.2.3")
	}
}

func TestFormatDPPCommandSet(t *testing.T) {
	tests := []struct {
		value uint32
		want  string
	}{
		{0xb081f2, "DPC"},
		{0x020000, "FTC"},
		{0x000001, ""},
	}
	for _, tt := range tests {
		if got := formatDPPCommandSet(tt.value); got != tt.want {
			t.Errorf("formatDPPCommandSet(%#x) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatDPPUnitSWDetails(t *testing.T) {
	got := formatDPPUnitSWDetails(0x00121001)
	want := "v1.2.1, sdu_write_order 1"
	if got != want {
		t.Errorf("formatDPPUnitSWDetails(0x00121001) = %q, want %q", got, want)
	}
}

func TestFormatIICPVersionPair(t *testing.T) {
	got := formatIICPVersionPair(0x00120300)
	want := "v12.3"
	if got != want {
		t.Errorf("formatIICPVersionPair(0x00120300) = %q, want %q", got, want)
	}
}

func TestFormatIICPCommandSet(t *testing.T) {
	tests := []struct {
		value uint32
		want  string
	}{
		{0x4b661f, "IICP only"},
		{0xc27f10, "IICP488"},
		{0x000000, ""},
	}
	for _, tt := range tests {
		if got := formatIICPCommandSet(tt.value); got != tt.want {
			t.Errorf("formatIICPCommandSet(%#x) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatIICPCapabilities(t *testing.T) {
	got := formatIICPCapabilities(0x00010001)
	if !strings.Contains(got, "hi proto 1") || !strings.Contains(got, "maxIntLength 4 bytes") {
		t.Errorf("formatIICPCapabilities(0x00010001) = %q, want it to mention hi proto 1 and a 4-byte max interrupt length", got)
	}

	got = formatIICPCapabilities(0x00000000)
	if !strings.Contains(got, "maxIntLength -") {
		t.Errorf("formatIICPCapabilities(0) = %q, want it to report no max interrupt length", got)
	}
}
