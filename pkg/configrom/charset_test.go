package configrom

import (
	"strings"
	"testing"
)

func TestCharsetDecode(t *testing.T) {
	quadlets := []Quadlet{0x41424344, 0x00000000, 0x45000000}
	got := charsetDecode(quadlets)
	want := []string{`"ABCD"`, "", `"E"`}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("charsetDecode(%v)[%d] = %q, want %q", quadlets, i, got[i], want[i])
		}
	}
}

func TestFormatTextualDescriptorIgnoresCharacterSet(t *testing.T) {
	// character_set 0x123 (non-zero, vendor-registered) must still
	// decode its content quadlets as plain 8-bit characters: IEEE 1212
	// never changes the content packing based on character_set.
	header := Quadlet(0x01230000)
	content := Quadlet(0x544f4f4c) // "TOOL"

	lines := formatTextualDescriptor(0, []Quadlet{header, content})
	if len(lines) != 2 {
		t.Fatalf("formatTextualDescriptor() returned %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "character_set 291") {
		t.Errorf("header line = %q, want it to report character_set 291", lines[0])
	}
	if !strings.Contains(lines[1], `"TOOL"`) {
		t.Errorf("content line = %q, want it to contain plain ASCII %q regardless of character_set", lines[1], `"TOOL"`)
	}
}

func TestFormatTextualDescriptorMinimalASCII(t *testing.T) {
	lines := formatTextualDescriptor(0, []Quadlet{0x00000000, 0x544f4f4c})
	if !strings.Contains(lines[0], "minimal ASCII") {
		t.Errorf("header line = %q, want it to report minimal ASCII", lines[0])
	}
	if !strings.Contains(lines[1], `"TOOL"`) {
		t.Errorf("content line = %q, want it to contain %q", lines[1], `"TOOL"`)
	}
}
