package configrom

import "fmt"

const (
	keyIDIIDCCommandRegistersBase = 0x00
	keyIDIIDCVendorName           = 0x01
	keyIDIIDCModelName            = 0x02

	keyIDIIDC131UnitSubSWVersion = 0x38
	keyIDIIDC131Reserved0        = 0x39
	keyIDIIDC131Reserved1        = 0x3a
	keyIDIIDC131Reserved2        = 0x3b
	keyIDIIDC131VendorUnique0    = 0x3c
	keyIDIIDC131VendorUnique1    = 0x3d
	keyIDIIDC131VendorUnique2   = 0x3e
	keyIDIIDC131VendorUnique3   = 0x3f
)

const iidcReservedName = "(reserved)"

// iidc104KeyFormatters covers IIDC 1.04 and 1.20, which share the
// same key set: a command registers base CSR offset and the vendor
// and model name leaves.
var iidc104KeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeCSROffset, KeyID: keyIDIIDCCommandRegistersBase, Name: "command_regs_base"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDIIDCVendorName, Name: "vendor name", Leaf: formatIIDCNameLeaf},
	{KeyType: KeyTypeLeaf, KeyID: keyIDIIDCModelName, Name: "model name", Leaf: formatIIDCNameLeaf},
}

// iidc131KeyFormatters covers IIDC 1.30's additional unit software
// version, reserved, and vendor-unique immediate entries.
var iidc131KeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeCSROffset, KeyID: keyIDIIDCCommandRegistersBase, Name: "command_regs_base"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDIIDCVendorName, Name: "vendor name", Leaf: formatIIDCNameLeaf},
	{KeyType: KeyTypeLeaf, KeyID: keyIDIIDCModelName, Name: "model name", Leaf: formatIIDCNameLeaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131UnitSubSWVersion, Name: "unit sub sw version", Immediate: formatIIDC131UnitSubSWVersion},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131Reserved0, Name: iidcReservedName},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131Reserved1, Name: iidcReservedName},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131Reserved2, Name: iidcReservedName},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique0, Name: "vendor_unique_info_0"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique1, Name: "vendor_unique_info_1"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique2, Name: "vendor_unique_info_2"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique3, Name: "vendor_unique_info_3"},
}

// iidc2100KeyFormatters covers IIDC2, which keeps IIDC 1.30's unit
// sub sw version/reserved/vendor-unique entries but reports its
// command registers base under a different name and decodes the
// sub sw version as a dotted major.minor.micro triple instead of a
// 1.3x point release.
var iidc2100KeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeCSROffset, KeyID: keyIDIIDCCommandRegistersBase, Name: "IIDC2Entry"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDIIDCVendorName, Name: "vendor name", Leaf: formatIIDCNameLeaf},
	{KeyType: KeyTypeLeaf, KeyID: keyIDIIDCModelName, Name: "model name", Leaf: formatIIDCNameLeaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131UnitSubSWVersion, Name: "unit sub sw version", Immediate: formatIIDC2UnitSubSWVersion},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131Reserved0, Name: iidcReservedName},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131Reserved1, Name: iidcReservedName},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131Reserved2, Name: iidcReservedName},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique0, Name: "vendor_unique_info_0"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique1, Name: "vendor_unique_info_1"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique2, Name: "vendor_unique_info_2"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIIDC131VendorUnique3, Name: "vendor_unique_info_3"},
}

func formatIIDC131UnitSubSWVersion(value uint32) string {
	return fmt.Sprintf("v1.3%d", value>>4)
}

func formatIIDC2UnitSubSWVersion(value uint32) string {
	major := value >> 16
	minor := (value >> 8) & 0xff
	micro := value & 0xff
	return fmt.Sprintf("v%d.%d.%d", major, minor, micro)
}

// formatIIDCNameLeaf renders an IIDC vendor/model name leaf: two
// unannotated header quadlets (a textual descriptor-shaped prefix
// IIDC never actually varies) followed by quoted four-character
// chunks, one per content quadlet.
func formatIIDCNameLeaf(offset int, quadlets []Quadlet) []string {
	lines := make([]string, len(quadlets))

	i := 0
	for ; i < 2 && i < len(quadlets); i++ {
		lines[i] = linePrefix(offset+i*4, quadlets[i])
	}
	for ; i < len(quadlets); i++ {
		line := linePrefix(offset+i*4, quadlets[i])
		if quadlets[i] > 0 {
			line += "\"" + quadletLetters(quadlets[i]) + "\""
		}
		lines[i] = line
	}

	return lines
}
