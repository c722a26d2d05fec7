package configrom

import "fmt"

// csrKeyFormatters names the directory entry keys IEEE 1212 itself
// defines, independent of any bus or vendor specification. This table
// is the last fallback detectKeyFormatter consults before giving up
// and naming an entry "(unspecified)".
var csrKeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeLeaf, KeyID: keyIDDescriptor, Name: "descriptor", Leaf: formatDescriptorLeaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDBusDepInfo, Name: "bus dependent info"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDBusDepInfo, Name: "bus dependent info", Leaf: formatUnspecifiedLeaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDVendorInfo, Name: "vendor"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDVendorInfo, Name: "vendor", Leaf: formatUnspecifiedLeaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDHardwareVersion, Name: "hardware version"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDModuleInfo, Name: "module", Leaf: formatEUI64Leaf},
	{KeyType: KeyTypeLeaf, KeyID: keyIDEUI64, Name: "eui-64", Leaf: formatEUI64Leaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSpecifierID, Name: "specifier id"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDVersion, Name: "version"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDDepInfo, Name: "dependent info"},
	{KeyType: KeyTypeCSROffset, KeyID: keyIDDepInfo, Name: "dependent info"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDDepInfo, Name: "dependent info", Leaf: formatUnspecifiedLeaf},
	{KeyType: KeyTypeLeaf, KeyID: keyIDUnitLocation, Name: "unit location", Leaf: formatUnitLocationLeaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDModel, Name: "model"},
	{KeyType: KeyTypeLeaf, KeyID: keyIDKeyword, Name: "keyword", Leaf: formatKeywordLeaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDDirectoryID, Name: "directory id"},
}

// ieee1394BusKeyFormatters names the directory entry keys IEEE 1394
// defines on top of the generic CSR set.
var ieee1394BusKeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeImmediate, KeyID: keyIDNodeCaps, Name: "node capabilities", Immediate: formatNodeCapabilities},
}

func formatNodeCapabilities(value uint32) string {
	return "per IEEE 1394"
}

func formatUnspecifiedLeaf(offset int, quadlets []Quadlet) []string {
	lines := make([]string, len(quadlets))
	for i, q := range quadlets {
		lines[i] = linePrefix(offset+i*4, q)
	}
	return lines
}

func formatEUI64Leaf(offset int, quadlets []Quadlet) []string {
	if len(quadlets) < 2 {
		return nil
	}
	companyID := (quadlets[0] & 0xffffff00) >> 8
	deviceID := (uint64(quadlets[0])&0x000000ff)<<32 | uint64(quadlets[1])
	eui64 := uint64(quadlets[0])<<32 | uint64(quadlets[1])

	return []string{
		linePrefix(offset, quadlets[0]) + fmt.Sprintf("company_id %06x     | ", companyID),
		linePrefix(offset+4, quadlets[1]) + fmt.Sprintf("device_id %010x  | EUI-64 %016x", deviceID, eui64),
	}
}

func formatUnitLocationLeaf(offset int, quadlets []Quadlet) []string {
	if len(quadlets) < 4 {
		return nil
	}
	baseAddress := uint64(quadlets[0])<<32 | uint64(quadlets[1])
	upperBound := uint64(quadlets[2])<<32 | uint64(quadlets[3])

	return []string{
		linePrefix(offset, quadlets[0]) + fmt.Sprintf("base_address %016x", baseAddress),
		linePrefix(offset+4, quadlets[1]),
		linePrefix(offset+8, quadlets[2]) + fmt.Sprintf("upper_bound %016x", upperBound),
		linePrefix(offset+12, quadlets[3]),
	}
}

func formatKeywordLeaf(offset int, quadlets []Quadlet) []string {
	lines := make([]string, len(quadlets))
	for i, q := range quadlets {
		line := linePrefix(offset+i*4, q)
		if q > 0 {
			line += "\"" + quadletLetters(q) + "\""
		}
		lines[i] = line
	}
	return lines
}

// quadletLetters extracts the up-to-four ASCII bytes packed into a
// quadlet, most significant byte first, skipping NUL padding.
func quadletLetters(q Quadlet) string {
	var letters []byte
	for shift := 24; shift >= 0; shift -= 8 {
		b := byte(q >> shift)
		if b != 0 {
			letters = append(letters, b)
		}
	}
	return string(letters)
}

const (
	csrDescTypeMask  = 0xff000000
	csrDescTypeShift = 24
	csrSpecMask      = 0x00ffffff
)

const (
	csrDescTypeTextual = 0x00
	csrDescTypeIcon    = 0x01
)

// formatDescriptorLeaf renders a textual or icon descriptor leaf's
// header quadlet and then dispatches to the formatter for its
// descriptor type.
//
// The descriptor's spec_id field is extracted as quadlet[0] masked by
// csrSpecMask — the field occupies the low 24 bits, so it needs no
// shift.
func formatDescriptorLeaf(offset int, quadlets []Quadlet) []string {
	if len(quadlets) < 1 {
		return nil
	}

	descType := (quadlets[0] & csrDescTypeMask) >> csrDescTypeShift
	specID := quadlets[0] & csrSpecMask

	var typeName string
	var format func(offset int, quadlets []Quadlet) []string
	switch descType {
	case csrDescTypeTextual:
		typeName = "textual descriptor"
		format = formatTextualDescriptor
	case csrDescTypeIcon:
		typeName = "icon descriptor"
		format = formatUnspecifiedLeaf
	default:
		typeName = fmt.Sprintf("descriptor_type %02x, specifier_ID %x", descType, specID)
		format = formatUnspecifiedLeaf
	}

	lines := []string{linePrefix(offset, quadlets[0]) + typeName}
	lines = append(lines, format(offset+4, quadlets[1:])...)
	return lines
}

// formatTextualDescriptor renders a textual descriptor's width/
// character_set/language header quadlet followed by the packed
// characters themselves, decoded through charsetDecode.
func formatTextualDescriptor(offset int, quadlets []Quadlet) []string {
	if len(quadlets) < 1 {
		return nil
	}

	width := quadlets[0] >> 28
	characterSet := (quadlets[0] & 0x0fff0000) >> 16
	language := quadlets[0] & 0x0000ffff

	var header string
	if characterSet == 0 {
		header = "minimal ASCII"
	} else {
		header = fmt.Sprintf("width %d, character_set %d, language %d", width, characterSet, language)
	}

	lines := []string{linePrefix(offset, quadlets[0]) + header}

	text := charsetDecode(quadlets[1:])
	for i, q := range quadlets[1:] {
		line := linePrefix(offset+4+i*4, q)
		lines = append(lines, line+text[i])
	}
	return lines
}
