package configrom

import "fmt"

const (
	keyIDIICPDetails                = 0x38
	keyIDIICPCommandSetSpecID       = 0x39
	keyIDIICPCommandSet             = 0x3a
	keyIDIICPCommandSetDetails      = 0x3b
	keyIDIICPConnectionRegOffset    = 0x3c
	keyIDIICPCapabilities           = 0x3d
	keyIDIICPInterruptEnableRegOffset = 0x3e
	keyIDIICPInterruptHandlerRegOffset = 0x3f
)

// iicpKeyFormatters covers IICP 1.0's directory entries.
var iicpKeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeImmediate, KeyID: keyIDIICPDetails, Name: "details", Immediate: formatIICPVersionPair},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIICPCommandSetSpecID, Name: "command set spec id"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIICPCommandSet, Name: "command set", Immediate: formatIICPCommandSet},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIICPCommandSetDetails, Name: "command set details", Immediate: formatIICPVersionPair},
	{KeyType: KeyTypeCSROffset, KeyID: keyIDIICPConnectionRegOffset, Name: "connection CSR"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDIICPCapabilities, Name: "capabilities", Immediate: formatIICPCapabilities},
	{KeyType: KeyTypeCSROffset, KeyID: keyIDIICPInterruptEnableRegOffset, Name: "interrupt_enable CSR"},
	{KeyType: KeyTypeCSROffset, KeyID: keyIDIICPInterruptHandlerRegOffset, Name: "interrupt_handlr CSR"},
}

// formatIICPVersionPair renders the packed BCD major.minor version
// fields shared by the "details" and "command set details" entries.
func formatIICPVersionPair(value uint32) string {
	major := ((value&0xf00000)>>20)*10 + ((value & 0x0f0000) >> 16)
	minor := ((value&0x00f000)>>12)*10 + ((value & 0x000f00) >> 8)
	return fmt.Sprintf("v%d.%d", major, minor)
}

func formatIICPCommandSet(value uint32) string {
	switch value {
	case 0x4b661f:
		return "IICP only"
	case 0xc27f10:
		return "IICP488"
	default:
		return ""
	}
}

func formatIICPCapabilities(value uint32) string {
	hiProto := (value & 0xff0000) >> 16
	reservedIICP := (value & 0x00ffc0) >> 6
	ccli := (value & 0x000020) >> 5
	cmgr := (value & 0x000010) >> 4
	maxIntLengthExponent := value & 0x00000f

	s := fmt.Sprintf("hi proto %d, IICP %d, ccli %d, cmgr %d", hiProto, reservedIICP, ccli, cmgr)
	if maxIntLengthExponent > 0 {
		maxIntBytes := 2 << maxIntLengthExponent
		s += fmt.Sprintf("  maxIntLength %d bytes", maxIntBytes)
	} else {
		s += "  maxIntLength -"
	}
	return s
}
