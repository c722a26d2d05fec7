package configrom

import "fmt"

const (
	keyIDDPPCommandSetDirectory      = 0x14
	keyIDDPPCommandSetSpecID         = 0x38
	keyIDDPPCommandSet                = 0x39
	keyIDDPPCommandSetDetails         = 0x3a
	keyIDDPPConnectionRegister        = 0x3b
	keyIDDPPWriteTransactionInterval  = 0x3c
	keyIDDPPUnitSWDetails             = 0x3d
)

// dpp111KeyFormatters covers DPP 1.0's directory entries.
var dpp111KeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeDirectory, KeyID: keyIDDPPCommandSetDirectory, Name: "command set directory"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDDPPCommandSetSpecID, Name: "command set spec id"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDDPPCommandSet, Name: "command set", Immediate: formatDPPCommandSet},
	{KeyType: KeyTypeImmediate, KeyID: keyIDDPPCommandSetDetails, Name: "command set details"},
	{KeyType: KeyTypeCSROffset, KeyID: keyIDDPPConnectionRegister, Name: "connection CSR"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDDPPWriteTransactionInterval, Name: "write transaction interval", Immediate: formatDPPWriteTransactionInterval},
	{KeyType: KeyTypeImmediate, KeyID: keyIDDPPUnitSWDetails, Name: "unit sw details", Immediate: formatDPPUnitSWDetails},
}

func formatDPPCommandSet(value uint32) string {
	switch value {
	case 0xb081f2:
		return "DPC"
	case 0x020000:
		return "FTC"
	default:
		return ""
	}
}

func formatDPPWriteTransactionInterval(value uint32) string {
	return fmt.Sprintf("%dms", value)
}

func formatDPPUnitSWDetails(value uint32) string {
	major := (value & 0x00f00000) >> 20
	minor := (value & 0x000f0000) >> 16
	micro := (value & 0x0000f000) >> 12
	sduWriteOrder := value & 1

	return fmt.Sprintf("v%d.%d.%d, sdu_write_order %d", major, minor, micro, sduWriteOrder)
}
