package configrom

import "fmt"

const (
	keyIDSBP2UnitUniqueID       = 0x0d
	keyIDSBP2LogicalUnitNumber  = 0x14
	keyIDSBP2ManagementAgent    = 0x14
	keyIDSBP2LogicalUnit        = 0x14
	keyIDSBP3Revision           = 0x21
	keyIDSBP3PlugControlReg     = 0x32
	keyIDSBP2CommandSetSpecID   = 0x38
	keyIDSBP2CommandSet         = 0x39
	keyIDSBP2UnitCharacteristic = 0x3a
	keyIDSBP2CommandSetRevision = 0x3b
	keyIDSBP2FirmwareRevision   = 0x3c
	keyIDSBP2ReconnectTimeout   = 0x3d
	keyIDSBP3FastStart          = 0x3e
)

// sbpKeyFormatters covers SBP-2 and SBP-3, whose specRegistry entries
// share the same specifier_id but carry different versions.
var sbpKeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeLeaf, KeyID: keyIDSBP2UnitUniqueID, Name: "unit unique id", Leaf: formatEUI64Leaf},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP2LogicalUnitNumber, Name: "logical unit number", Immediate: formatSBPLogicalUnitNumber},
	{KeyType: KeyTypeCSROffset, KeyID: keyIDSBP2ManagementAgent, Name: "management agent CSR"},
	{KeyType: KeyTypeDirectory, KeyID: keyIDSBP2LogicalUnit, Name: "logical unit"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP3Revision, Name: "revision", Immediate: formatSBP3Revision},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP3PlugControlReg, Name: "plug control register", Immediate: formatSBP3PlugControlRegister},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP2CommandSetSpecID, Name: "command set spec id"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP2CommandSet, Name: "command set", Immediate: formatSBPCommandSet},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP2UnitCharacteristic, Name: "unit char.", Immediate: formatSBPUnitCharacteristic},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP2CommandSetRevision, Name: "command set revision"},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP2FirmwareRevision, Name: "firmware revision", Immediate: formatSBPFirmwareRevision},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP2ReconnectTimeout, Name: "reconnect timeout", Immediate: formatSBPReconnectTimeout},
	{KeyType: KeyTypeImmediate, KeyID: keyIDSBP3FastStart, Name: "fast start", Immediate: formatSBP3FastStart},
}

var sbpDeviceTypes = map[uint32]string{
	0x00: "Disk", 0x01: "Tape", 0x02: "Printer", 0x03: "Processor",
	0x04: "WORM", 0x05: "CD/DVD", 0x06: "Scanner", 0x07: "MOD",
	0x08: "Changer", 0x09: "Comm", 0x0a: "Prepress", 0x0b: "Prepress",
	0x0c: "RAID", 0x0d: "Enclosure", 0x0e: "RBC", 0x0f: "OCRW",
	0x10: "Bridge", 0x11: "OSD", 0x12: "ADC-2",
}

func formatSBPLogicalUnitNumber(value uint32) string {
	extended := (value & 0x800000) != 0
	ordered := (value & 0x400000) >> 22
	isoch := (value & 0x200000) != 0
	deviceType := (value & 0x1f0000) >> 16
	logicalUnit := value & 0x00ffff

	s := ""
	if extended {
		s += " extended_status 1,"
	}
	s += fmt.Sprintf(" ordered %d,", ordered)
	if isoch {
		s += " isoch 1,"
	}

	if name, ok := sbpDeviceTypes[deviceType]; ok {
		s += fmt.Sprintf("type %s,", name)
	} else if logicalUnit == 0x1e {
		s += "type w.k.LUN,"
	} else if logicalUnit == 0x1f {
		s += "type unknown,"
	} else {
		s += fmt.Sprintf("type %02x?,", deviceType)
	}
	return s
}

func formatSBP3Revision(value uint32) string {
	s := fmt.Sprintf("%d", value)
	switch value {
	case 0:
		s += " = SBP-2"
	case 1:
		s += " = SBP-3"
	}
	return s
}

func formatSBP3PlugControlRegister(value uint32) string {
	isOutput := (value & 0x20) != 0
	plugIndex := value & 0x1f
	direction := "i"
	if isOutput {
		direction = "o"
	}
	return fmt.Sprintf("plug control register: %sPCR, plug_index %d", direction, plugIndex)
}

func formatSBPCommandSet(value uint32) string {
	switch value {
	case 0x0104d8:
		return "SCSI Primary Commands 2 and related standards"
	case 0x010001:
		return "AV/C"
	default:
		return ""
	}
}

func formatSBPUnitCharacteristic(value uint32) string {
	distributedData := (value & 0x010000) != 0
	mgtOrbTimeoutSec := 0.5 * float64((value&0x00ff00)>>8)
	orbSize := value & 0x0000ff

	s := ""
	if distributedData {
		s += "distrib. data 1, "
	}
	s += fmt.Sprintf("mgt_ORB_timeout %gs, ORB_size %d quadlets", mgtOrbTimeoutSec, orbSize)
	return s
}

func formatSBPFirmwareRevision(value uint32) string {
	return fmt.Sprintf("%06x", value)
}

func formatSBPReconnectTimeout(value uint32) string {
	maxReconnectHold := 1 + (value & 0x00ffff)
	return fmt.Sprintf("reconnect timeout: max_reconnect_hold %ds", maxReconnectHold)
}

func formatSBP3FastStart(value uint32) string {
	maxPayload := (value & 0x00ff00) >> 8
	fastStartOffset := value & 0x0000ff

	s := ""
	if maxPayload > 0 {
		s += fmt.Sprintf(" max_payload %d bytes,", maxPayload<<2)
	} else {
		s += " max_payload per max_rec,"
	}
	s += fmt.Sprintf(" offset %d", fastStartOffset)
	return s
}
