package configrom

// Generic CSR key ids, defined by IEEE 1212 itself rather than by any
// bus- or vendor-specific specification. These are consulted both
// while accumulating a block's spec identifier and while dispatching
// entries to a KeyFormatter.
const (
	keyIDDescriptor      = 0x01
	keyIDBusDepInfo      = 0x02
	keyIDVendorInfo      = 0x03
	keyIDHardwareVersion = 0x04
	keyIDModuleInfo      = 0x07
	keyIDNodeCaps        = 0x0c
	keyIDEUI64           = 0x0d
	keyIDUnit            = 0x11
	keyIDSpecifierID     = 0x12
	keyIDVersion         = 0x13
	keyIDDepInfo         = 0x14
	keyIDUnitLocation    = 0x15
	keyIDModel           = 0x17
	keyIDInstance        = 0x18
	keyIDKeyword         = 0x19
	keyIDFeature         = 0x1a
	keyIDDirectoryID     = 0x20
)

// invalidKeyID marks a KeyFormatter that applies to every key_id of a
// given key_type (the per-type fallbacks), matching no specific entry.
const invalidKeyID = -1

const unspecifiedEntryName = "(unspecified)"
