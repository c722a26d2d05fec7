package configrom

// ImmediateFormatter renders the 24-bit value of a KEY_TYPE_IMMEDIATE
// directory entry into the text that follows its key name.
type ImmediateFormatter func(value uint32) string

// LeafFormatter renders a leaf block's content quadlets (the header
// quadlet already stripped) into one already-prefixed output line per
// quadlet or logical field. offset is the byte offset of the first
// content quadlet within the ROM image.
type LeafFormatter func(offset int, quadlets []Quadlet) []string

// KeyFormatter names one (key_type, key_id) pair known to a spec
// family, or — when KeyID is invalidKeyID — the fallback used for
// every key_id of KeyType that no table claims.
//
// Directory entries never need a dedicated formatter here: every
// known directory, in every spec family, renders its content the same
// way, by walking its own entries (see genericDirectoryEntries in
// render.go).
type KeyFormatter struct {
	KeyType int
	KeyID   int
	Name    string

	Immediate ImmediateFormatter
	Leaf      LeafFormatter
}

func findFormatter(table []KeyFormatter, keyType, keyID int) *KeyFormatter {
	for i := range table {
		if table[i].KeyType == keyType && table[i].KeyID == keyID {
			return &table[i]
		}
	}
	return nil
}

var defaultFormatters = [4]KeyFormatter{
	KeyTypeImmediate: {KeyType: KeyTypeImmediate, KeyID: invalidKeyID, Name: unspecifiedEntryName, Immediate: formatUnspecifiedImmediate},
	KeyTypeCSROffset: {KeyType: KeyTypeCSROffset, KeyID: invalidKeyID, Name: unspecifiedEntryName},
	KeyTypeLeaf:      {KeyType: KeyTypeLeaf, KeyID: invalidKeyID, Name: unspecifiedEntryName, Leaf: formatUnspecifiedLeaf},
	KeyTypeDirectory: {KeyType: KeyTypeDirectory, KeyID: invalidKeyID, Name: unspecifiedEntryName},
}

func formatUnspecifiedImmediate(value uint32) string {
	return "(immediate value)"
}

// specEntry binds one registered (specifier_id, version) pair to the
// human-readable name shown next to it and the key table consulted
// for entries found underneath it. A nil Table means the spec is
// registered and named, but defines no key ids of its own beyond the
// generic IEEE 1394 bus and CSR ones — true of the IPv4/IPv6, AV/C,
// CAL, EHS, HAVi, Vendor Unique, Alesis audio, iSight factory and HID
// entries below, which exist in the registry purely so their
// directories and leaves get a spec name attached.
type specEntry struct {
	Name       string
	Identifier SpecIdentifier
	Table      []KeyFormatter
}

const (
	ouiICANNIANA = 0x00005e
	ouiINCITS    = 0x00609e
	oui1394TA    = 0x00a02d
	ouiAlesis    = 0x000595
	ouiApple     = 0x000a27
	ouiLaCie     = 0x00d04b
)

// specRegistry is the closed set of (specifier_id, version) pairs this
// package recognizes, drawn from IEEE 1394, 1394 Trade Association,
// SBP, and a handful of vendor-specific unit specifications seen in
// real Configuration ROMs. It is consulted only after a block's own
// spec identifier has been accumulated from its directory context.
var specRegistry = []specEntry{
	{"IPv4 over 1394 (RFC 2734)", SpecIdentifier{ouiICANNIANA, 0x000001}, nil},
	{"IPv6 over 1394 (RFC 3146)", SpecIdentifier{ouiICANNIANA, 0x000002}, nil},
	// SBP-2 and SBP-3 share the same specifier id and key table.
	{"SBP-2", SpecIdentifier{ouiINCITS, 0x010483}, sbpKeyFormatters},
	{"AV/C over SBP-3", SpecIdentifier{ouiINCITS, 0x0105bb}, sbpKeyFormatters},
	{"AV/C", SpecIdentifier{oui1394TA, 0x010001}, nil},
	{"CAL", SpecIdentifier{oui1394TA, 0x010002}, nil},
	{"EHS", SpecIdentifier{oui1394TA, 0x010004}, nil},
	{"HAVi", SpecIdentifier{oui1394TA, 0x010008}, nil},
	{"Vendor Unique", SpecIdentifier{oui1394TA, 0x014000}, nil},
	{"Vendor Unique and AV/C", SpecIdentifier{oui1394TA, 0x014001}, nil},
	{"IIDC 1.04", SpecIdentifier{oui1394TA, 0x000100}, iidc104KeyFormatters},
	{"IIDC 1.20", SpecIdentifier{oui1394TA, 0x000101}, iidc104KeyFormatters},
	{"IIDC 1.30", SpecIdentifier{oui1394TA, 0x000102}, iidc131KeyFormatters},
	{"IIDC2", SpecIdentifier{oui1394TA, 0x000110}, iidc2100KeyFormatters},
	{"DPP 1.0", SpecIdentifier{oui1394TA, 0x0a6be2}, dpp111KeyFormatters},
	{"IICP 1.0", SpecIdentifier{oui1394TA, 0x4b661f}, iicpKeyFormatters},
	{"audio", SpecIdentifier{ouiAlesis, 0x000001}, nil},
	{"iSight audio unit", SpecIdentifier{ouiApple, 0x000010}, appleISightAudioKeyFormatters},
	{"iSight factory unit", SpecIdentifier{ouiApple, 0x000011}, nil},
	{"iSight iris unit", SpecIdentifier{ouiApple, 0x000012}, appleISightIrisKeyFormatters},
	{"HID", SpecIdentifier{ouiLaCie, 0x484944}, nil},
}

// detectKeyFormatter resolves the KeyFormatter and, where applicable,
// the spec display name for a directory entry's (key_type, key_id)
// pair, given the spec identifier accumulated for the block it lives
// in. The search order mirrors the registry's layered fallback: the
// entry's own registered spec family first, then the generic IEEE
// 1394 bus table, then the generic CSR table, and finally a
// per-key-type default that names nothing specific.
func detectKeyFormatter(id SpecIdentifier, keyType, keyID int) (*KeyFormatter, string) {
	for _, entry := range specRegistry {
		if entry.Identifier != id {
			continue
		}
		if f := findFormatter(entry.Table, keyType, keyID); f != nil {
			return f, entry.Name
		}
		break
	}

	if f := findFormatter(ieee1394BusKeyFormatters, keyType, keyID); f != nil {
		return f, ""
	}

	if f := findFormatter(csrKeyFormatters, keyType, keyID); f != nil {
		return f, ""
	}

	f := defaultFormatters[keyType]
	return &f, ""
}
