package configrom

// invalidSpecValue marks a SpecIdentifier field that has not yet been
// set while walking a block's parent chain.
const invalidSpecValue uint32 = 0xffffffff

// SpecIdentifier names the (specifier_id, version) pair that a unit,
// feature, or other directory's surrounding context advertises. Every
// registered spec family in specRegistry is keyed by one of these.
type SpecIdentifier struct {
	SpecifierID uint32
	Version     uint32
}

var unsetSpecIdentifier = SpecIdentifier{invalidSpecValue, invalidSpecValue}

// directorySpecIdentifierBase picks the block that spec-identifier
// accumulation starts from for a directory entry. CSR directories that
// merely group metadata about their enclosing unit (vendor info,
// module info, descriptors, bus- and general dependent info,
// instance) inherit that unit's identifier, so accumulation starts
// one level up, at the directory's own parent. A unit or feature
// directory is itself the thing being identified, so accumulation
// starts at the directory itself — and the same holds for every other
// key id, which has no documented reason to inherit from a parent.
func directorySpecIdentifierBase(dir *Block) *Block {
	switch dir.KeyID {
	case keyIDVendorInfo, keyIDModuleInfo, keyIDDescriptor, keyIDBusDepInfo, keyIDDepInfo, keyIDInstance:
		return dir.Parent
	default:
		return dir
	}
}

// accumulateSpecIdentifier walks base and then its ancestors (for as
// long as each is itself a directory), folding in the first
// SPECIFIER_ID and first VERSION immediate entry found at any level.
// A VENDOR_INFO entry seeds specifier_id only as a fallback, when no
// SPECIFIER_ID has set it by the time VENDOR_INFO is seen, whether
// earlier at that same level or at a deeper one already walked.
func accumulateSpecIdentifier(base *Block) SpecIdentifier {
	id := unsetSpecIdentifier

	for base != nil {
		content := base.Content()
		quadletCount := len(content) / 4

		for i := 1; i < quadletCount; i++ {
			entry := decodeEntry(quadletAt(content, i*4))
			if entry.KeyType != KeyTypeImmediate {
				continue
			}

			switch entry.KeyID {
			case keyIDSpecifierID:
				if id.SpecifierID == invalidSpecValue {
					id.SpecifierID = entry.Value
				}
			case keyIDVersion:
				if id.Version == invalidSpecValue {
					id.Version = entry.Value
				}
			case keyIDVendorInfo:
				if id.SpecifierID == invalidSpecValue {
					id.SpecifierID = entry.Value
				}
			}
		}

		if base.Type == BlockDirectory {
			base = base.Parent
		} else {
			base = nil
		}
	}

	return id
}

// rootDirectorySpecIdentifier scans only the root directory's own
// entries for VENDOR_INFO, taking the last occurrence rather than the
// first: the root directory has no parent to inherit from, and a
// VENDOR_INFO entry there names the node's own vendor rather than a
// fallback for some other identifier.
func rootDirectorySpecIdentifier(root *Block) SpecIdentifier {
	id := unsetSpecIdentifier

	content := root.Content()
	quadletCount := len(content) / 4
	for i := 1; i < quadletCount; i++ {
		entry := decodeEntry(quadletAt(content, i*4))
		if entry.KeyType == KeyTypeImmediate && entry.KeyID == keyIDVendorInfo {
			id.SpecifierID = entry.Value
		}
	}

	return id
}
