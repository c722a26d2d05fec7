package configrom

import "fmt"

// configRomOffset is the byte offset, within IEEE 1394's CSR address
// space, that a Configuration ROM image starts at. Every rendered
// offset adds this back in, since Block.Offset is relative to the
// start of the image buffer instead.
const configRomOffset = 0x400

// registerSpaceAddress is the base address of the IEEE 1394 register
// space that a KEY_TYPE_CSR_OFFSET entry's value is measured from.
const registerSpaceAddress = 0xfffff0000000

// linePrefix renders the "<offset>  <quadlet>  " prefix shown at the
// start of almost every output line.
func linePrefix(offset int, quadlet Quadlet) string {
	return fmt.Sprintf("%3x  %08x  ", offset+configRomOffset, quadlet)
}

// blankPrefix renders a prefix-width run of spaces, for continuation
// lines that carry no quadlet of their own.
func blankPrefix() string {
	prefix := fmt.Sprintf("%3x  %08x  ", configRomOffset, uint32(0))
	blank := make([]byte, len(prefix))
	for i := range blank {
		blank[i] = ' '
	}
	return string(blank)
}

// horizontalRule is the dashed separator line printed under a block's
// title line.
const horizontalRule = "-----------------------------------------------------------------"

func formatEntrySpecName(specName string) string {
	if specName == "" {
		return ""
	}
	return specName + " "
}

const blockLengthFieldMask = 0xffff0000
const blockLengthFieldShift = 16
const blockCRCFieldMask = 0x0000ffff

// formatBlockMetadata renders a directory or leaf header quadlet's
// declared length and CRC, flagging either one that disagrees with
// what the block's content actually contains.
func formatBlockMetadata(blockName string, quadlets []Quadlet) string {
	header := quadlets[0]
	declaredLength := (header & blockLengthFieldMask) >> blockLengthFieldShift
	declaredCRC := uint16(header & blockCRCFieldMask)
	actualCRC := computeCRC16(quadlets[1:])

	s := fmt.Sprintf("%s_length %d", blockName, declaredLength)
	if int(declaredLength)+1 != len(quadlets) {
		s += fmt.Sprintf(" (actual length %d)", len(quadlets)-1)
	}

	s += fmt.Sprintf(", crc %d", declaredCRC)
	if declaredCRC != actualCRC {
		s += fmt.Sprintf(" (should be %d)", actualCRC)
	}
	return s
}

func formatImmediateEntry(offset int, value uint32, specName string, formatter *KeyFormatter) string {
	s := formatEntrySpecName(specName)

	if formatter.KeyID != invalidKeyID {
		s += formatter.Name
	}

	if formatter.Immediate != nil {
		if formatter.KeyID != invalidKeyID {
			s += ": "
		}
		s += formatter.Immediate(value)
	}
	return s
}

func formatCSROffsetEntry(offset int, value uint32, specName string, formatter *KeyFormatter) string {
	csrOffset := registerSpaceAddress + 4*uint64(value)

	s := "--> " + formatEntrySpecName(specName)
	if formatter.KeyID != invalidKeyID {
		s += formatter.Name + " "
	} else {
		s += "CSR "
	}
	s += fmt.Sprintf("at %012x", csrOffset)
	return s
}

func formatLeafEntry(offset int, value uint32, specName string, formatter *KeyFormatter) string {
	leafOffset := configRomOffset + offset + 4*int(value)

	s := "--> " + formatEntrySpecName(specName)
	if formatter.KeyID != invalidKeyID {
		s += formatter.Name + " "
	}
	s += fmt.Sprintf("leaf at %x", leafOffset)
	return s
}

func formatDirectoryEntry(offset int, value uint32, specName string, formatter *KeyFormatter) string {
	directoryOffset := configRomOffset + offset + 4*int(value)

	s := "--> " + formatEntrySpecName(specName)
	if formatter.KeyID != invalidKeyID {
		s += formatter.Name + " "
	}
	s += fmt.Sprintf("directory at %x", directoryOffset)
	return s
}

// genericDirectoryEntries renders a directory block's header line
// (its declared length and CRC) followed by one line per entry,
// dispatched to the formatter matching that entry's own key_type.
// Every directory, in every spec family, is rendered this way — only
// the KeyFormatter consulted for each entry's key_id varies by the
// SpecIdentifier accumulated for the directory.
func genericDirectoryEntries(directoryOffset int, quadlets []Quadlet, id SpecIdentifier) []string {
	lines := make([]string, len(quadlets))

	lines[0] = linePrefix(directoryOffset, quadlets[0]) + formatBlockMetadata("directory", quadlets)

	for i := 1; i < len(quadlets); i++ {
		offset := directoryOffset + i*4
		entry := decodeEntry(quadlets[i])

		formatter, specName := detectKeyFormatter(id, entry.KeyType, entry.KeyID)

		line := linePrefix(offset, quadlets[i])
		switch entry.KeyType {
		case KeyTypeImmediate:
			line += formatImmediateEntry(offset, entry.Value, specName, formatter)
		case KeyTypeCSROffset:
			line += formatCSROffsetEntry(offset, entry.Value, specName, formatter)
		case KeyTypeLeaf:
			line += formatLeafEntry(offset, entry.Value, specName, formatter)
		case KeyTypeDirectory:
			line += formatDirectoryEntry(offset, entry.Value, specName, formatter)
		}
		lines[i] = line
	}

	return lines
}
