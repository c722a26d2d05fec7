package configrom

import "fmt"

const (
	busInfoLengthMask  = 0xff000000
	busInfoLengthShift = 24
	blockLengthMask    = 0xffff0000
	blockLengthShift   = 16
)

// Discover walks buf, which must already have been passed through
// NormalizeByteOrder, and returns every block reachable from the bus
// information block and its root directory: the root directory
// itself, every sub-directory and leaf referenced from a directory
// entry, discovered recursively, breadth oblivious to depth.
//
// Discovery fails only when a block's declared length, or a directory
// entry's displacement, would run past the end of buf — at that point
// nothing about the block can be trusted. A directory entry that
// simply carries an immediate value or a CSR offset never fails
// discovery; those key types have no block to find.
func Discover(buf []byte) (*BlockSet, error) {
	set := &BlockSet{buf: buf}

	busInfoLength, err := busInfoBlockLength(buf, 0)
	if err != nil {
		return nil, err
	}
	busInfo := &Block{Offset: 0, Length: busInfoLength, Type: BlockBusInfo, buf: buf}
	set.insert(busInfo)

	rootOffset := busInfoLength
	rootLength, err := blockLength(buf, rootOffset)
	if err != nil {
		return nil, err
	}
	root := &Block{Offset: rootOffset, Length: rootLength, Type: BlockRootDirectory, buf: buf}
	set.insert(root)

	if err := discoverDirectoryEntries(set, root); err != nil {
		return nil, err
	}
	return set, nil
}

func busInfoBlockLength(buf []byte, offset int) (int, error) {
	quadlet := quadletAt(buf, offset)
	length := 4 + 4*int((quadlet&busInfoLengthMask)>>busInfoLengthShift)
	if offset+length > len(buf) {
		return 0, fmt.Errorf("configrom: bus information block at offset %#x declares length %d past end of buffer", offset, length)
	}
	return length, nil
}

func blockLength(buf []byte, offset int) (int, error) {
	quadlet := quadletAt(buf, offset)
	length := 4 + 4*int((quadlet&blockLengthMask)>>blockLengthShift)
	if offset+length > len(buf) {
		return 0, fmt.Errorf("configrom: block at offset %#x declares length %d past end of buffer", offset, length)
	}
	return length, nil
}

func discoverDirectoryEntries(set *BlockSet, dir *Block) error {
	entryBase := dir.Offset + 4
	quadletCount := (dir.Length - 4) / 4

	for i := 0; i < quadletCount; i++ {
		entryOffset := entryBase + i*4
		entry := decodeEntry(quadletAt(set.buf, entryOffset))

		if entry.KeyType != KeyTypeLeaf && entry.KeyType != KeyTypeDirectory {
			continue
		}

		blockOffset := entryOffset + 4*int(entry.Value)
		if blockOffset >= len(set.buf) {
			return fmt.Errorf("configrom: directory entry at offset %#x points past end of buffer", entryOffset)
		}

		if existing := set.findByOffset(blockOffset); existing != nil {
			dir.Children = append(dir.Children, existing)
			continue
		}

		length, err := blockLength(set.buf, blockOffset)
		if err != nil {
			return err
		}

		child := &Block{
			Offset: blockOffset,
			Length: length,
			KeyID:  entry.KeyID,
			Parent: dir,
			buf:    set.buf,
		}
		if entry.KeyType == KeyTypeLeaf {
			child.Type = BlockLeaf
		} else {
			child.Type = BlockDirectory
		}

		set.insert(child)
		dir.Children = append(dir.Children, child)

		if child.Type == BlockDirectory {
			if err := discoverDirectoryEntries(set, child); err != nil {
				return err
			}
		}
	}

	return nil
}
