package configrom

import (
	"encoding/binary"
	"testing"
)

func assertTilesExactly(t *testing.T, set *BlockSet, length int) {
	t.Helper()
	blocks := set.Blocks()
	if len(blocks) == 0 {
		t.Fatalf("no blocks discovered")
	}
	if blocks[0].Offset != 0 {
		t.Errorf("first block starts at %d, want 0", blocks[0].Offset)
	}
	for i := 0; i+1 < len(blocks); i++ {
		if blocks[i].Offset+blocks[i].Length != blocks[i+1].Offset {
			t.Errorf("gap or overlap between block %d (ends %d) and block %d (starts %d)",
				i, blocks[i].Offset+blocks[i].Length, i+1, blocks[i+1].Offset)
		}
	}
	last := blocks[len(blocks)-1]
	if last.Offset+last.Length != length {
		t.Errorf("last block ends at %d, want %d", last.Offset+last.Length, length)
	}
}

func TestNormalizeFillsOrphanGaps(t *testing.T) {
	buf := buildSampleROM(4)

	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	assertTilesExactly(t, set, len(buf))

	blocks := set.Blocks()
	orphan := blocks[len(blocks)-1]
	if orphan.Type != BlockOrphan {
		t.Fatalf("last block type = %v, want BlockOrphan", orphan.Type)
	}
	if orphan.Offset != 36 || orphan.Length != 4 {
		t.Errorf("orphan = {offset:%d length:%d}, want {offset:36 length:4}", orphan.Offset, orphan.Length)
	}
}

func TestNormalizeClampsOverlappingLength(t *testing.T) {
	buf := make([]byte, 32)
	put := func(offset int, v uint32) {
		binary.BigEndian.PutUint32(buf[offset:offset+4], v)
	}

	put(0, 0x01000000)
	put(4, busNameQuadlet)

	put(8, 0x00020000)  // root directory header: 2 entries
	put(12, 0xd1000002) // directory entry, displacement 2 -> offset 20
	put(16, 0x81000003) // leaf entry, displacement 3 -> offset 28

	put(20, 0x00020000) // sub-directory declares 2 quadlets (12 bytes): would reach offset 32
	put(24, 0)
	put(28, 0x00000000) // leaf header at offset 28: length 0 quadlets

	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	subdir := set.findByOffset(20)
	if subdir == nil {
		t.Fatalf("sub-directory at offset 20 not discovered")
	}
	if subdir.Length != 12 {
		t.Fatalf("sub-directory length before Normalize = %d, want 12 (undisturbed by discovery)", subdir.Length)
	}

	Normalize(set, len(buf))

	if subdir.Length != 8 {
		t.Errorf("sub-directory length after Normalize = %d, want 8 (clamped to the leaf that follows it)", subdir.Length)
	}
	assertTilesExactly(t, set, len(buf))
}
