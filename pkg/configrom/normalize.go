package configrom

// Normalize clamps every discovered block's length so it never runs
// past the next block by offset, then synthesizes an orphan Block to
// cover every gap that clamping leaves behind, or that discovery never
// reached in the first place. After Normalize, the blocks in set tile
// the first length bytes of the ROM image with no gaps and no
// overlaps.
func Normalize(set *BlockSet, length int) {
	clampBlockLengths(set, length)
	fillOrphanGaps(set, length)
}

func clampBlockLengths(set *BlockSet, length int) {
	blocks := set.blocks
	for i, b := range blocks {
		nextOffset := length
		if i+1 < len(blocks) {
			nextOffset = blocks[i+1].Offset
		}
		if b.Offset+b.Length > nextOffset {
			b.Length = nextOffset - b.Offset
		}
	}
}

func fillOrphanGaps(set *BlockSet, length int) {
	i := 0
	for i < len(set.blocks) {
		b := set.blocks[i]
		nextOffset := length
		if i+1 < len(set.blocks) {
			nextOffset = set.blocks[i+1].Offset
		}

		if b.Offset+b.Length >= nextOffset {
			i++
			continue
		}

		orphan := &Block{
			Offset: b.Offset + b.Length,
			Length: nextOffset - (b.Offset + b.Length),
			Type:   BlockOrphan,
			buf:    set.buf,
		}
		set.insert(orphan)
		// Loop again at the same i: the gap after b is now covered by
		// the orphan just inserted at i+1, and that orphan's own
		// trailing gap (if any) is checked on the next pass.
	}
}
