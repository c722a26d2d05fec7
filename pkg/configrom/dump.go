package configrom

import (
	"fmt"
	"io"
)

// Dump renders every block in set, in ascending offset order, as the
// line-oriented text format this package's rendering was modeled on:
// one block title and body per paragraph, separated by a blank line.
// romLength is the full byte length of the image Discover and
// Normalize ran over, used to flag a bus information block whose
// declared crc_length runs past what the image actually holds.
func Dump(w io.Writer, set *BlockSet, romLength int) error {
	for _, block := range set.Blocks() {
		var lines []string

		switch block.Type {
		case BlockBusInfo:
			lines = renderBusInfo(block, romLength)
		case BlockRootDirectory:
			lines = renderRootDirectory(block)
		case BlockDirectory:
			lines = renderDirectory(block)
		case BlockLeaf:
			lines = renderLeaf(block)
		case BlockOrphan:
			lines = renderOrphan(block)
		}

		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
