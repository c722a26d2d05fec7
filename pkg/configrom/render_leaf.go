package configrom

import "fmt"

// renderLeaf renders one leaf block: its title line naming the spec
// family (if any) and key, the declared-length/CRC header line, and
// its content quadlets as rendered by whichever LeafFormatter its key
// resolves to.
func renderLeaf(leaf *Block) []string {
	id := accumulateSpecIdentifier(leaf.Parent)
	formatter, specName := detectKeyFormatter(id, KeyTypeLeaf, leaf.KeyID)

	quadlets := quadletsOf(leaf.Content())
	offset := leaf.Offset

	var lines []string
	title := formatEntrySpecName(specName) + fmt.Sprintf("%s leaf at %x", formatter.Name, configRomOffset+offset)
	lines = append(lines, blankPrefix()+title)
	lines = append(lines, blankPrefix()+horizontalRule)
	lines = append(lines, linePrefix(offset, quadlets[0])+formatBlockMetadata("leaf", quadlets))

	leafFormatter := formatter.Leaf
	if leafFormatter == nil {
		leafFormatter = formatUnspecifiedLeaf
	}
	lines = append(lines, leafFormatter(offset+4, quadlets[1:])...)

	return lines
}
