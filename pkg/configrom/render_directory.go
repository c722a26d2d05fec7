package configrom

import "fmt"

// renderDirectory renders a sub-directory block: a title line naming
// the key it was referenced under (without a spec family prefix),
// then its entries via genericDirectoryEntries.
func renderDirectory(dir *Block) []string {
	id := accumulateSpecIdentifier(directorySpecIdentifierBase(dir))
	formatter, _ := detectKeyFormatter(id, KeyTypeDirectory, dir.KeyID)

	quadlets := quadletsOf(dir.Content())
	offset := dir.Offset

	var lines []string
	lines = append(lines, blankPrefix()+fmt.Sprintf("%s directory at %x", formatter.Name, configRomOffset+offset))
	lines = append(lines, blankPrefix()+horizontalRule)
	lines = append(lines, genericDirectoryEntries(offset, quadlets, id)...)
	return lines
}

// renderRootDirectory renders the root directory block: a fixed
// title line, then its entries via genericDirectoryEntries, using the
// root-only VENDOR_INFO-last-wins spec identifier rule instead of a
// parent-chain walk (the root directory has no parent).
func renderRootDirectory(root *Block) []string {
	id := rootDirectorySpecIdentifier(root)

	quadlets := quadletsOf(root.Content())
	offset := root.Offset

	var lines []string
	lines = append(lines, blankPrefix()+"root directory")
	lines = append(lines, blankPrefix()+horizontalRule)
	lines = append(lines, genericDirectoryEntries(offset, quadlets, id)...)
	return lines
}
