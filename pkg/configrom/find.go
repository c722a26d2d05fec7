package configrom

import "strings"

// FindMatch is one directory entry or block whose key name or spec
// name contains the substring a find query was looking for.
type FindMatch struct {
	Offset   int
	KeyName  string
	SpecName string
}

// FindEntries walks every directory block in set (the root directory
// included) and every leaf, and returns the blocks and directory
// entries whose resolved key name or spec name contains substr,
// case-insensitively.
func FindEntries(set *BlockSet, substr string) []FindMatch {
	substr = strings.ToLower(substr)
	var matches []FindMatch

	for _, b := range set.Blocks() {
		switch b.Type {
		case BlockRootDirectory:
			matches = append(matches, findInDirectoryEntries(b, rootDirectorySpecIdentifier(b), substr)...)

		case BlockDirectory:
			id := accumulateSpecIdentifier(directorySpecIdentifierBase(b))
			formatter, specName := detectKeyFormatter(id, KeyTypeDirectory, b.KeyID)
			if matchesQuery(formatter.Name, specName, substr) {
				matches = append(matches, FindMatch{Offset: b.Offset + configRomOffset, KeyName: formatter.Name, SpecName: specName})
			}
			matches = append(matches, findInDirectoryEntries(b, id, substr)...)

		case BlockLeaf:
			id := accumulateSpecIdentifier(b.Parent)
			formatter, specName := detectKeyFormatter(id, KeyTypeLeaf, b.KeyID)
			if matchesQuery(formatter.Name, specName, substr) {
				matches = append(matches, FindMatch{Offset: b.Offset + configRomOffset, KeyName: formatter.Name, SpecName: specName})
			}
		}
	}

	return matches
}

func findInDirectoryEntries(dir *Block, id SpecIdentifier, substr string) []FindMatch {
	var matches []FindMatch

	content := dir.Content()
	quadletCount := len(content) / 4
	for i := 1; i < quadletCount; i++ {
		offset := dir.Offset + i*4
		entry := decodeEntry(quadletAt(content, i*4))
		formatter, specName := detectKeyFormatter(id, entry.KeyType, entry.KeyID)
		if matchesQuery(formatter.Name, specName, substr) {
			matches = append(matches, FindMatch{Offset: offset + configRomOffset, KeyName: formatter.Name, SpecName: specName})
		}
	}

	return matches
}

func matchesQuery(keyName, specName, substr string) bool {
	return strings.Contains(strings.ToLower(keyName), substr) || strings.Contains(strings.ToLower(specName), substr)
}
