package configrom

// renderOrphan renders an orphan block: the raw quadlets that no
// directory entry ever referenced, each flagged as unreferenced data.
func renderOrphan(orphan *Block) []string {
	quadlets := quadletsOf(orphan.Content())
	lines := make([]string, len(quadlets))
	for i, q := range quadlets {
		lines[i] = linePrefix(orphan.Offset+i*4, q) + "(unreferenced data)"
	}
	return lines
}
