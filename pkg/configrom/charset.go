package configrom

import "fmt"

// charsetDecode renders a textual descriptor leaf's packed characters
// for display, one string per content quadlet.
//
// Every content quadlet holds up to four 8-bit characters, most
// significant byte first, regardless of the leaf's character_set
// field: IEEE 1212 never specifies an alternate packing for the
// content quadlets themselves, only for how a reader should interpret
// the resulting bytes, so there is nothing for this package to branch
// on.
func charsetDecode(quadlets []Quadlet) []string {
	lines := make([]string, len(quadlets))
	for i, q := range quadlets {
		if q > 0 {
			lines[i] = fmt.Sprintf("\"%s\"", quadletLetters(q))
		}
	}
	return lines
}
