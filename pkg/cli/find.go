package cli

import (
	"fmt"
	"io"

	"github.com/fw1394/config-rom-pp/pkg/configrom"
)

// Find renders every directory entry or block whose resolved key name
// or spec name contains Query, one per line.
type Find struct {
	Query string
}

func (f Find) Run(w io.Writer, set *configrom.BlockSet, romLength int) error {
	matches := configrom.FindEntries(set, f.Query)
	for _, m := range matches {
		if m.SpecName != "" {
			fmt.Fprintf(w, "%3x  %s %s\n", m.Offset, m.SpecName, m.KeyName)
		} else {
			fmt.Fprintf(w, "%3x  %s\n", m.Offset, m.KeyName)
		}
	}
	return nil
}

func init() {
	RegisterCLI("find", "print entries whose key or spec name contains a substring", 1, func(args []string) (Command, error) {
		return Find{Query: args[0]}, nil
	})
}
