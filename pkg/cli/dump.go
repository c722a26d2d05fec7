package cli

import (
	"io"

	"github.com/fw1394/config-rom-pp/pkg/configrom"
)

// Dump renders the full annotated text view, the default subcommand
// when none is named on the command line.
type Dump struct{}

func (Dump) Run(w io.Writer, set *configrom.BlockSet, romLength int) error {
	return configrom.Dump(w, set, romLength)
}

func init() {
	RegisterCLI("dump", "render the full annotated text view (default)", 0, func(args []string) (Command, error) {
		return Dump{}, nil
	})
}
