package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fw1394/config-rom-pp/pkg/configrom"
)

// JSON renders the discovered block set as a structured JSON
// document instead of the annotated text view, one object per block
// with its offset, type, and decoded fields.
type JSON struct{}

func (JSON) Run(w io.Writer, set *configrom.BlockSet, romLength int) error {
	blocks, err := configrom.BuildJSONBlocks(set)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(blocks, "", "\t")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func init() {
	RegisterCLI("json", "render the discovered block set as JSON", 0, func(args []string) (Command, error) {
		return JSON{}, nil
	})
}
