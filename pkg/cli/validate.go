package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fw1394/config-rom-pp/pkg/configrom"
)

// ErrCRCMismatch is returned by Validate.Run when at least one of the
// anomalies it printed was a CRC mismatch, letting main distinguish
// that case from a clean validate pass without re-walking the block
// set itself.
var ErrCRCMismatch = errors.New("cli: configuration rom has a crc mismatch")

// Validate renders only the anomalies a full dump would otherwise
// leave folded into its annotated lines: CRC mismatches, declared
// lengths that disagree with actual content, and orphan regions.
type Validate struct{}

func (Validate) Run(w io.Writer, set *configrom.BlockSet, romLength int) error {
	anomalies := configrom.FindAnomalies(set, romLength)
	for _, a := range anomalies {
		fmt.Fprintf(w, "%3x  %s\n", a.Offset, a.Message)
	}
	if configrom.HasCRCMismatch(anomalies) {
		return ErrCRCMismatch
	}
	return nil
}

func init() {
	RegisterCLI("validate", "print only CRC/length/orphan anomalies", 0, func(args []string) (Command, error) {
		return Validate{}, nil
	})
}
