// Package cli registers the subcommands config-rom-pp accepts after
// its input has been discovered and normalized: each subcommand calls
// RegisterCLI from an init function, and main builds its command list
// by calling ParseCLI on the CLI arguments left over after flag
// parsing.
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/fw1394/config-rom-pp/pkg/configrom"
)

// Command renders one view of a discovered, normalized Configuration
// ROM block set to w.
type Command interface {
	Run(w io.Writer, set *configrom.BlockSet, romLength int) error
}

var commandRegistry = map[string]commandEntry{}

type commandEntry struct {
	numArgs int
	help    string
	create  func(args []string) (Command, error)
}

// RegisterCLI makes a subcommand available to ParseCLI. Call it from
// an init function in the file defining the subcommand.
func RegisterCLI(name, help string, numArgs int, create func(args []string) (Command, error)) {
	if _, ok := commandRegistry[name]; ok {
		panic(fmt.Sprintf("cli: two subcommands registered under the same name: %q", name))
	}
	commandRegistry[name] = commandEntry{numArgs: numArgs, help: help, create: create}
}

// ParseCLI builds the list of Commands named by args, in order. An
// unrecognized subcommand name, or one given too few arguments, is
// reported as an error rather than panicking.
func ParseCLI(args []string) ([]Command, error) {
	var commands []Command
	for len(args) > 0 {
		name := args[0]
		args = args[1:]

		entry, ok := commandRegistry[name]
		if !ok {
			return nil, fmt.Errorf("cli: unknown subcommand %q\n%s", name, ListCLI())
		}
		if entry.numArgs > len(args) {
			return nil, fmt.Errorf("cli: subcommand %q needs %d argument(s), got %d\nusage: %s", name, entry.numArgs, len(args), entry.help)
		}

		cmd, err := entry.create(args[:entry.numArgs])
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
		args = args[entry.numArgs:]
	}
	return commands, nil
}

// ExecuteCLI runs each command against set in order, stopping at the
// first error.
func ExecuteCLI(w io.Writer, set *configrom.BlockSet, romLength int, commands []Command) error {
	for _, cmd := range commands {
		if err := cmd.Run(w, set, romLength); err != nil {
			return err
		}
	}
	return nil
}

// ListCLI renders every registered subcommand's help text, one per
// line, sorted by name.
func ListCLI() string {
	names := make([]string, 0, len(commandRegistry))
	for name := range commandRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	var s string
	for _, name := range names {
		s += fmt.Sprintf("  %-10s: %s\n", name, commandRegistry[name].help)
	}
	return s
}
