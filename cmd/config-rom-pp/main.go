package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fw1394/config-rom-pp/pkg/cli"
	"github.com/fw1394/config-rom-pp/pkg/configrom"
	"github.com/fw1394/config-rom-pp/pkg/xzinput"
)

const maxConfigROMLength = 1024

func parseArguments() (file string, xz bool, args []string) {
	flag.StringVar(&file, "f", "", "read the Configuration ROM dump from PATH instead of standard input")
	flag.BoolVar(&xz, "x", false, "the input is xz-compressed; decompress it before reading the dump")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: config-rom-pp [flags] [subcommand [args]]...\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nsubcommands:\n%s", cli.ListCLI())
	}
	flag.Parse()
	return file, xz, flag.Args()
}

func readInput(file string, xz bool) ([]byte, error) {
	var r io.Reader
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		if stat.Mode()&os.ModeCharDevice != 0 {
			return nil, errors.New("standard input is a terminal; pipe a Configuration ROM dump in or use -f")
		}
		r = os.Stdin
	}

	if xz {
		decompressed, err := xzinput.Decompress(r)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(decompressed)
	}

	buf := make([]byte, maxConfigROMLength)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return buf[:n], nil
}

func run() error {
	file, xz, args := parseArguments()

	commands, err := cli.ParseCLI(args)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		commands = []cli.Command{cli.Dump{}}
	}

	buf, err := readInput(file, xz)
	if err != nil {
		return err
	}
	if len(buf) == 0 {
		return errors.New("empty input")
	}

	buf = configrom.NormalizeByteOrder(buf)

	set, err := configrom.Discover(buf)
	if err != nil {
		return err
	}
	configrom.Normalize(set, len(buf))

	return cli.ExecuteCLI(os.Stdout, set, len(buf), commands)
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, cli.ErrCRCMismatch) {
			os.Exit(1)
		}
		log.Fatalf("%v", err)
	}
}
