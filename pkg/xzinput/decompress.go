// Package xzinput decompresses xz-compressed Configuration ROM dumps.
//
// Devices are occasionally dumped and attached to bug reports as
// xz-compressed captures of /sys/bus/firewire/devices/*/config_rom.
// There is no sectioned container format to key a decompressor
// selection off of, so a single decompressor reached through an
// explicit CLI flag takes its place.
package xzinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// Decompress reads an xz stream in full and returns the decompressed
// bytes. It does not cap the output size; callers that only care
// about the first 1024 bytes of a Configuration ROM should slice the
// result themselves.
func Decompress(r io.Reader) ([]byte, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("xzinput: invalid xz stream: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, fmt.Errorf("xzinput: decompression failed: %w", err)
	}
	return buf.Bytes(), nil
}
