// Package configrom discovers and renders the block structure of an
// IEEE 1212 / IEEE 1394 Configuration ROM image: the bus information
// block, the root directory, every leaf and sub-directory reachable
// from it, and any unreferenced "orphan" regions.
//
// The package is split into byte-slice parsing and bounds checking in
// one half (quadlet.go, block.go, discover.go, normalize.go, crc.go),
// and a specification-aware rendering layer in the other half
// (registry.go, the keyformatters_*.go files, and render*.go).
package configrom
