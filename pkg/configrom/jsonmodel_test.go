package configrom

import "testing"

func TestBuildJSONBlocks(t *testing.T) {
	buf := buildSampleROM(4)
	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	nodes, err := BuildJSONBlocks(set)
	if err != nil {
		t.Fatalf("BuildJSONBlocks() error: %v", err)
	}
	if len(nodes) != len(set.Blocks()) {
		t.Fatalf("BuildJSONBlocks() returned %d nodes, want %d", len(nodes), len(set.Blocks()))
	}

	byOffset := make(map[int]*JSONBlock)
	for _, n := range nodes {
		byOffset[n.Offset] = n
	}

	busInfo, ok := byOffset[0+configRomOffset]
	if !ok || busInfo.Type != "bus-info" {
		t.Fatalf("missing or mis-typed bus-info node: %+v", busInfo)
	}

	unit, ok := byOffset[20+configRomOffset]
	if !ok {
		t.Fatalf("missing sub-directory node at offset %#x", 20+configRomOffset)
	}
	if unit.Type != "directory" {
		t.Errorf("sub-directory node type = %q, want %q", unit.Type, "directory")
	}
	if unit.KeyID != keyIDUnit {
		t.Errorf("sub-directory node key id = %#x, want %#x", unit.KeyID, keyIDUnit)
	}
	if unit.ParentOffset == nil || *unit.ParentOffset != 8+configRomOffset {
		t.Errorf("sub-directory node parent offset = %v, want %#x", unit.ParentOffset, 8+configRomOffset)
	}
	if unit.SpecifierID == nil || *unit.SpecifierID != 0x001234 {
		t.Errorf("sub-directory node specifier id = %v, want 0x1234", unit.SpecifierID)
	}

	leaf, ok := byOffset[28+configRomOffset]
	if !ok {
		t.Fatalf("missing leaf node at offset %#x", 28+configRomOffset)
	}
	if leaf.Type != "leaf" || leaf.KeyID != keyIDDescriptor {
		t.Errorf("leaf node = %+v, want type leaf and key id %#x", leaf, keyIDDescriptor)
	}

	orphan, ok := byOffset[36+configRomOffset]
	if !ok || orphan.Type != "orphan" {
		t.Fatalf("missing or mis-typed orphan node: %+v", orphan)
	}
	if orphan.Length != 4 {
		t.Errorf("orphan node length = %d, want 4", orphan.Length)
	}
}

func TestBuildJSONBlocksFlagsCRCMismatch(t *testing.T) {
	buf := buildSampleROM(0)
	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	nodes, err := BuildJSONBlocks(set)
	if err != nil {
		t.Fatalf("BuildJSONBlocks() error: %v", err)
	}

	var sawMismatch bool
	for _, n := range nodes {
		if n.Type == "directory" || n.Type == "leaf" {
			if n.CRCMismatch {
				sawMismatch = true
			}
		}
	}
	if !sawMismatch {
		t.Errorf("BuildJSONBlocks() reported no crc_mismatch, but every directory/leaf header in the sample ROM carries a zero crc field that does not match its content")
	}
}
