package configrom

// JSONBlock is the JSON-serializable view of one discovered Block,
// built by BuildJSONBlocks for the json CLI subcommand. It names
// everything the text rendering annotates inline: declared vs. actual
// length and CRC, and — for leaves and sub-directories — the key id
// and spec identifier the rendering pipeline resolved for it.
type JSONBlock struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Type   string `json:"type"`

	ParentOffset *int `json:"parent_offset,omitempty"`

	KeyID   int    `json:"key_id,omitempty"`
	KeyName string `json:"key_name,omitempty"`
	SpecName string `json:"spec_name,omitempty"`

	SpecifierID *uint32 `json:"specifier_id,omitempty"`
	Version     *uint32 `json:"version,omitempty"`

	DeclaredLength int    `json:"declared_length,omitempty"`
	DeclaredCRC    uint16 `json:"declared_crc,omitempty"`
	ActualCRC      uint16 `json:"actual_crc,omitempty"`
	CRCMismatch    bool   `json:"crc_mismatch,omitempty"`
}

type jsonVisitor struct {
	node *JSONBlock
}

func (v *jsonVisitor) Visit(b *Block) error {
	v.node = blockToJSON(b)
	return nil
}

func blockToJSON(b *Block) *JSONBlock {
	node := &JSONBlock{
		Offset: b.Offset + configRomOffset,
		Length: b.Length,
		Type:   b.Type.String(),
	}

	if b.Parent != nil {
		parentOffset := b.Parent.Offset + configRomOffset
		node.ParentOffset = &parentOffset
	}

	switch b.Type {
	case BlockBusInfo:
		quadlets := quadletsOf(b.buf)
		crcLength := (quadlets[0] & busInfoCRCLengthFieldMask) >> busInfoCRCLengthFieldShift
		node.DeclaredCRC = uint16(quadlets[0] & busInfoCRCFieldMask)
		if int(crcLength)+1 <= len(quadlets) {
			node.ActualCRC = computeCRC16(quadlets[1 : 1+crcLength])
		}
		node.CRCMismatch = node.DeclaredCRC != node.ActualCRC

	case BlockRootDirectory, BlockDirectory, BlockLeaf:
		quadlets := quadletsOf(b.Content())
		node.DeclaredLength = int((quadlets[0] & blockLengthFieldMask) >> blockLengthFieldShift)
		node.DeclaredCRC = uint16(quadlets[0] & blockCRCFieldMask)
		node.ActualCRC = computeCRC16(quadlets[1:])
		node.CRCMismatch = node.DeclaredCRC != node.ActualCRC
	}

	switch b.Type {
	case BlockLeaf:
		id := accumulateSpecIdentifier(b.Parent)
		formatter, specName := detectKeyFormatter(id, KeyTypeLeaf, b.KeyID)
		node.KeyID = b.KeyID
		node.KeyName = formatter.Name
		node.SpecName = specName
		setJSONSpecIdentifier(node, id)

	case BlockDirectory:
		id := accumulateSpecIdentifier(directorySpecIdentifierBase(b))
		formatter, specName := detectKeyFormatter(id, KeyTypeDirectory, b.KeyID)
		node.KeyID = b.KeyID
		node.KeyName = formatter.Name
		node.SpecName = specName
		setJSONSpecIdentifier(node, id)
	}

	return node
}

func setJSONSpecIdentifier(node *JSONBlock, id SpecIdentifier) {
	if id.SpecifierID != invalidSpecValue {
		specifierID := id.SpecifierID
		node.SpecifierID = &specifierID
	}
	if id.Version != invalidSpecValue {
		version := id.Version
		node.Version = &version
	}
}

// BuildJSONBlocks renders every block in set, in the same ascending
// offset order Dump uses, as a flat list of JSONBlock values suitable
// for json.MarshalIndent.
func BuildJSONBlocks(set *BlockSet) ([]*JSONBlock, error) {
	nodes := make([]*JSONBlock, 0, len(set.Blocks()))
	for _, b := range set.Blocks() {
		v := &jsonVisitor{}
		if err := b.Apply(v); err != nil {
			return nil, err
		}
		nodes = append(nodes, v.node)
	}
	return nodes, nil
}
