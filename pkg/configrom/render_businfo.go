package configrom

import "fmt"

const (
	busInfoBlockLengthFieldMask  = 0xff000000
	busInfoBlockLengthFieldShift = 24
	busInfoCRCLengthFieldMask    = 0x00ff0000
	busInfoCRCLengthFieldShift   = 16
	busInfoCRCFieldMask          = 0x0000ffff
)

// formatBusInfoMetadata renders the bus information block's own
// length and CRC fields, recomputing the CRC over only as many
// quadlets as the image actually has when the declared crc_length
// runs past what was captured.
func formatBusInfoMetadata(quadlets []Quadlet, dataLength int) string {
	header := quadlets[0]
	blockLength := (header & busInfoBlockLengthFieldMask) >> busInfoBlockLengthFieldShift
	crcLength := (header & busInfoCRCLengthFieldMask) >> busInfoCRCLengthFieldShift
	crc := uint16(header & busInfoCRCFieldMask)

	s := fmt.Sprintf("bus_info_length %d, crc_length %d", blockLength, crcLength)

	var actualCRC uint16
	if 4*(int(crcLength)+1) <= dataLength {
		actualCRC = computeCRC16(quadlets[1 : 1+crcLength])
	} else {
		effectiveCRCLength := (dataLength - 4) / 4
		s += fmt.Sprintf(" (up to %d)", effectiveCRCLength)
		actualCRC = computeCRC16(quadlets[1 : 1+effectiveCRCLength])
	}

	s += fmt.Sprintf(", crc %d", crc)
	if crc != actualCRC {
		s += fmt.Sprintf(" (should be %d)", actualCRC)
	}
	return s
}

// formatIEEE1394BusDependentInfo renders quadlet 2 of the bus
// information block when its bus_name is "1394": node capability
// flags, cycle clock accuracy, max_rec, and — once the block carries
// generation 1 fields at all — generation and link speed.
func formatIEEE1394BusDependentInfo(offset int, quadlet Quadlet) []string {
	irmCapable := (quadlet & 0x80000000) != 0
	cmCapable := (quadlet & 0x40000000) != 0
	isCapable := (quadlet & 0x20000000) != 0
	bmCapable := (quadlet & 0x10000000) != 0
	cycClkAcc := (quadlet & 0x00ff0000) >> 16
	maxRec := (quadlet & 0x0000f000) >> 12
	generation := (quadlet & 0x000000f0) >> 4

	b2i := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}

	if generation > 0 {
		pmCapable := (quadlet & 0x08000000) != 0
		maxROM := (quadlet & 0x00000300) >> 8
		spd := quadlet & 0x00000007

		line1 := linePrefix(offset, quadlet) + fmt.Sprintf(
			"irmc %d, cmc %d, isc %d, bmc %d, pmc %d, cyc_clk_acc %d,",
			b2i(irmCapable), b2i(cmCapable), b2i(isCapable), b2i(bmCapable), b2i(pmCapable), cycClkAcc)
		line2 := blankPrefix() + fmt.Sprintf(
			"max_rec %d (%d), max_rom %d, gen %d, spd %d (S%d00)",
			maxRec, 2<<maxRec, maxROM, generation, spd, 1<<spd)
		return []string{line1, line2}
	}

	line := linePrefix(offset, quadlet) + fmt.Sprintf(
		"irmc %d, cmc %d, isc %d, bmc %d, cyc_clk_acc %d, max_rec %d (%d)",
		b2i(irmCapable), b2i(cmCapable), b2i(isCapable), b2i(bmCapable), cycClkAcc, maxRec, 2<<maxRec)
	return []string{line}
}

func formatUnspecifiedBusDependentInfo(offset int, quadlet Quadlet) []string {
	return []string{linePrefix(offset, quadlet)}
}

const busNameIEEE1394 = 0x31333934

// renderBusInfo renders the ROM header and bus information block:
// its title, the declared-length/CRC line, the bus_name and
// bus-dependent-information quadlets, the node unique ID, and any
// trailing quadlets the image carries beyond the fields this package
// knows how to decode.
func renderBusInfo(busInfo *Block, dataLength int) []string {
	quadlets := quadletsOf(busInfo.Content())
	offset := busInfo.Offset

	var lines []string
	lines = append(lines, blankPrefix()+"ROM header and bus information block")
	lines = append(lines, blankPrefix()+horizontalRule)
	lines = append(lines, linePrefix(offset, quadlets[0])+formatBusInfoMetadata(quadletsOf(busInfo.buf), dataLength))

	busName := "unspecified"
	var busDepInfo func(offset int, quadlet Quadlet) []string = formatUnspecifiedBusDependentInfo
	if len(quadlets) > 1 && quadlets[1] == busNameIEEE1394 {
		busName = "1394"
		busDepInfo = formatIEEE1394BusDependentInfo
	}
	lines = append(lines, linePrefix(offset+4, quadlets[1])+fmt.Sprintf("bus_name %q", busName))

	if len(quadlets) > 2 {
		lines = append(lines, busDepInfo(offset+8, quadlets[2])...)
	}

	if len(quadlets) > 4 {
		companyID := (quadlets[3] & 0xffffff00) >> 8
		deviceID := (uint64(quadlets[3])&0x000000ff)<<32 | uint64(quadlets[4])
		eui64 := uint64(quadlets[3])<<32 | uint64(quadlets[4])

		lines = append(lines, linePrefix(offset+12, quadlets[3])+fmt.Sprintf("company_id %06x     | ", companyID))
		lines = append(lines, linePrefix(offset+16, quadlets[4])+fmt.Sprintf("device_id %010x  | EUI-64 %016x", deviceID, eui64))
	}

	for i := 5; i < len(quadlets); i++ {
		lines = append(lines, linePrefix(offset+i*4, quadlets[i]))
	}

	return lines
}
