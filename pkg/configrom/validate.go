package configrom

import "fmt"

// AnomalyKind classifies an Anomaly for callers that need to react
// differently to a CRC mismatch than to a length mismatch or an
// orphan region, without parsing Message.
type AnomalyKind int

const (
	AnomalyCRCMismatch AnomalyKind = iota
	AnomalyLengthMismatch
	AnomalyOrphan
)

// Anomaly is one annotational discrepancy the text rendering would
// otherwise only surface inline: a CRC mismatch, a declared length
// that disagreed with the block's actual content, or an orphan region
// no directory entry ever referenced. Anomalies never abort a render;
// they are collected here purely so a caller (the validate CLI
// subcommand) can report them without re-parsing the rendered text.
type Anomaly struct {
	Offset  int
	Kind    AnomalyKind
	Message string
}

// FindAnomalies walks every block in set and reports each one whose
// header disagrees with its own content, or that Normalize had to
// synthesize to cover an unreferenced gap.
func FindAnomalies(set *BlockSet, romLength int) []Anomaly {
	var anomalies []Anomaly

	for _, b := range set.Blocks() {
		switch b.Type {
		case BlockBusInfo:
			quadlets := quadletsOf(b.buf)
			crcLength := (quadlets[0] & busInfoCRCLengthFieldMask) >> busInfoCRCLengthFieldShift
			declaredCRC := uint16(quadlets[0] & busInfoCRCFieldMask)
			if 4*(int(crcLength)+1) > romLength {
				anomalies = append(anomalies, Anomaly{
					Offset:  b.Offset + configRomOffset,
					Kind:    AnomalyLengthMismatch,
					Message: fmt.Sprintf("bus information block declares crc_length %d past available data", crcLength),
				})
				continue
			}
			actualCRC := computeCRC16(quadlets[1 : 1+crcLength])
			if declaredCRC != actualCRC {
				anomalies = append(anomalies, Anomaly{
					Offset:  b.Offset + configRomOffset,
					Kind:    AnomalyCRCMismatch,
					Message: fmt.Sprintf("bus information block crc %d, should be %d", declaredCRC, actualCRC),
				})
			}

		case BlockRootDirectory, BlockDirectory, BlockLeaf:
			quadlets := quadletsOf(b.Content())
			declaredLength := int((quadlets[0] & blockLengthFieldMask) >> blockLengthFieldShift)
			if declaredLength+1 != len(quadlets) {
				anomalies = append(anomalies, Anomaly{
					Offset:  b.Offset + configRomOffset,
					Kind:    AnomalyLengthMismatch,
					Message: fmt.Sprintf("%s declares length %d, actual length %d", b.Type, declaredLength, len(quadlets)-1),
				})
			}
			declaredCRC := uint16(quadlets[0] & blockCRCFieldMask)
			actualCRC := computeCRC16(quadlets[1:])
			if declaredCRC != actualCRC {
				anomalies = append(anomalies, Anomaly{
					Offset:  b.Offset + configRomOffset,
					Kind:    AnomalyCRCMismatch,
					Message: fmt.Sprintf("%s crc %d, should be %d", b.Type, declaredCRC, actualCRC),
				})
			}

		case BlockOrphan:
			anomalies = append(anomalies, Anomaly{
				Offset:  b.Offset + configRomOffset,
				Kind:    AnomalyOrphan,
				Message: fmt.Sprintf("%d bytes unreferenced by any directory entry", b.Length),
			})
		}
	}

	return anomalies
}

// HasCRCMismatch reports whether any anomaly in anomalies is a CRC
// discrepancy, as opposed to a length mismatch or an orphan region —
// the distinction the validate CLI subcommand's exit code turns on.
func HasCRCMismatch(anomalies []Anomaly) bool {
	for _, a := range anomalies {
		if a.Kind == AnomalyCRCMismatch {
			return true
		}
	}
	return false
}
