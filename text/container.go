package text

import (
	"bytes"
	"encoding/binary"
	"fmt"

	ot "github.com/go-text/typesetting/font/opentype"
)

// unknownStr is the string of enum values without a name.
const unknownStr = "Unknown"

// Format identifies the container format of font data.
type Format int

const (
	// FormatUnknown is data without a recognised signature.
	FormatUnknown Format = iota
	// FormatTrueType is an SFNT file with TrueType outlines (.ttf).
	FormatTrueType
	// FormatOpenType is an SFNT file with CFF outlines (.otf).
	FormatOpenType
	// FormatCollection is a TrueType collection (.ttc).
	FormatCollection
	// FormatWOFF is a WOFF 1.0 container (.woff).
	FormatWOFF
	// FormatWOFF2 is a WOFF 2.0 container (.woff2).
	FormatWOFF2
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTrueType:
		return "TrueType"
	case FormatOpenType:
		return "OpenType"
	case FormatCollection:
		return "Collection"
	case FormatWOFF:
		return "WOFF"
	case FormatWOFF2:
		return "WOFF2"
	default:
		return unknownStr
	}
}

// Font file signatures.
const (
	sigTrueType      = 0x00010000
	sigAppleTrueType = 0x74727565 // "true"
	sigOpenType      = 0x4F54544F // "OTTO"
	sigCollection    = 0x74746366 // "ttcf"
	sigWOFF          = 0x774F4646 // "wOFF"
	sigWOFF2         = 0x774F4632 // "wOF2"
)

// DetectFormat returns the container format of data by its signature.
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}
	switch binary.BigEndian.Uint32(data) {
	case sigTrueType, sigAppleTrueType:
		return FormatTrueType
	case sigOpenType:
		return FormatOpenType
	case sigCollection:
		return FormatCollection
	case sigWOFF:
		return FormatWOFF
	case sigWOFF2:
		return FormatWOFF2
	default:
		return FormatUnknown
	}
}

// toSFNT returns plain SFNT bytes for data, decoding WOFF containers.
// SFNT input is returned unchanged.
func toSFNT(data []byte) ([]byte, Format, error) {
	format := DetectFormat(data)
	switch format {
	case FormatTrueType, FormatOpenType:
		return data, format, nil
	case FormatWOFF:
		out, err := unwrapWOFF(data)
		return out, format, err
	default:
		return nil, format, &FormatError{Format: format}
	}
}

// unwrapWOFF decompresses every table of a WOFF file and rebuilds an SFNT
// file from them.
func unwrapWOFF(data []byte) ([]byte, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to decode WOFF: %w", err)
	}

	tags := ld.Tables() // sorted by tag
	tables := make([]ot.Table, 0, len(tags))
	for _, tag := range tags {
		content, err := ld.RawTable(tag)
		if err != nil {
			return nil, fmt.Errorf("text: failed to decode WOFF table %s: %w", tag, err)
		}
		tables = append(tables, ot.Table{Tag: tag, Content: content})
	}

	flavor := uint32(sigTrueType)
	if ld.Type == ot.OpenType {
		flavor = sigOpenType
	}
	return writeSFNT(flavor, tables), nil
}

// writeSFNT serialises tables (sorted by tag) into an SFNT file. Unlike
// opentype.WriteTTF it pads every table to a four byte boundary, which
// golang.org/x/image/font/sfnt requires.
func writeSFNT(flavor uint32, tables []ot.Table) []byte {
	const (
		headerSize = 12
		recordSize = 16
	)

	n := len(tables)
	size := headerSize + n*recordSize
	for _, t := range tables {
		size += pad4(len(t.Content))
	}
	out := make([]byte, size)

	searchRange, entrySelector := 1, 0
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	binary.BigEndian.PutUint32(out[0:], flavor)
	binary.BigEndian.PutUint16(out[4:], uint16(n))
	binary.BigEndian.PutUint16(out[6:], uint16(searchRange*16))
	binary.BigEndian.PutUint16(out[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(out[10:], uint16(n*16-searchRange*16))

	offset := headerSize + n*recordSize
	for i, t := range tables {
		rec := out[headerSize+i*recordSize:]
		binary.BigEndian.PutUint32(rec[0:], uint32(t.Tag))
		binary.BigEndian.PutUint32(rec[4:], tableChecksum(t.Content))
		binary.BigEndian.PutUint32(rec[8:], uint32(offset))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(t.Content)))
		copy(out[offset:], t.Content)
		offset += pad4(len(t.Content))
	}
	return out
}

func pad4(n int) int {
	return (n + 3) &^ 3
}

func tableChecksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i < len(b); i += 4 {
		var word [4]byte
		copy(word[:], b[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}
