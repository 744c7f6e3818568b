package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ywlang/ywlib/host"
	"github.com/ywlang/ywlib/text"
)

func formatCodePoints(s text.String) string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = text.CodePoint(r)
	}
	return strings.Join(parts, " ")
}

func formatUTF8(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, " ")
}

func formatUTF16(u []uint16) string {
	parts := make([]string, len(u))
	for i, c := range u {
		parts[i] = fmt.Sprintf("%04X", c)
	}
	return strings.Join(parts, " ")
}

func formatUTF32(s text.String) string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = fmt.Sprintf("%08X", uint32(r))
	}
	return strings.Join(parts, " ")
}

// row is one labelled line of output.
type row struct {
	label string
	value string
}

func encodingRows(s text.String, encs []host.Encoding) []row {
	rows := []row{{fmt.Sprintf("Code points (%d)", len(s)), formatCodePoints(s)}}
	for _, enc := range encs {
		switch enc {
		case host.EncodingUTF8:
			b := text.EncodeUTF8(s)
			rows = append(rows, row{fmt.Sprintf("UTF-8 (%d bytes)", len(b)), formatUTF8(b)})
		case host.EncodingUTF16:
			u := text.EncodeUTF16(s)
			rows = append(rows, row{fmt.Sprintf("UTF-16 (%d units)", len(u)), formatUTF16(u)})
		case host.EncodingUTF32:
			rows = append(rows, row{fmt.Sprintf("UTF-32 (%d units)", len(s)), formatUTF32(s)})
		}
	}
	return rows
}

func writeRows(w io.Writer, rows []row, label func(string) string) {
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %s\n", label(r.label), r.value)
	}
}

// parseEncodings expands "all" or a comma-separated list of encodings.
func parseEncodings(s string) ([]host.Encoding, error) {
	if s == "" || s == "all" {
		return host.Encodings, nil
	}
	var encs []host.Encoding
	for _, name := range strings.Split(s, ",") {
		enc, err := host.ParseEncoding(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		encs = append(encs, enc)
	}
	return encs, nil
}
