// Package export flattens filtered record subsets into delimited text
// reports, the format the shop opens in a spreadsheet program.
package export

import (
	"strings"
)

// bom keeps Excel happy with the Arabic headers.
const bom = "\ufeff"

// MarshalCSV renders headers plus rows as comma-separated text, quoting
// any field that contains the delimiter, a quote or a newline.
func MarshalCSV(headers []string, rows [][]string) []byte {
	var b strings.Builder
	b.WriteString(bom)
	writeRow(&b, headers)
	for _, row := range rows {
		writeRow(&b, row)
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(f))
	}
	b.WriteByte('\n')
}

func escape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
