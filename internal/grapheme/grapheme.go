// Package grapheme maps between byte offsets, grapheme columns, and display
// cells for single lines of text.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// ByteLen returns the byte length of the first n clusters.
// n is clamped to [0, len(clusters)].
func ByteLen(clusters []string, n int) int {
	if n > len(clusters) {
		n = len(clusters)
	}
	total := 0
	for i := 0; i < n; i++ {
		total += len(clusters[i])
	}
	return total
}

// ColumnAt returns the grapheme column containing byte offset off of line.
// Offsets inside a multi-byte cluster snap to the start of that cluster.
func ColumnAt(line string, off int) int {
	if off <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(line)
	col := 0
	for g.Next() {
		_, end := g.Positions()
		if end > off {
			return col
		}
		col++
	}
	return col
}

// Width returns the display width of text in terminal cells.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
