// Package buffer holds the POD document edited by podgt.
//
// Positions are 0-based (Row, GraphemeCol) pairs counted in grapheme
// clusters. The markup assist works on byte offsets into Text(); Offset and
// PosAt convert between the two. Ranges are half-open: [Start, End).
package buffer
