// Package pod implements editing assists for POD-style inline markup.
//
// Inline codes look like TAG<...>, where TAG is a single uppercase letter and
// the payload is delimited by one or more '<'/'>' characters. A literal '>'
// inside a single-angle payload is written as the entity E<gt>; the
// doubled-angle form TAG<< ... >> avoids the escape as long as the payload is
// padded with whitespace.
//
// All functions work on a string and byte offsets into it. Offsets are
// clamped into the text; nothing panics on malformed markup. Scans are
// bounded to the paragraph around the offset, as reported by
// Config.Paragraph.
//
// Resolution always prefers the outermost form: the first opener found
// scanning forward from the paragraph start that is not already closed
// before the offset.
package pod
