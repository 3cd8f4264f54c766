// Package editor provides a Bubble Tea component for editing POD text.
//
// The model owns a buffer.Buffer and, when Config.Markup is set, routes
// editing through the markup assist: a typed '>' is resolved by the
// GreaterThanInserter, key bindings double or collapse the span at the
// cursor, paragraph fill never breaks inside S<> or doubled delimiters, and
// suspicious constructs are highlighted as the text changes.
package editor
