// Package pointset holds the immutable key → coordinate mapping consumed
// by the tour builder, and the line-oriented text parser that produces it.
//
// Input format (one point per line):
//
//	<id> <x> <y>
//
// where id is an integer and x, y are decimal numbers. Lines that do not
// match (blank lines, TSPLIB headers such as NAME: or NODE_COORD_SECTION,
// the trailing EOF marker) are skipped. When an id repeats, the last line
// wins.
//
// A PointSet is read-only once constructed: accessors return copies, so a
// single set may be shared by concurrent solver calls.
package pointset
