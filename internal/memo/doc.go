// Package memo appends timestamped memo lines to date-named daily notes.
//
// Each Append is a complete read-modify-write cycle against one note: the
// note is created when missing, its current content is read, the insertion
// offset is computed from the anchor heading, and the whole note is written
// back. Nothing is cached between calls and no lock is taken, so two
// concurrent appends to the same note may interleave and one entry can be
// lost. The final write replaces the note through a temp file and rename,
// which keeps readers from ever seeing a half-written note but does not
// serialize writers.
package memo
