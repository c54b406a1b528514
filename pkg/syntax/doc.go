// Package syntax defines the immutable syntax-tree surface the style engine
// consumes from a host parser.
//
// A Tree is a flat, host-produced view of one parsed source file: its tokens
// in source order (each carrying leading trivia), plus optional node and
// symbol listings for kind-filtered rules. Trees are built either by an
// embedding host through Builder, or decoded from JSON tree dumps written by
// an out-of-process host (see ReadTree).
package syntax
