package syntax

import "github.com/stylewright-labs/stylewright/pkg/token"

// NodeKind identifies a host-defined syntax node kind, e.g. "ClassDeclaration".
type NodeKind string

// SymbolKind identifies a host-defined symbol kind, e.g. "NamedType".
type SymbolKind string

// Node is one syntax node of a tree, in host traversal order.
type Node struct {
	Kind NodeKind
	Span token.Span
}

// Symbol is one declared symbol of a tree, in host declaration order.
type Symbol struct {
	Kind SymbolKind
	Name string
	Span token.Span
}

// Tree is the host-provided, immutable structural representation of one
// parsed source file. The engine never mutates a tree; many goroutines may
// read it concurrently.
type Tree struct {
	FilePath string
	Tokens   []token.Token
	Nodes    []Node
	Symbols  []Symbol
}

// EOFToken returns the synthetic end-of-file token, normally the last token
// of the tree.
func (t *Tree) EOFToken() (token.Token, bool) {
	if n := len(t.Tokens); n > 0 && t.Tokens[n-1].IsEOF() {
		return t.Tokens[n-1], true
	}
	return token.Token{}, false
}
