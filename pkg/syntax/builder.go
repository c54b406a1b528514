package syntax

import "github.com/stylewright-labs/stylewright/pkg/token"

// Builder constructs trees the way a host parser would, tracking byte
// offsets from the accumulated text so spans come out consistent. It is the
// supported way to assemble trees in tests and embedding hosts.
type Builder struct {
	path    string
	offset  int
	pending []token.Trivia
	tokens  []token.Token
	nodes   []Node
	symbols []Symbol
}

// NewBuilder creates a builder for a file at the given path.
func NewBuilder(path string) *Builder {
	return &Builder{path: path}
}

// Trivia appends one piece of leading trivia for the next token.
func (b *Builder) Trivia(kind token.TriviaKind, text string) *Builder {
	b.pending = append(b.pending, token.Trivia{
		Kind: kind,
		Span: token.Span{Start: b.offset, End: b.offset + len(text)},
		Text: text,
	})
	b.offset += len(text)
	return b
}

// Whitespace appends whitespace trivia.
func (b *Builder) Whitespace(text string) *Builder {
	return b.Trivia(token.TriviaWhitespace, text)
}

// Newline appends one end-of-line trivia.
func (b *Builder) Newline() *Builder {
	return b.Trivia(token.TriviaEndOfLine, "\n")
}

// LineComment appends line-comment trivia.
func (b *Builder) LineComment(text string) *Builder {
	return b.Trivia(token.TriviaLineComment, text)
}

// Token appends a token consuming all pending leading trivia.
func (b *Builder) Token(kind token.Kind, text string) *Builder {
	b.tokens = append(b.tokens, token.Token{
		Kind:          kind,
		Text:          text,
		Span:          token.Span{Start: b.offset, End: b.offset + len(text)},
		LeadingTrivia: b.pending,
	})
	b.pending = nil
	b.offset += len(text)
	return b
}

// Node records a syntax node spanning the given range.
func (b *Builder) Node(kind NodeKind, span token.Span) *Builder {
	b.nodes = append(b.nodes, Node{Kind: kind, Span: span})
	return b
}

// Symbol records a declared symbol.
func (b *Builder) Symbol(kind SymbolKind, name string, span token.Span) *Builder {
	b.symbols = append(b.symbols, Symbol{Kind: kind, Name: name, Span: span})
	return b
}

// Build finalizes the tree, appending the end-of-file token with any
// remaining pending trivia.
func (b *Builder) Build() *Tree {
	b.Token(token.EOF, "")
	return &Tree{
		FilePath: b.path,
		Tokens:   b.tokens,
		Nodes:    b.nodes,
		Symbols:  b.symbols,
	}
}
