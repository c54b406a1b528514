package token

// TriviaKind classifies non-semantic text attached to a token.
type TriviaKind int32

// Trivia kinds.
const (
	// TriviaWhitespace is horizontal whitespace (spaces, tabs).
	TriviaWhitespace TriviaKind = iota
	// TriviaEndOfLine is a line terminator.
	TriviaEndOfLine
	// TriviaLineComment is a single-line comment.
	TriviaLineComment
	// TriviaBlockComment is a delimited block comment.
	TriviaBlockComment
	// TriviaDocComment is a documentation comment.
	TriviaDocComment
	// TriviaDirective is a preprocessor or compiler directive.
	TriviaDirective
	// TriviaOther is any host-specific trivia not covered above.
	TriviaOther
)

// String returns the canonical name of the trivia kind. The same names are
// used by the tree-dump codec in package syntax.
func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaEndOfLine:
		return "EndOfLine"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocComment:
		return "DocComment"
	case TriviaDirective:
		return "Directive"
	default:
		return "Other"
	}
}

// IsComment returns true for line, block, and doc comments.
func (k TriviaKind) IsComment() bool {
	return k == TriviaLineComment || k == TriviaBlockComment || k == TriviaDocComment
}

// TriviaKindByName returns the trivia kind for a canonical name.
// Unknown names map to TriviaOther.
func TriviaKindByName(name string) (TriviaKind, bool) {
	switch name {
	case "Whitespace":
		return TriviaWhitespace, true
	case "EndOfLine":
		return TriviaEndOfLine, true
	case "LineComment":
		return TriviaLineComment, true
	case "BlockComment":
		return TriviaBlockComment, true
	case "DocComment":
		return TriviaDocComment, true
	case "Directive":
		return TriviaDirective, true
	case "Other":
		return TriviaOther, true
	default:
		return TriviaOther, false
	}
}

// Trivia is one piece of non-semantic text preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span Span
	Text string
}
