package token

// Kind represents the kind of a lexical token.
//
// Built-in kinds cover only what the engine itself needs to distinguish;
// everything language-specific is registered dynamically by the host via
// Register().
type Kind int32

// Built-in token kinds.
const (
	// EOF marks the synthetic end-of-file token. It is always the last
	// token of a tree and may carry leading trivia (trailing file content).
	EOF Kind = iota
	// ILLEGAL marks a token the host parser could not classify.
	ILLEGAL
)

// maxBuiltin is the highest reserved built-in kind ID.
// Dynamically registered kinds start above it.
const maxBuiltin = 99

// String returns the name of the token kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	}
	if name, ok := dynamicName(k); ok {
		return name
	}
	return "UNKNOWN"
}

// Token is the smallest syntactic unit produced by the host parser.
// The engine treats tokens as read-only.
type Token struct {
	Kind          Kind
	Text          string
	Span          Span
	LeadingTrivia []Trivia
}

// IsEOF returns true for the synthetic end-of-file token.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}
