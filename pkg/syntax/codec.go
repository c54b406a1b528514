package syntax

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/stylewright-labs/stylewright/pkg/token"
)

// Tree-dump JSON shapes. Token and trivia kinds travel by name so dumps stay
// stable across hosts; unknown token kind names are registered on decode.

type treeDump struct {
	FilePath string       `json:"filePath"`
	Tokens   []tokenDump  `json:"tokens"`
	Nodes    []nodeDump   `json:"nodes,omitempty"`
	Symbols  []symbolDump `json:"symbols,omitempty"`
}

type tokenDump struct {
	Kind          string       `json:"kind"`
	Text          string       `json:"text,omitempty"`
	Span          token.Span   `json:"span"`
	LeadingTrivia []triviaDump `json:"leadingTrivia,omitempty"`
}

type triviaDump struct {
	Kind string     `json:"kind"`
	Span token.Span `json:"span"`
	Text string     `json:"text,omitempty"`
}

type nodeDump struct {
	Kind string     `json:"kind"`
	Span token.Span `json:"span"`
}

type symbolDump struct {
	Kind string     `json:"kind"`
	Name string     `json:"name"`
	Span token.Span `json:"span"`
}

// DecodeTree reads one JSON tree dump.
func DecodeTree(r io.Reader) (*Tree, error) {
	var dump treeDump
	dec := json.NewDecoder(r)
	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode tree dump: %w", err)
	}
	if dump.FilePath == "" {
		return nil, fmt.Errorf("decode tree dump: missing filePath")
	}

	tree := &Tree{FilePath: dump.FilePath}
	for _, td := range dump.Tokens {
		kind, ok := token.Lookup(td.Kind)
		if !ok {
			kind = token.Register(td.Kind)
		}
		tok := token.Token{Kind: kind, Text: td.Text, Span: td.Span}
		for _, tr := range td.LeadingTrivia {
			tk, _ := token.TriviaKindByName(tr.Kind)
			tok.LeadingTrivia = append(tok.LeadingTrivia, token.Trivia{
				Kind: tk,
				Span: tr.Span,
				Text: tr.Text,
			})
		}
		tree.Tokens = append(tree.Tokens, tok)
	}
	for _, nd := range dump.Nodes {
		tree.Nodes = append(tree.Nodes, Node{Kind: NodeKind(nd.Kind), Span: nd.Span})
	}
	for _, sd := range dump.Symbols {
		tree.Symbols = append(tree.Symbols, Symbol{Kind: SymbolKind(sd.Kind), Name: sd.Name, Span: sd.Span})
	}
	return tree, nil
}

// EncodeTree writes a tree as a JSON tree dump.
func EncodeTree(w io.Writer, tree *Tree) error {
	dump := treeDump{FilePath: tree.FilePath}
	for _, tok := range tree.Tokens {
		td := tokenDump{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span}
		for _, tr := range tok.LeadingTrivia {
			td.LeadingTrivia = append(td.LeadingTrivia, triviaDump{
				Kind: tr.Kind.String(),
				Span: tr.Span,
				Text: tr.Text,
			})
		}
		dump.Tokens = append(dump.Tokens, td)
	}
	for _, nd := range tree.Nodes {
		dump.Nodes = append(dump.Nodes, nodeDump{Kind: string(nd.Kind), Span: nd.Span})
	}
	for _, sd := range tree.Symbols {
		dump.Symbols = append(dump.Symbols, symbolDump{Kind: string(sd.Kind), Name: sd.Name, Span: sd.Span})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("encode tree dump: %w", err)
	}
	return nil
}

// ReadTree loads a JSON tree dump from disk.
func ReadTree(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read tree dump: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeTree(f)
}
