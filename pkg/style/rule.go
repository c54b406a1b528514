package style

import (
	"context"

	"github.com/stylewright-labs/stylewright/pkg/syntax"
)

// TreeContext is the event context delivered to whole-tree callbacks.
type TreeContext struct {
	Tree     *syntax.Tree
	FilePath string
}

// NodeContext is the event context delivered to node-kind-filtered callbacks.
type NodeContext struct {
	Tree     *syntax.Tree
	Node     syntax.Node
	FilePath string
}

// SymbolContext is the event context delivered to symbol-kind-filtered
// callbacks.
type SymbolContext struct {
	Tree     *syntax.Tree
	Symbol   syntax.Symbol
	FilePath string
}

// Check functions are pure: all state they need arrives via the context
// parameters, and their only output is the returned diagnostics. Long scans
// should poll ctx and return nil on cancellation; the dispatcher discards the
// tree's diagnostics in that case.

// TreeCheckFunc analyzes a whole tree.
type TreeCheckFunc func(ctx context.Context, tc TreeContext) []Diagnostic

// TreeSettingsCheckFunc analyzes a whole tree with resolved settings.
type TreeSettingsCheckFunc func(ctx context.Context, tc TreeContext, settings *Settings) []Diagnostic

// NodeCheckFunc analyzes one syntax node.
type NodeCheckFunc func(ctx context.Context, nc NodeContext) []Diagnostic

// NodeSettingsCheckFunc analyzes one syntax node with resolved settings.
type NodeSettingsCheckFunc func(ctx context.Context, nc NodeContext, settings *Settings) []Diagnostic

// SymbolCheckFunc analyzes one declared symbol.
type SymbolCheckFunc func(ctx context.Context, sc SymbolContext) []Diagnostic

// SymbolSettingsCheckFunc analyzes one declared symbol with resolved settings.
type SymbolSettingsCheckFunc func(ctx context.Context, sc SymbolContext, settings *Settings) []Diagnostic

// RuleDef is a data-driven rule definition. Rules are stateless; a rule
// subscribes to one or more trigger granularities by setting the matching
// check functions. For kind-filtered subscriptions the dispatcher memoizes
// the kind set, so listing a kind repeatedly costs nothing.
type RuleDef struct {
	ID          string   // Unique identifier, e.g. "LA01"
	Name        string   // Human-readable name, e.g. "layout.consecutive-blank-lines"
	Group       string   // Category, e.g. "layout"
	Description string   // Human-readable description
	Severity    Severity // Default severity

	// Whole-tree subscriptions.
	CheckTree             TreeCheckFunc
	CheckTreeWithSettings TreeSettingsCheckFunc

	// Node-kind-filtered subscriptions.
	NodeKinds             []syntax.NodeKind
	CheckNode             NodeCheckFunc
	CheckNodeWithSettings NodeSettingsCheckFunc

	// Symbol-kind-filtered subscriptions.
	SymbolKinds             []syntax.SymbolKind
	CheckSymbol             SymbolCheckFunc
	CheckSymbolWithSettings SymbolSettingsCheckFunc
}

// Subscribed reports whether the rule has at least one check function set.
func (d RuleDef) Subscribed() bool {
	return d.CheckTree != nil || d.CheckTreeWithSettings != nil ||
		d.CheckNode != nil || d.CheckNodeWithSettings != nil ||
		d.CheckSymbol != nil || d.CheckSymbolWithSettings != nil
}
