package style

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stylewright-labs/stylewright/pkg/syntax"
)

// Dispatcher intercepts every rule invocation so that settings resolution
// and exclusion filtering happen uniformly before any rule callback runs.
// It is a pure pass-through decorator otherwise: events are delivered in
// host order, one tree at a time, and rule failures are not intercepted.
type Dispatcher struct {
	resolver *Resolver
	logger   *slog.Logger

	// Memoized kind sets per rule ID. A performance detail only: building
	// the set from the slice on every event would be observably identical.
	mu          sync.Mutex
	nodeKinds   map[string]map[syntax.NodeKind]struct{}
	symbolKinds map[string]map[syntax.SymbolKind]struct{}
}

// NewDispatcher creates a dispatcher backed by the given resolver.
func NewDispatcher(resolver *Resolver, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		resolver:    resolver,
		logger:      logger,
		nodeKinds:   make(map[string]map[syntax.NodeKind]struct{}),
		symbolKinds: make(map[string]map[syntax.SymbolKind]struct{}),
	}
}

// DispatchTree runs the given rules over one tree.
//
// Settings are resolved first (a cache hit in steady state), then the
// exclusion filter is consulted: for an excluded file no callback runs and
// no diagnostics are produced. Diagnostics for the tree are all-or-nothing
// with respect to cancellation; an aborted tree yields ctx.Err() and no
// partial results.
func (d *Dispatcher) DispatchTree(ctx context.Context, rules []RuleDef, tree *syntax.Tree, sources []Source) ([]Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings, err := d.resolver.Resolve(ctx, sources)
	if err != nil {
		return nil, err
	}

	if settings.IsExcluded(tree.FilePath) {
		d.logger.Debug("file excluded from analysis", "path", tree.FilePath)
		return nil, nil
	}

	var diags []Diagnostic
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		diags = append(diags, d.runRule(ctx, rule, tree, settings)...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return diags, nil
}

// runRule delivers the tree's events to one rule at every granularity it
// subscribed to, preserving host order within the tree.
func (d *Dispatcher) runRule(ctx context.Context, rule RuleDef, tree *syntax.Tree, settings *Settings) []Diagnostic {
	var out []Diagnostic

	tc := TreeContext{Tree: tree, FilePath: tree.FilePath}
	if rule.CheckTree != nil {
		out = append(out, rule.CheckTree(ctx, tc)...)
	}
	if rule.CheckTreeWithSettings != nil {
		out = append(out, rule.CheckTreeWithSettings(ctx, tc, settings)...)
	}

	if rule.CheckNode != nil || rule.CheckNodeWithSettings != nil {
		kinds := d.nodeKindSet(rule)
		for _, node := range tree.Nodes {
			if _, ok := kinds[node.Kind]; !ok {
				continue
			}
			nc := NodeContext{Tree: tree, Node: node, FilePath: tree.FilePath}
			if rule.CheckNode != nil {
				out = append(out, rule.CheckNode(ctx, nc)...)
			}
			if rule.CheckNodeWithSettings != nil {
				out = append(out, rule.CheckNodeWithSettings(ctx, nc, settings)...)
			}
		}
	}

	if rule.CheckSymbol != nil || rule.CheckSymbolWithSettings != nil {
		kinds := d.symbolKindSet(rule)
		for _, sym := range tree.Symbols {
			if _, ok := kinds[sym.Kind]; !ok {
				continue
			}
			sc := SymbolContext{Tree: tree, Symbol: sym, FilePath: tree.FilePath}
			if rule.CheckSymbol != nil {
				out = append(out, rule.CheckSymbol(ctx, sc)...)
			}
			if rule.CheckSymbolWithSettings != nil {
				out = append(out, rule.CheckSymbolWithSettings(ctx, sc, settings)...)
			}
		}
	}

	// Backfill the file path so rules only describe the finding itself.
	for i := range out {
		if out[i].FilePath == "" {
			out[i].FilePath = tree.FilePath
		}
	}
	return out
}

func (d *Dispatcher) nodeKindSet(rule RuleDef) map[syntax.NodeKind]struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	if set, ok := d.nodeKinds[rule.ID]; ok {
		return set
	}
	set := make(map[syntax.NodeKind]struct{}, len(rule.NodeKinds))
	for _, k := range rule.NodeKinds {
		set[k] = struct{}{}
	}
	d.nodeKinds[rule.ID] = set
	return set
}

func (d *Dispatcher) symbolKindSet(rule RuleDef) map[syntax.SymbolKind]struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	if set, ok := d.symbolKinds[rule.ID]; ok {
		return set
	}
	set := make(map[syntax.SymbolKind]struct{}, len(rule.SymbolKinds))
	for _, k := range rule.SymbolKinds {
		set[k] = struct{}{}
	}
	d.symbolKinds[rule.ID] = set
	return set
}
