package style_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylewright-labs/stylewright/internal/testutil"
	"github.com/stylewright-labs/stylewright/pkg/style"
	"github.com/stylewright-labs/stylewright/pkg/syntax"
	"github.com/stylewright-labs/stylewright/pkg/token"
)

var word = token.Register("Word")

// withRules swaps the global registry contents for one test.
func withRules(t *testing.T, rules ...style.RuleDef) {
	t.Helper()
	style.Clear()
	t.Cleanup(style.Clear)
	for _, r := range rules {
		style.Register(r)
	}
}

func simpleTree(path string) *syntax.Tree {
	return syntax.NewBuilder(path).
		Token(word, "x").
		Newline().
		Token(word, "y").
		Build()
}

func excludingSources(path string) []style.Source {
	return []style.Source{{
		Path: "/proj/stylecop.json",
		Text: `{"settings": {"excludedFiles": ["` + path + `"]}}`,
	}}
}

func TestDispatcherSkipsExcludedFiles(t *testing.T) {
	var calls atomic.Int32
	withRules(t, style.RuleDef{
		ID: "TP01", Group: "test", Severity: style.SeverityWarning,
		CheckTree: func(_ context.Context, tc style.TreeContext) []style.Diagnostic {
			calls.Add(1)
			return []style.Diagnostic{{RuleID: "TP01", Message: "hit", Span: token.Span{Start: 0, End: 1}}}
		},
	})

	sess := style.NewSession(style.Options{
		Sources: excludingSources("Skipped.cs"),
		Logger:  testutil.NewTestLogger(t),
	})

	diags, err := sess.AnalyzeTree(context.Background(), simpleTree("/proj/Skipped.cs"))
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, int32(0), calls.Load(), "rule callback must not run for excluded files")

	diags, err = sess.AnalyzeTree(context.Background(), simpleTree("/proj/Included.cs"))
	require.NoError(t, err)
	assert.Len(t, diags, 1)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDispatcherPassesSettingsToSettingsShapedCallbacks(t *testing.T) {
	var got *style.Settings
	withRules(t, style.RuleDef{
		ID: "TP02", Group: "test",
		CheckTreeWithSettings: func(_ context.Context, _ style.TreeContext, settings *style.Settings) []style.Diagnostic {
			got = settings
			return nil
		},
	})

	sess := style.NewSession(style.Options{Sources: excludingSources("Other.cs")})
	_, err := sess.AnalyzeTree(context.Background(), simpleTree("/proj/Included.cs"))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, []string{"Other.cs"}, got.ExcludedFiles)
}

func TestDispatcherNodeKindFilteringPreservesOrder(t *testing.T) {
	var seen []token.Span
	withRules(t, style.RuleDef{
		ID: "TP03", Group: "test",
		NodeKinds: []syntax.NodeKind{"MethodDeclaration", "MethodDeclaration"},
		CheckNode: func(_ context.Context, nc style.NodeContext) []style.Diagnostic {
			seen = append(seen, nc.Node.Span)
			return nil
		},
	})

	tree := syntax.NewBuilder("/proj/a.cs").
		Token(word, "x").
		Node("ClassDeclaration", token.Span{Start: 0, End: 9}).
		Node("MethodDeclaration", token.Span{Start: 1, End: 4}).
		Node("PropertyDeclaration", token.Span{Start: 4, End: 6}).
		Node("MethodDeclaration", token.Span{Start: 6, End: 9}).
		Build()

	sess := style.NewSession(style.Options{})
	_, err := sess.AnalyzeTree(context.Background(), tree)
	require.NoError(t, err)

	// Only matching kinds, in host delivery order.
	assert.Equal(t, []token.Span{{Start: 1, End: 4}, {Start: 6, End: 9}}, seen)
}

func TestDispatcherSymbolKindFiltering(t *testing.T) {
	var names []string
	withRules(t, style.RuleDef{
		ID: "TP04", Group: "test",
		SymbolKinds: []syntax.SymbolKind{"NamedType"},
		CheckSymbolWithSettings: func(_ context.Context, sc style.SymbolContext, _ *style.Settings) []style.Diagnostic {
			names = append(names, sc.Symbol.Name)
			return nil
		},
	})

	tree := syntax.NewBuilder("/proj/a.cs").
		Token(word, "x").
		Symbol("NamedType", "Widget", token.Span{Start: 0, End: 1}).
		Symbol("Method", "Run", token.Span{Start: 0, End: 1}).
		Symbol("NamedType", "Gadget", token.Span{Start: 0, End: 1}).
		Build()

	sess := style.NewSession(style.Options{})
	_, err := sess.AnalyzeTree(context.Background(), tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget", "Gadget"}, names)
}

func TestSessionDisabledRules(t *testing.T) {
	withRules(t, style.RuleDef{
		ID: "TP05", Group: "test", Severity: style.SeverityWarning,
		CheckTree: func(_ context.Context, _ style.TreeContext) []style.Diagnostic {
			return []style.Diagnostic{{RuleID: "TP05", Message: "hit"}}
		},
	})

	cfg := style.NewRunConfig().Disable("TP05")
	sess := style.NewSession(style.Options{Config: cfg})

	diags, err := sess.AnalyzeTree(context.Background(), simpleTree("/proj/a.cs"))
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestSessionSeverityOverride(t *testing.T) {
	withRules(t, style.RuleDef{
		ID: "TP06", Group: "test", Severity: style.SeverityWarning,
		CheckTree: func(_ context.Context, _ style.TreeContext) []style.Diagnostic {
			return []style.Diagnostic{{RuleID: "TP06", Severity: style.SeverityWarning, Message: "hit"}}
		},
	})

	cfg := style.NewRunConfig().SetSeverity("TP06", style.SeverityError)
	sess := style.NewSession(style.Options{Config: cfg})

	diags, err := sess.AnalyzeTree(context.Background(), simpleTree("/proj/a.cs"))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, style.SeverityError, diags[0].Severity)
}

func TestSessionAnalyzeManyTrees(t *testing.T) {
	withRules(t, style.RuleDef{
		ID: "TP07", Group: "test", Severity: style.SeverityWarning,
		CheckTree: func(_ context.Context, tc style.TreeContext) []style.Diagnostic {
			return []style.Diagnostic{{RuleID: "TP07", Message: "hit"}}
		},
	})

	trees := []*syntax.Tree{
		simpleTree("/proj/c.cs"),
		simpleTree("/proj/a.cs"),
		simpleTree("/proj/b.cs"),
	}

	sess := style.NewSession(style.Options{Workers: 2, Logger: testutil.NewTestLogger(t)})
	results, err := sess.Analyze(context.Background(), trees)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Sorted by file path, each with its own diagnostics.
	assert.Equal(t, "/proj/a.cs", results[0].FilePath)
	assert.Equal(t, "/proj/b.cs", results[1].FilePath)
	assert.Equal(t, "/proj/c.cs", results[2].FilePath)
	for _, res := range results {
		assert.Len(t, res.Diagnostics, 1)
		assert.Equal(t, res.FilePath, res.Diagnostics[0].FilePath)
	}
}

func TestSessionStrictSettingsError(t *testing.T) {
	withRules(t, style.RuleDef{
		ID: "TP08", Group: "test",
		CheckTree: func(_ context.Context, _ style.TreeContext) []style.Diagnostic { return nil },
	})

	sess := style.NewSession(style.Options{
		Strict:  true,
		Sources: []style.Source{{Path: "/proj/stylecop.json", Text: "broken"}},
	})

	_, err := sess.Analyze(context.Background(), []*syntax.Tree{simpleTree("/proj/a.cs")})
	var cfgErr *style.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSessionID(t *testing.T) {
	withRules(t)
	a := style.NewSession(style.Options{})
	b := style.NewSession(style.Options{})
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
