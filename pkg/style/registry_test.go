package style_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylewright-labs/stylewright/pkg/style"
)

func noopTreeCheck(_ context.Context, _ style.TreeContext) []style.Diagnostic { return nil }

func TestRegistry(t *testing.T) {
	withRules(t,
		style.RuleDef{ID: "ZZ99", Group: "other", CheckTree: noopTreeCheck},
		style.RuleDef{ID: "AA01", Group: "test", CheckTree: noopTreeCheck},
		style.RuleDef{ID: "AA02", Group: "test", CheckTree: noopTreeCheck},
	)

	assert.Equal(t, 3, style.Count())

	all := style.All()
	require.Len(t, all, 3)
	assert.Equal(t, "AA01", all[0].ID)
	assert.Equal(t, "AA02", all[1].ID)
	assert.Equal(t, "ZZ99", all[2].ID)

	rule, ok := style.ByID("AA02")
	assert.True(t, ok)
	assert.Equal(t, "test", rule.Group)

	_, ok = style.ByID("missing")
	assert.False(t, ok)

	group := style.ByGroup("test")
	require.Len(t, group, 2)
	assert.Equal(t, "AA01", group[0].ID)
}

func TestRuleDefSubscribed(t *testing.T) {
	assert.False(t, style.RuleDef{ID: "XX00"}.Subscribed())
	assert.True(t, style.RuleDef{ID: "XX01", CheckTree: noopTreeCheck}.Subscribed())
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, "warning", style.SeverityWarning.String())
	assert.Equal(t, "error", style.SeverityError.String())

	sev, err := style.ParseSeverity("hint")
	require.NoError(t, err)
	assert.Equal(t, style.SeverityHint, sev)

	_, err = style.ParseSeverity("loud")
	assert.Error(t, err)

	assert.True(t, style.SeverityError.AtLeast(style.SeverityWarning))
	assert.True(t, style.SeverityWarning.AtLeast(style.SeverityWarning))
	assert.False(t, style.SeverityHint.AtLeast(style.SeverityWarning))
}
