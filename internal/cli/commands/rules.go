package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stylewright-labs/stylewright/internal/cli/output"
	"github.com/stylewright-labs/stylewright/pkg/style"
	_ "github.com/stylewright-labs/stylewright/pkg/style/rules" // register rules
	"github.com/stylewright-labs/stylewright/pkg/syntax"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List registered style rules",
		Long: `List every registered style rule with its ID, group, severity and
description. With a rule ID argument, show the full detail for that rule.`,
		Example: `  # List all rules
  stylewright rules

  # Only layout rules
  stylewright rules --group layout

  # Show one rule
  stylewright rules LA01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if len(args) == 1 {
				return showRule(cmdCtx.Renderer, args[0])
			}
			return listRules(cmdCtx.Renderer, group)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Only show rules in this group")

	return cmd
}

func listRules(r *output.Renderer, group string) error {
	rules := style.All()
	if group != "" {
		rules = style.ByGroup(group)
		if len(rules) == 0 {
			return fmt.Errorf("no rules in group %q", group)
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rulesToJSON(rules))
	}

	styled := r.EffectiveMode() == output.ModeText
	tw := r.NewTable()
	tw.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Description"})
	for _, rule := range rules {
		id := rule.ID
		sev := rule.Severity.String()
		if styled {
			id = output.StyleRuleID.Render(id)
			sev = output.SeverityStyle(sev).Render(sev)
		}
		tw.AppendRow(table.Row{id, rule.Name, rule.Group, sev, rule.Description})
	}
	r.RenderTable(tw)
	r.Printf("\n%d rule(s) registered.\n", len(rules))
	return nil
}

func showRule(r *output.Renderer, id string) error {
	rule, ok := style.ByID(id)
	if !ok {
		return fmt.Errorf("unknown rule %q", id)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rulesToJSON([]style.RuleDef{rule})[0])
	}

	styled := r.EffectiveMode() == output.ModeText
	heading := fmt.Sprintf("%s (%s)", rule.ID, rule.Name)
	if styled {
		heading = output.StyleHeading.Render(heading)
	}
	r.Println(heading)
	r.Printf("Group:    %s\n", rule.Group)
	r.Printf("Severity: %s\n", rule.Severity)
	if len(rule.NodeKinds) > 0 {
		r.Printf("Nodes:    %s\n", strings.Join(kindsToStrings(rule.NodeKinds), ", "))
	}
	if len(rule.SymbolKinds) > 0 {
		r.Printf("Symbols:  %s\n", strings.Join(symbolKindsToStrings(rule.SymbolKinds), ", "))
	}
	r.Printf("\n%s\n", rule.Description)
	return nil
}

type ruleJSON struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	NodeKinds   []string `json:"nodeKinds,omitempty"`
	SymbolKinds []string `json:"symbolKinds,omitempty"`
}

func rulesToJSON(rules []style.RuleDef) []ruleJSON {
	out := make([]ruleJSON, 0, len(rules))
	for _, rule := range rules {
		out = append(out, ruleJSON{
			ID:          rule.ID,
			Name:        rule.Name,
			Group:       rule.Group,
			Severity:    rule.Severity.String(),
			Description: rule.Description,
			NodeKinds:   kindsToStrings(rule.NodeKinds),
			SymbolKinds: symbolKindsToStrings(rule.SymbolKinds),
		})
	}
	return out
}

func kindsToStrings(kinds []syntax.NodeKind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}

func symbolKindsToStrings(kinds []syntax.SymbolKind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}
