package layout

import (
	"context"

	"github.com/stylewright-labs/stylewright/pkg/style"
)

func init() {
	BlankLinesAtStartOfFile.CheckTree = checkBlankLinesAtStartOfFile
	style.Register(BlankLinesAtStartOfFile)
}

// BlankLinesAtStartOfFile reports a file opening with one or more blank
// lines: a blank run on the first token whose first trivia sits at absolute
// offset zero.
var BlankLinesAtStartOfFile = style.RuleDef{
	ID:          "LA02",
	Name:        "layout.blank-lines-at-start-of-file",
	Group:       "layout",
	Description: "Code must not contain blank lines at the start of the file.",
	Severity:    style.SeverityWarning,
}

func checkBlankLinesAtStartOfFile(ctx context.Context, tc style.TreeContext) []style.Diagnostic {
	if len(tc.Tree.Tokens) == 0 {
		return nil
	}
	first := tc.Tree.Tokens[0]

	runs, ok := scanRuns(ctx, first.LeadingTrivia)
	if !ok {
		return nil
	}
	if len(runs) == 0 {
		return nil
	}

	// Only the run opening the file is this rule's; anything after the
	// first significant trivia belongs to LA01 or LA03.
	run := runs[0]
	if run.start != 0 || !startsFile(first.LeadingTrivia, run) {
		return nil
	}

	return []style.Diagnostic{{
		RuleID:   BlankLinesAtStartOfFile.ID,
		Severity: BlankLinesAtStartOfFile.Severity,
		Message:  "Code must not contain blank lines at the start of the file",
		Span:     runSpan(first.LeadingTrivia, run),
	}}
}
