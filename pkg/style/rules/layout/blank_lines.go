package layout

import (
	"context"

	"github.com/stylewright-labs/stylewright/pkg/style"
)

func init() {
	ConsecutiveBlankLines.CheckTree = checkConsecutiveBlankLines
	style.Register(ConsecutiveBlankLines)
}

// ConsecutiveBlankLines reports two or more consecutive end-of-line trivia
// separated by nothing but whitespace. Runs opening the file and runs
// closing it are claimed by LA02 and LA03 respectively.
var ConsecutiveBlankLines = style.RuleDef{
	ID:          "LA01",
	Name:        "layout.consecutive-blank-lines",
	Group:       "layout",
	Description: "Code must not contain multiple blank lines in a row.",
	Severity:    style.SeverityWarning,
}

func checkConsecutiveBlankLines(ctx context.Context, tc style.TreeContext) []style.Diagnostic {
	var diags []style.Diagnostic
	for _, tok := range tc.Tree.Tokens {
		// Runs before the end-of-file marker belong to LA03.
		if tok.IsEOF() {
			continue
		}

		runs, ok := scanRuns(ctx, tok.LeadingTrivia)
		if !ok {
			return nil
		}
		for _, run := range runs {
			if run.eolCount < 2 || run.start < 0 || run.lastEOL < 0 {
				continue
			}
			// A run opening the file belongs to LA02.
			if startsFile(tok.LeadingTrivia, run) {
				continue
			}
			diags = append(diags, style.Diagnostic{
				RuleID:   ConsecutiveBlankLines.ID,
				Severity: ConsecutiveBlankLines.Severity,
				Message:  "Code must not contain multiple blank lines in a row",
				Span:     runSpan(tok.LeadingTrivia, run),
			})
		}
	}
	return diags
}
