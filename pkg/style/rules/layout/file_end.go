package layout

import (
	"context"

	"github.com/stylewright-labs/stylewright/pkg/style"
)

func init() {
	BlankLinesAtEndOfFile.CheckTree = checkBlankLinesAtEndOfFile
	style.Register(BlankLinesAtEndOfFile)
}

// BlankLinesAtEndOfFile reports a file closing with blank lines: a blank run
// in the end-of-file token's leading trivia that reaches the end of the file
// with more than the single terminating newline.
var BlankLinesAtEndOfFile = style.RuleDef{
	ID:          "LA03",
	Name:        "layout.blank-lines-at-end-of-file",
	Group:       "layout",
	Description: "Code must not contain blank lines at the end of the file.",
	Severity:    style.SeverityWarning,
}

func checkBlankLinesAtEndOfFile(ctx context.Context, tc style.TreeContext) []style.Diagnostic {
	eof, ok := tc.Tree.EOFToken()
	if !ok {
		return nil
	}

	runs, ok := scanRuns(ctx, eof.LeadingTrivia)
	if !ok {
		return nil
	}
	if len(runs) == 0 {
		return nil
	}

	// Only the run still pending at the end of the trivia list actually
	// touches the end of the file.
	run := runs[len(runs)-1]
	if !run.final || run.eolCount < 2 {
		return nil
	}
	// A run opening the file belongs to LA02.
	if startsFile(eof.LeadingTrivia, run) {
		return nil
	}

	return []style.Diagnostic{{
		RuleID:   BlankLinesAtEndOfFile.ID,
		Severity: BlankLinesAtEndOfFile.Severity,
		Message:  "Code must not contain blank lines at the end of the file",
		Span:     runSpan(eof.LeadingTrivia, run),
	}}
}
