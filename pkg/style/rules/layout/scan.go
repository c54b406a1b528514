package layout

import (
	"context"

	"github.com/stylewright-labs/stylewright/pkg/token"
)

// cancelPollInterval is how many trivia are scanned between cancellation
// checks. Trivia lists are usually tiny; the interval only matters for
// pathologically large ones.
const cancelPollInterval = 256

// blankRun is one maximal run of whitespace and end-of-line trivia.
// Indexes point into the scanned trivia slice. start is provisional: it may
// name a whitespace trivia preceding the first end-of-line, or sit one past
// a terminating trivia when nothing followed it.
type blankRun struct {
	start    int // index of the run's first trivia, -1 if never seen
	lastEOL  int // index of the run's last end-of-line trivia, -1 if none
	eolCount int // end-of-line trivia within the run
	final    bool // true for the run still pending when the list ended
}

// scanRuns walks one token's leading trivia left to right and collects its
// blank runs. Whitespace is transparent: it neither starts, extends, nor
// breaks a run beyond marking a provisional start. End-of-line trivia
// extends the current run. Any other trivia terminates the run, with the
// next run provisionally starting just past it. Runs without any
// end-of-line trivia are dropped.
//
// Returns ok=false if ctx was cancelled mid-scan; callers must then discard
// all results for the unit being scanned.
func scanRuns(ctx context.Context, trivia []token.Trivia) (runs []blankRun, ok bool) {
	run := blankRun{start: -1, lastEOL: -1}
	for i, tr := range trivia {
		if i%cancelPollInterval == 0 && ctx.Err() != nil {
			return nil, false
		}
		switch tr.Kind {
		case token.TriviaWhitespace:
			if run.start < 0 {
				run.start = i
			}
		case token.TriviaEndOfLine:
			if run.start < 0 {
				run.start = i
			}
			run.lastEOL = i
			run.eolCount++
		default:
			if run.eolCount > 0 {
				runs = append(runs, run)
			}
			run = blankRun{start: i + 1, lastEOL: -1}
		}
	}
	if run.eolCount > 0 {
		run.final = true
		runs = append(runs, run)
	}
	return runs, true
}

// runSpan is the source range a blank run's diagnostic covers: from the
// run's first trivia to the end of its last end-of-line trivia.
func runSpan(trivia []token.Trivia, run blankRun) token.Span {
	return token.Span{
		Start: trivia[run.start].Span.Start,
		End:   trivia[run.lastEOL].Span.End,
	}
}

// startsFile reports whether the run's first trivia sits at absolute source
// offset zero.
func startsFile(trivia []token.Trivia, run blankRun) bool {
	return trivia[run.start].Span.Start == 0
}
