// Package layout implements layout rules: checks driven by the blank-line
// structure of a token's leading trivia.
//
// All rules here share one scanning pattern, a stateful single left-to-right
// pass over the trivia sequence that tracks maximal runs of whitespace and
// end-of-line trivia. They differ only in which runs they claim: LA01 takes
// interior runs, LA02 the run opening the file, LA03 the run closing it.
package layout
