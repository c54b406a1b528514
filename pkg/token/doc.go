// Package token defines the token and trivia types consumed by the style
// engine.
//
// Tokens are produced by an external host parser; the engine never lexes
// source text itself. A small set of built-in token kinds is defined as
// constants, and host-specific kinds are registered dynamically via
// Register().
package token
