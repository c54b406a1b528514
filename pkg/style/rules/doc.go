// Package rules aggregates all rule subpackages.
//
// Blank-import this package to register every built-in rule with the global
// registry.
package rules
