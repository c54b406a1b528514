// Package style is the core of the style-checking engine: rule definitions
// and their registry, per-project settings resolution and caching, file
// exclusion filtering, and the dispatcher that applies both uniformly before
// any rule callback runs.
//
// The package defines the types used across the system. Rule implementations
// live in subpackages of pkg/style/rules and register themselves via init().
// A host drives analysis through a Session, which owns all mutable caches
// for the duration of one analysis run.
package style
