package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	_ "github.com/stylewright-labs/stylewright/pkg/style/rules/layout"
)
