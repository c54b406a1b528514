package style

// RunConfig controls which rules are enabled for a session and their
// severity. It is caller-owned configuration, distinct from Settings, which
// come from the analyzed project itself.
type RunConfig struct {
	// DisabledRules contains rule IDs to skip.
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]Severity
}

// NewRunConfig creates a default configuration with all rules enabled.
func NewRunConfig() *RunConfig {
	return &RunConfig{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *RunConfig) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *RunConfig) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Disable disables a rule by ID.
func (c *RunConfig) Disable(ruleID string) *RunConfig {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *RunConfig) SetSeverity(ruleID string, severity Severity) *RunConfig {
	c.SeverityOverrides[ruleID] = severity
	return c
}
