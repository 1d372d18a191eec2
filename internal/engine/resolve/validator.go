package resolve

import (
	"fmt"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports"
)

// Validator checks candidates against the real filesystem through the probe.
type Validator struct {
	probe  ports.EnvironmentProbe
	logger ports.Logger
}

// NewValidator creates a new Validator.
func NewValidator(probe ports.EnvironmentProbe, logger ports.Logger) *Validator {
	return &Validator{probe: probe, logger: logger}
}

// CompilerPath returns where the primary C compiler must live for a candidate.
func CompilerPath(c domain.Candidate, rule Rule) string {
	return c.BinDir + "/" + rule.CompilerName + rule.ExeSuffix
}

// Validate runs all four requirement checks against one candidate. Every
// check is evaluated even after a failure so the result lists the complete
// set of unmet requirements, not just the first.
func (v *Validator) Validate(c domain.Candidate, rule Rule) domain.ValidationResult {
	var missing []string

	if !v.probe.DirExists(c.Root) {
		missing = append(missing, fmt.Sprintf("toolchain root not found at %s", c.Root))
	}

	marker := c.Root + "/" + rule.MarkerRel
	if !v.probe.PathExists(marker) {
		missing = append(missing, fmt.Sprintf("required marker not found at %s", marker))
	}

	if !v.probe.DirExists(c.BinDir) {
		missing = append(missing, fmt.Sprintf("compiler toolchain directory not found at %s", c.BinDir))
	}

	compiler := CompilerPath(c, rule)
	if !v.probe.PathExists(compiler) {
		missing = append(missing, fmt.Sprintf("compiler binary not found at %s", compiler))
	}

	return domain.ValidationResult{
		Valid:   len(missing) == 0,
		Missing: missing,
	}
}
