package domain

// CandidateSource ranks how a toolchain root hypothesis was derived.
// Lower values win when the same root is produced by multiple sources.
type CandidateSource int

const (
	// SourceOverride is an explicit root from the descriptor or TOOLROOT.
	SourceOverride CandidateSource = iota
	// SourceActiveEnv is a root inferred from an active toolchain session marker.
	SourceActiveEnv
	// SourceDefault is a conventional installation location.
	SourceDefault
)

// String returns a human-readable label for the source tier.
func (s CandidateSource) String() string {
	switch s {
	case SourceOverride:
		return "explicit override"
	case SourceActiveEnv:
		return "active environment"
	case SourceDefault:
		return "conventional default"
	default:
		return "unknown"
	}
}

// Candidate is a hypothesized toolchain installation root. It is produced
// by pure path arithmetic and carries no filesystem knowledge; validation
// happens separately.
type Candidate struct {
	Source CandidateSource
	Root   string
	BinDir string
	// Origin describes where the root value came from, for diagnostics
	// (e.g. "TOOLROOT environment variable").
	Origin string
}

// ValidationResult records the outcome of validating one candidate.
// Missing lists every unmet requirement in check order; all checks are
// evaluated even after the first failure so the report is complete.
type ValidationResult struct {
	Valid   bool
	Missing []string
}

// Attempt pairs a candidate with its validation outcome for diagnostics.
type Attempt struct {
	Candidate Candidate
	Result    ValidationResult
}
