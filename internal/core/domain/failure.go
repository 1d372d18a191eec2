package domain

import "fmt"

// ResolutionFailure is the terminal outcome of a resolution that produced
// no profile. It carries every attempted candidate with its validation
// result, plus ordered remediation steps. Exactly one of Profile or
// ResolutionFailure is produced per resolution call.
type ResolutionFailure struct {
	// Kind is ErrUnresolvable or ErrUnsupportedCombination.
	Kind        error
	Target      TargetDescriptor
	Attempts    []Attempt
	Remediation []string
}

// Error implements the error interface.
func (f *ResolutionFailure) Error() string {
	return fmt.Sprintf("%s for %s (%d candidates attempted)", f.Kind.Error(), f.Target, len(f.Attempts))
}

// Unwrap exposes the failure kind so callers can use errors.Is against
// ErrUnresolvable and ErrUnsupportedCombination.
func (f *ResolutionFailure) Unwrap() error {
	return f.Kind
}
