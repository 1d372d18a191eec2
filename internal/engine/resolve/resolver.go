// Package resolve implements priority-ordered toolchain discovery and validation.
package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/anvil-build/anvil/internal/engine/compose"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies resolver spans in trace output.
const instrumentationName = "anvil/resolve"

// Resolver is the primary entry point: it turns a target descriptor and an
// environment snapshot into a toolchain profile or a resolution failure.
//
// A Resolver holds no mutable state; concurrent Resolve calls are safe.
type Resolver struct {
	probe     ports.EnvironmentProbe
	logger    ports.Logger
	composer  *compose.Composer
	validator *Validator
	cfg       domain.Config
	tracer    trace.Tracer
}

// New creates a new Resolver applying the given configuration.
func New(probe ports.EnvironmentProbe, logger ports.Logger, composer *compose.Composer, cfg domain.Config) *Resolver {
	return &Resolver{
		probe:     probe,
		logger:    logger,
		composer:  composer,
		validator: NewValidator(probe, logger),
		cfg:       cfg,
		tracer:    otel.Tracer(instrumentationName),
	}
}

// SnapshotFromProbe captures the resolution-relevant environment variables
// into a snapshot at call time.
func SnapshotFromProbe(probe ports.EnvironmentProbe) domain.Snapshot {
	vars := make(map[string]string, len(domain.SnapshotVars))
	for _, name := range domain.SnapshotVars {
		if v, ok := probe.ReadVar(name); ok {
			vars[name] = v
		}
	}
	return domain.NewSnapshot(vars)
}

// Resolve produces exactly one of a profile or a failure for the target.
// A returned error is either a *domain.ResolutionFailure or an input
// validation error; no partial profile ever escapes.
func (r *Resolver) Resolve(ctx context.Context, desc domain.TargetDescriptor, snap domain.Snapshot) (*domain.Profile, error) {
	ctx, span := r.tracer.Start(ctx, "resolve", trace.WithAttributes(
		attribute.String("target", desc.String()),
	))
	defer span.End()

	candidates, err := Generate(desc, snap, r.cfg)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedCombination) {
			return nil, &domain.ResolutionFailure{
				Kind:        domain.ErrUnsupportedCombination,
				Target:      desc,
				Remediation: UnsupportedRemediation(desc),
			}
		}
		return nil, err
	}

	valid, attempts := r.validate(ctx, desc, candidates)
	if valid == nil {
		r.logger.Debug(fmt.Sprintf("exhausted %d candidates for %s", len(attempts), desc))
		return nil, &domain.ResolutionFailure{
			Kind:        domain.ErrUnresolvable,
			Target:      desc,
			Attempts:    attempts,
			Remediation: Remediation(desc),
		}
	}

	profile, err := r.composer.Compose(ctx, desc, snap, r.cfg, valid.Root, valid.BinDir)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedCombination) {
			// A toolchain validated, but the tuple has no packaging
			// triplet. Reported distinctly: the remediation is to
			// request a supported combination, not install tools.
			return nil, &domain.ResolutionFailure{
				Kind:        domain.ErrUnsupportedCombination,
				Target:      desc,
				Attempts:    attempts,
				Remediation: UnsupportedRemediation(desc),
			}
		}
		return nil, err
	}

	r.logger.Debug(fmt.Sprintf("resolved %s at %s (%s)", desc, valid.Root, valid.Origin))
	return profile, nil
}

// validate consumes candidates in priority order, returning the first valid
// one. All attempted candidates are recorded, valid or not, so exhaustion
// diagnostics are complete.
func (r *Resolver) validate(ctx context.Context, desc domain.TargetDescriptor, candidates []domain.Candidate) (*domain.Candidate, []domain.Attempt) {
	_, span := r.tracer.Start(ctx, "resolve.validate")
	defer span.End()

	rule, _ := RuleFor(desc.OS, desc.Compiler)

	attempts := make([]domain.Attempt, 0, len(candidates))
	for _, c := range candidates {
		result := r.validator.Validate(c, rule)
		attempts = append(attempts, domain.Attempt{Candidate: c, Result: result})
		if result.Valid {
			// First usable toolchain wins; not required to be the best.
			span.SetAttributes(attribute.String("root", c.Root))
			return &c, attempts
		}
	}

	return nil, attempts
}
