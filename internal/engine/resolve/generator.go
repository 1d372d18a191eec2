package resolve

import (
	"path"
	"regexp"
	"strings"

	"github.com/anvil-build/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// posixDriveRe matches a POSIX-style drive letter segment such as "/c/...".
// MSYS2 shells export paths in this form.
var posixDriveRe = regexp.MustCompile(`^/([a-zA-Z])(/|$)`)

// Generate produces the ordered, deduplicated candidate list for a target.
// It performs pure path arithmetic only: no filesystem access, so candidate
// ordering is testable without a real toolchain installed.
//
// Tiers, strictly ordered: explicit override, active-environment inference,
// conventional defaults (config-extended, then built-in).
func Generate(desc domain.TargetDescriptor, snap domain.Snapshot, cfg domain.Config) ([]domain.Candidate, error) {
	rule, ok := RuleFor(desc.OS, desc.Compiler)
	if !ok {
		return nil, zerr.With(domain.ErrUnsupportedCombination, "combination", desc.String())
	}

	override := cfg.Override(desc.OS, desc.Compiler)

	var candidates []domain.Candidate
	add := func(source domain.CandidateSource, root, origin string) {
		root = CleanRoot(root)
		if root == "" {
			return
		}
		candidates = append(candidates, domain.Candidate{
			Source: source,
			Root:   root,
			BinDir: root + "/" + rule.BinDirRel,
			Origin: origin,
		})
	}

	// Tier 1: explicit override.
	if desc.RootOverride != "" {
		add(domain.SourceOverride, desc.RootOverride, "target descriptor root override")
	} else if v, ok := snap.Lookup(domain.VarToolRoot); ok {
		add(domain.SourceOverride, v, domain.VarToolRoot+" environment variable")
	}

	// Tier 2: active-environment inference.
	if rule.PrefixVar != "" {
		if prefix, ok := snap.Lookup(rule.PrefixVar); ok {
			suffixes := rule.PrefixSuffixes
			if len(override.PrefixSuffixes) > 0 {
				suffixes = override.PrefixSuffixes
			}
			if root, ok := stripPrefixSuffix(prefix, suffixes); ok {
				add(domain.SourceActiveEnv, NormalizePosixDrive(root), rule.PrefixVar+" environment variable")
			}
		}
	}

	// Tier 3: conventional defaults, config roots first.
	for _, root := range override.Roots {
		add(domain.SourceDefault, root, "configured default location")
	}
	for _, root := range rule.Defaults {
		add(domain.SourceDefault, root, "conventional default location")
	}

	return dedupe(candidates), nil
}

// stripPrefixSuffix removes the first matching suffix from an active
// environment prefix. A prefix matching no suffix carries no root signal.
func stripPrefixSuffix(prefix string, suffixes []string) (string, bool) {
	cleaned := CleanRoot(prefix)
	for _, suffix := range suffixes {
		if rest, ok := strings.CutSuffix(cleaned, suffix); ok && rest != "" {
			return rest, true
		}
	}
	return "", false
}

// NormalizePosixDrive converts a POSIX-style drive path like "/d/toolroot"
// into the native form "D:/toolroot". Paths without a drive segment are
// returned unchanged.
func NormalizePosixDrive(p string) string {
	m := posixDriveRe.FindStringSubmatch(p)
	if m == nil {
		return p
	}
	rest := strings.TrimPrefix(p[len(m[1])+1:], "/")
	drive := strings.ToUpper(m[1]) + ":/"
	return drive + rest
}

// CleanRoot normalizes a root path for comparison and joining: backslashes
// become forward slashes and trailing separators are dropped.
func CleanRoot(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return path.Clean(p)
}

// dedupe drops candidates whose cleaned root already appeared. Candidates
// arrive in priority order, so the highest-priority occurrence survives.
func dedupe(candidates []domain.Candidate) []domain.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if _, dup := seen[c.Root]; dup {
			continue
		}
		seen[c.Root] = struct{}{}
		out = append(out, c)
	}
	return out
}
