// Package mapping decides which source and target parts each block is
// associated with. Caller-supplied mappings always win; inference only
// fills gaps and refuses to guess between ambiguous candidates.
package mapping

import (
	"strings"
	"unicode"

	"aeroxfer/internal/domain"
)

// Resolver resolves block labels against the available part-name sets.
// Resolution is pure given the specs: re-running after the caller updates
// the available names is idempotent and never clobbers explicit choices.
type Resolver struct {
	specs map[string]domain.MappingSpec
}

// NewResolver creates a Resolver over the caller-supplied mapping entries.
// A nil map means no explicit mappings.
func NewResolver(specs map[string]domain.MappingSpec) *Resolver {
	return &Resolver{specs: specs}
}

// Resolve produces the source/target mapping for one block label.
//
// Target, in order: the explicit mapping entry (non-empty target), a target
// with the exact same name as the label, then staged inference. Source is
// resolved symmetrically against the source names but always defaults to
// the label itself when no explicit source is supplied and inference finds
// nothing.
func (r *Resolver) Resolve(label string, sources, targets []string) domain.Mapping {
	m := domain.Mapping{}
	spec, hasSpec := r.specs[label]

	// Target part
	switch {
	case hasSpec && spec.TargetPart != "":
		m.TargetPart = spec.TargetPart
		m.Explicit = true
	case containsName(targets, label):
		m.TargetPart = label
	default:
		m.TargetPart = infer(label, targets)
	}

	// Source part
	switch {
	case hasSpec && spec.SourcePart != "":
		m.SourcePart = spec.SourcePart
	case containsName(sources, label):
		m.SourcePart = label
	default:
		if inferred := infer(label, sources); inferred != "" {
			m.SourcePart = inferred
		} else {
			m.SourcePart = label
		}
	}

	return m
}

// ResolveAll resolves every label in order against the project's part names.
func (r *Resolver) ResolveAll(labels []string, project *domain.Project) map[string]domain.Mapping {
	sources := project.SourceNames()
	targets := project.TargetNames()
	out := make(map[string]domain.Mapping, len(labels))
	for _, label := range labels {
		out[label] = r.Resolve(label, sources, targets)
	}
	return out
}

// infer matches the label against candidate names in three stages: exact,
// case-insensitive, then comparison after stripping everything that is
// neither alphanumeric nor CJK. A stage with exactly one match wins; a
// stage with more than one match is ambiguous and ends inference with no
// result.
func infer(label string, candidates []string) string {
	stages := []func(string) string{
		func(s string) string { return s },
		strings.ToLower,
		strippedKey,
	}
	for _, norm := range stages {
		want := norm(label)
		found := ""
		count := 0
		for _, cand := range candidates {
			if norm(cand) == want {
				found = cand
				count++
			}
		}
		if count == 1 {
			return found
		}
		if count > 1 {
			return ""
		}
	}
	return ""
}

// strippedKey lower-cases and keeps only alphanumeric and CJK runes.
func strippedKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || unicode.Is(unicode.Han, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
