// Package triage implements the symptom-triage engine: local symptom
// detection, disease scoring, the emergency short-circuit, the rule-based
// fallback state machine, and the conversation service that ties them to
// the AI path.
package triage

import (
	"context"
	"strings"

	"sevai/sevai/knowledge"
)

// Detector extracts known symptom names from free text by case-insensitive
// substring match against the knowledge catalog.
type Detector struct {
	catalog *knowledge.Catalog
}

func NewDetector(catalog *knowledge.Catalog) *Detector {
	return &Detector{catalog: catalog}
}

// Detect returns the canonical names of catalog symptoms mentioned in the
// message, deduplicated. An empty catalog triggers a read-through refresh;
// if it stays empty the result is empty, never an error.
func (d *Detector) Detect(ctx context.Context, message string) []string {
	snap := d.catalog.Snapshot()
	if snap.Empty() {
		if err := d.catalog.Refresh(ctx); err != nil {
			return nil
		}
		snap = d.catalog.Snapshot()
	}
	return detectIn(snap, message)
}

// detectIn is the pure core of Detect: (message, snapshot) -> names.
func detectIn(snap *knowledge.Snapshot, message string) []string {
	if snap.Empty() {
		return nil
	}
	lower := strings.ToLower(message)
	var found []string
	for _, sym := range snap.Symptoms {
		if strings.Contains(lower, strings.ToLower(sym.Name)) {
			found = append(found, sym.Name)
		}
	}
	return found
}

// mergeSymptoms appends the newly detected names that are not yet present,
// preserving insertion order. Comparison is case-insensitive.
func mergeSymptoms(existing, detected []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		seen[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range detected {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		existing = append(existing, name)
	}
	return existing
}
