// Package knowledge holds the read-only symptom/disease reference data
// consumed by the triage engine. Diseases and symptoms live in flat indexed
// slices; disease→symptom associations are stored as index sets into the
// symptom slice, so the many-to-many graph carries no object cycles.
package knowledge

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Symptom is a catalog-registered medical sign. Weight is advisory severity
// data from the reference tables; scoring does not depend on it.
type Symptom struct {
	Name   string
	Weight int
}

// Disease is a named condition with its associated symptom indexes.
type Disease struct {
	Name        string
	Description string
	Precautions []string
	SymptomIdx  []int // indexes into Snapshot.Symptoms, ascending
}

// DiseaseRecord is the loader-facing shape of a disease: associations by
// symptom name rather than index.
type DiseaseRecord struct {
	Name        string
	Description string
	Precautions []string
	Symptoms    []string
}

// Source supplies the raw reference data, typically from the database.
type Source interface {
	Load(ctx context.Context) ([]Symptom, []DiseaseRecord, error)
}

// Snapshot is one immutable view of the knowledge base. Enumeration order is
// deterministic: symptoms and diseases are sorted lexicographically by name.
type Snapshot struct {
	Symptoms []Symptom
	Diseases []Disease

	symptomIdx map[string]int // lowercase name -> index
}

// Empty reports whether the snapshot carries no symptoms.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Symptoms) == 0
}

// SymptomIndex returns the index of the named symptom, case-insensitively.
func (s *Snapshot) SymptomIndex(name string) (int, bool) {
	idx, ok := s.symptomIdx[strings.ToLower(name)]
	return idx, ok
}

// SymptomNames lists all symptom names in catalog order.
func (s *Snapshot) SymptomNames() []string {
	names := make([]string, len(s.Symptoms))
	for i, sym := range s.Symptoms {
		names[i] = sym.Name
	}
	return names
}

// DiseaseSymptoms lists the names of the symptoms associated with d.
func (s *Snapshot) DiseaseSymptoms(d Disease) []string {
	names := make([]string, len(d.SymptomIdx))
	for i, idx := range d.SymptomIdx {
		names[i] = s.Symptoms[idx].Name
	}
	return names
}

func buildSnapshot(symptoms []Symptom, diseases []DiseaseRecord) *Snapshot {
	snap := &Snapshot{symptomIdx: make(map[string]int)}

	add := func(sym Symptom) int {
		key := strings.ToLower(sym.Name)
		if idx, ok := snap.symptomIdx[key]; ok {
			return idx
		}
		snap.Symptoms = append(snap.Symptoms, sym)
		snap.symptomIdx[key] = len(snap.Symptoms) - 1
		return len(snap.Symptoms) - 1
	}

	for _, sym := range symptoms {
		add(sym)
	}
	// Associations may reference symptoms missing from the severity table;
	// register those with zero weight so the graph stays consistent.
	for _, d := range diseases {
		for _, name := range d.Symptoms {
			add(Symptom{Name: name})
		}
	}

	// Re-key everything against the lexicographic symptom order.
	sort.Slice(snap.Symptoms, func(i, j int) bool {
		return strings.ToLower(snap.Symptoms[i].Name) < strings.ToLower(snap.Symptoms[j].Name)
	})
	for i, sym := range snap.Symptoms {
		snap.symptomIdx[strings.ToLower(sym.Name)] = i
	}

	sorted := make([]DiseaseRecord, len(diseases))
	copy(sorted, diseases)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	for _, rec := range sorted {
		d := Disease{
			Name:        rec.Name,
			Description: rec.Description,
			Precautions: rec.Precautions,
		}
		seen := make(map[int]struct{})
		for _, name := range rec.Symptoms {
			idx, ok := snap.symptomIdx[strings.ToLower(name)]
			if !ok {
				continue
			}
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			d.SymptomIdx = append(d.SymptomIdx, idx)
		}
		sort.Ints(d.SymptomIdx)
		snap.Diseases = append(snap.Diseases, d)
	}
	return snap
}

// Catalog is the process cache over a Source. Readers always see a complete
// snapshot; Refresh builds a new one and swaps it atomically.
type Catalog struct {
	source    Source
	snap      atomic.Pointer[Snapshot]
	refreshMu sync.Mutex
}

func NewCatalog(source Source) *Catalog {
	c := &Catalog{source: source}
	c.snap.Store(&Snapshot{symptomIdx: map[string]int{}})
	return c
}

// NewStaticCatalog wraps fixed reference data, mainly for tests.
func NewStaticCatalog(symptoms []Symptom, diseases []DiseaseRecord) *Catalog {
	c := &Catalog{}
	c.snap.Store(buildSnapshot(symptoms, diseases))
	return c
}

// Snapshot returns the current immutable view. Never nil.
func (c *Catalog) Snapshot() *Snapshot {
	return c.snap.Load()
}

// Refresh rebuilds the snapshot from the source and swaps it in. Concurrent
// refreshes are serialized; concurrent readers keep the old snapshot until
// the new one is fully built.
func (c *Catalog) Refresh(ctx context.Context) error {
	if c.source == nil {
		return nil
	}
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	symptoms, diseases, err := c.source.Load(ctx)
	if err != nil {
		return err
	}
	c.snap.Store(buildSnapshot(symptoms, diseases))
	return nil
}
