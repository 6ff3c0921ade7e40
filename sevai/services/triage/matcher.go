package triage

import (
	"strings"

	"sevai/sevai/knowledge"
)

// Match is the best-scoring disease for a symptom set.
type Match struct {
	Disease knowledge.Disease
	Overlap int
}

// BestMatch scores every disease by the count of its associated symptoms
// present in the detected set and returns the one with the strictly
// greatest count. Snapshot enumeration is lexicographic by disease name, so
// ties deterministically go to the lexicographically smallest name. Returns
// ok=false when the detected set is empty or no disease overlaps at all.
func BestMatch(snap *knowledge.Snapshot, detected []string) (Match, bool) {
	if len(detected) == 0 {
		return Match{}, false
	}

	have := make(map[string]struct{}, len(detected))
	for _, name := range detected {
		have[strings.ToLower(name)] = struct{}{}
	}

	var best Match
	for _, disease := range snap.Diseases {
		overlap := 0
		for _, idx := range disease.SymptomIdx {
			if _, ok := have[strings.ToLower(snap.Symptoms[idx].Name)]; ok {
				overlap++
			}
		}
		if overlap > best.Overlap {
			best = Match{Disease: disease, Overlap: overlap}
		}
	}
	if best.Overlap == 0 {
		return Match{}, false
	}
	return best, true
}
