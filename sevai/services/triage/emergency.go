package triage

import "strings"

// criticalSymptoms short-circuit every other decision in the fallback path.
var criticalSymptoms = map[string]struct{}{
	"chest pain":      {},
	"breathlessness":  {},
	"unconscious":     {},
	"severe bleeding": {},
}

// IsEmergency reports whether any accumulated symptom is in the critical
// set, case-insensitively. It holds regardless of exchange count.
func IsEmergency(symptoms []string) bool {
	for _, name := range symptoms {
		if _, ok := criticalSymptoms[strings.ToLower(name)]; ok {
			return true
		}
	}
	return false
}
