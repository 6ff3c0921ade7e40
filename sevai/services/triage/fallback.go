package triage

import (
	"fmt"
	"regexp"
	"strings"

	"sevai/sevai/knowledge"
	"sevai/sevai/locale"
	"sevai/sevai/sources/session"
	"sevai/sevai/utils/types"
)

// assessmentThreshold is the exchange count at which the fallback engine
// attempts a disease assessment instead of asking another question.
const assessmentThreshold = 3

// outOfScopeRe is the fixed denylist of non-medical or disallowed topics.
// A word-boundary hit anywhere in the message wins over every other state.
var outOfScopeRe = regexp.MustCompile(`\b(cigarette|alcohol|smoke|buy|movie|song|joke|weather|money|date|dating|love|sexy|porn|girl|boy|friend|play|game|video|youtube|google|search|how are you|who are you|your name|what can you do|bad words|sex|abuse|swear|insult|kill|idiot|stupid)\b`)

// greetings must match the whole trimmed, lowercased message.
var greetings = map[string]struct{}{
	"hi":       {},
	"hello":    {},
	"hey":      {},
	"vanakkam": {},
	"namaste":  {},
	"hi there": {},
}

// FallbackEngine is the deterministic rule-based path used whenever the AI
// path is unavailable. Its states are evaluated in strict order; the first
// matching state produces the reply.
type FallbackEngine struct {
	catalog *knowledge.Catalog
	locales *locale.Catalog
}

func NewFallbackEngine(catalog *knowledge.Catalog, locales *locale.Catalog) *FallbackEngine {
	return &FallbackEngine{catalog: catalog, locales: locales}
}

// Respond produces a reply from the session state and the raw message.
// It may mark the session's assessment complete (emergency or successful
// assessment); it performs no other session mutation.
func (e *FallbackEngine) Respond(sess *session.Session, message string) *types.Reply {
	texts := e.locales.Templates(sess.Language)
	lowerMessage := strings.ToLower(strings.TrimSpace(message))

	// 1. Out-of-scope / unsafe input
	if outOfScopeRe.MatchString(lowerMessage) {
		return &types.Reply{Type: types.ReplyQuestion, Message: texts.OutOfScope}
	}

	// 2. Bare greeting
	if _, ok := greetings[lowerMessage]; ok {
		return &types.Reply{Type: types.ReplyQuestion, Message: texts.Greeting}
	}

	// 3. Emergency short-circuit
	if IsEmergency(sess.DetectedSymptoms) {
		sess.AssessmentComplete = true
		return &types.Reply{
			Type:             types.ReplyTriage,
			Triage:           types.TriageEmergency,
			Message:          texts.Emergency,
			DetectedSymptoms: sess.DetectedSymptoms,
		}
	}

	// 4. Assessment once enough exchanges have happened
	if sess.QuestionsAsked >= assessmentThreshold {
		snap := e.catalog.Snapshot()
		if match, ok := BestMatch(snap, sess.DetectedSymptoms); ok {
			sess.AssessmentComplete = true
			return &types.Reply{
				Type:             types.ReplyTriage,
				Triage:           urgencyFor(match.Disease),
				Message:          fmt.Sprintf(texts.Assessment, match.Disease.Name),
				Disease:          match.Disease.Name,
				Description:      match.Disease.Description,
				Recommendations:  match.Disease.Precautions,
				DetectedSymptoms: sess.DetectedSymptoms,
			}
		}
		return &types.Reply{Type: types.ReplyQuestion, Message: texts.MoreInfo}
	}

	// 5. Ask the next question
	return &types.Reply{Type: types.ReplyQuestion, Message: e.nextQuestion(sess.DetectedSymptoms, texts)}
}

// urgencyFor maps a matched disease to an urgency level. The rule-based
// path never claims emergency here (state 3 already handled it) and stays
// conservative: a keyword-overlap match always warrants a doctor visit.
func urgencyFor(knowledge.Disease) string {
	return types.TriageDoctor
}

// nextQuestion picks the follow-up for state 5: with no symptoms yet, the
// generic opener; otherwise the first undetected symptom of the first
// disease overlapping the detected set; failing that, the generic
// "any other symptoms" probe.
func (e *FallbackEngine) nextQuestion(detected []string, texts locale.Templates) string {
	if len(detected) == 0 {
		return texts.NextQuestion
	}

	have := make(map[string]struct{}, len(detected))
	for _, name := range detected {
		have[strings.ToLower(name)] = struct{}{}
	}

	snap := e.catalog.Snapshot()
	for _, disease := range snap.Diseases {
		overlaps := false
		for _, idx := range disease.SymptomIdx {
			if _, ok := have[strings.ToLower(snap.Symptoms[idx].Name)]; ok {
				overlaps = true
				break
			}
		}
		if !overlaps {
			continue
		}
		for _, idx := range disease.SymptomIdx {
			name := snap.Symptoms[idx].Name
			if _, ok := have[strings.ToLower(name)]; !ok {
				return fmt.Sprintf(texts.AreYouExperiencing, name)
			}
		}
		break
	}
	return texts.AnyOtherSymptoms
}
