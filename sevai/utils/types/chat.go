// sevai/utils/types/chat.go
package types

// ChatRequest is the inbound message for the triage chat API.
// SessionID may be empty on the first message; the service generates one.
type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Message   string `json:"message"`
	Language  string `json:"language,omitempty"`
}

// Reply types.
const (
	ReplyQuestion = "question"
	ReplyTriage   = "triage"
)

// Triage urgency levels.
const (
	TriageEmergency = "emergency"
	TriageDoctor    = "doctor"
	TriageSelfCare  = "self_care"
)

// Reply is the structured chat reply. Both the AI orchestrator and the
// rule-based fallback produce this shape, so callers never need to know
// which path answered.
//
// Triage, Disease and Recommendations are set only when Type == "triage".
type Reply struct {
	Type                   string   `json:"type"`
	Message                string   `json:"message"`
	SessionID              string   `json:"sessionId,omitempty"`
	DetectedSymptoms       []string `json:"detectedSymptoms,omitempty"`
	Triage                 string   `json:"triage,omitempty"`
	Disease                string   `json:"disease,omitempty"`
	Description            string   `json:"description,omitempty"`
	Recommendations        []string `json:"recommendations,omitempty"`
	EmotionalWordsFiltered []string `json:"emotionalWordsFiltered,omitempty"`
}
