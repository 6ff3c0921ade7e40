// sevai/services/llm/llm.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sevai/sevai/utils/jsonutils"
	"sevai/sevai/utils/types"
)

// ErrUnavailable marks every AI-path failure: transport errors, non-success
// provider status, provider-reported errors, and malformed or invalid
// structured output. Callers test with errors.Is and fall back to the rule
// engine; the distinction only matters for logs.
var ErrUnavailable = errors.New("llm unavailable")

// Message is one prior conversation turn sent to the provider.
// Role is "user" or "assistant".
type Message struct {
	Role string
	Text string
}

// Request carries everything a provider needs for one triage exchange.
type Request struct {
	History  []Message
	Message  string
	Language string
}

// Provider is a single blocking call to an external language model. It
// either returns a fully validated structured reply or an error wrapping
// ErrUnavailable; a Provider never returns a partially valid reply.
type Provider interface {
	Chat(ctx context.Context, req Request) (*types.Reply, error)
}

// annotate prefixes the user message with the declared language so the
// model answers in it; English is the prompt's default and needs no tag.
func annotate(req Request) string {
	if req.Language != "" && req.Language != "English" {
		return "[User language: " + req.Language + "] " + req.Message
	}
	return req.Message
}

// parseReply extracts and validates the structured reply from raw model
// text. Code-fence markers and stray formatting are stripped first.
func parseReply(text string) (*types.Reply, error) {
	var reply types.Reply
	if err := json.Unmarshal([]byte(jsonutils.ExtractJSON(text)), &reply); err != nil {
		return nil, fmt.Errorf("%w: unparsable reply: %v", ErrUnavailable, err)
	}
	if err := validate(&reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func validate(reply *types.Reply) error {
	if reply.Message == "" {
		return fmt.Errorf("%w: reply has no message", ErrUnavailable)
	}
	switch reply.Type {
	case types.ReplyQuestion:
		return nil
	case types.ReplyTriage:
		switch reply.Triage {
		case types.TriageEmergency, types.TriageDoctor, types.TriageSelfCare:
			return nil
		default:
			return fmt.Errorf("%w: invalid triage level %q", ErrUnavailable, reply.Triage)
		}
	default:
		return fmt.Errorf("%w: invalid reply type %q", ErrUnavailable, reply.Type)
	}
}
