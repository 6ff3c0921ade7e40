package triage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"sevai/sevai/locale"
	"sevai/sevai/services/llm"
	"sevai/sevai/sources/session"
	"sevai/sevai/utils/logging"
	"sevai/sevai/utils/types"
)

func TestMain(m *testing.M) {
	logging.InitLogger()
	os.Exit(m.Run())
}

type stubProvider struct {
	chat func(ctx context.Context, req llm.Request) (*types.Reply, error)
}

func (p *stubProvider) Chat(ctx context.Context, req llm.Request) (*types.Reply, error) {
	return p.chat(ctx, req)
}

func failingProvider(err error) *stubProvider {
	return &stubProvider{chat: func(context.Context, llm.Request) (*types.Reply, error) {
		return nil, err
	}}
}

type captureDispatcher struct {
	notified chan []string
}

func (d *captureDispatcher) Notify(_ context.Context, _ string, symptoms []string, _ string) error {
	d.notified <- symptoms
	return nil
}

func newTestService(t *testing.T, provider llm.Provider) (*Service, session.Store) {
	t.Helper()
	store, err := session.NewStore(session.StoreTypeMemory)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	svc := NewService(store, testCatalog(), provider, locale.NewCatalog(), nil, nil, time.Second)
	return svc, store
}

func TestProcessMessageEmptyMessage(t *testing.T) {
	svc, _ := newTestService(t, failingProvider(errors.New("down")))
	_, err := svc.ProcessMessage(context.Background(), types.ChatRequest{UserID: "u1"})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestProcessMessageGeneratesSessionID(t *testing.T) {
	svc, store := newTestService(t, failingProvider(errors.New("down")))

	reply, err := svc.ProcessMessage(context.Background(), types.ChatRequest{
		UserID: "u1", Message: "I have a fever", Language: "English",
	})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if reply.SessionID == "" {
		t.Fatal("expected a generated session id")
	}
	sess, err := store.Get(context.Background(), reply.SessionID)
	if err != nil || sess == nil {
		t.Fatalf("session not persisted under generated id: sess=%v err=%v", sess, err)
	}
}

func TestProcessMessageAllProviderFailuresLookTheSame(t *testing.T) {
	// A transport error and a provider-reported error must be
	// indistinguishable to the user: both take the rule-based path.
	transportErr := errors.New("dial tcp: connection refused")
	providerErr := fmt.Errorf("gemini: quota exceeded: %w", llm.ErrUnavailable)

	var replies []*types.Reply
	for _, provErr := range []error{transportErr, providerErr} {
		svc, _ := newTestService(t, failingProvider(provErr))
		reply, err := svc.ProcessMessage(context.Background(), types.ChatRequest{
			SessionID: "s1", UserID: "u1", Message: "I have a fever", Language: "English",
		})
		if err != nil {
			t.Fatalf("ProcessMessage: %v", err)
		}
		replies = append(replies, reply)
	}
	if !reflect.DeepEqual(replies[0], replies[1]) {
		t.Errorf("fallback replies differ by failure shape:\n%+v\n%+v", replies[0], replies[1])
	}
	if replies[0].Type != types.ReplyQuestion {
		t.Errorf("expected a follow-up question, got %+v", replies[0])
	}
}

func TestProcessMessageFallbackConversationFlow(t *testing.T) {
	svc, store := newTestService(t, failingProvider(errors.New("down")))
	texts := locale.NewCatalog().Templates("English")
	ctx := context.Background()

	send := func(msg string) *types.Reply {
		t.Helper()
		reply, err := svc.ProcessMessage(ctx, types.ChatRequest{
			SessionID: "flow", UserID: "u1", Message: msg, Language: "English",
		})
		if err != nil {
			t.Fatalf("ProcessMessage(%q): %v", msg, err)
		}
		return reply
	}

	if got := send("I have a fever").Message; got != fmt.Sprintf(texts.AreYouExperiencing, "cough") {
		t.Errorf("exchange 1: got %q", got)
	}
	if got := send("yes, a bad cough too").Message; got != texts.AnyOtherSymptoms {
		t.Errorf("exchange 2: got %q", got)
	}

	reply := send("no, that is all")
	if reply.Type != types.ReplyTriage || reply.Disease != "Flu" || reply.Triage != types.TriageDoctor {
		t.Fatalf("exchange 3: expected Flu triage, got %+v", reply)
	}

	sess, err := store.Get(ctx, "flow")
	if err != nil || sess == nil {
		t.Fatalf("store.Get: sess=%v err=%v", sess, err)
	}
	if !sess.AssessmentComplete {
		t.Error("session should be marked complete after triage")
	}

	// A benign follow-up after completion starts a fresh assessment.
	if got := send("okay, thanks").Message; got != texts.NextQuestion {
		t.Errorf("post-completion: got %q", got)
	}
	sess, _ = store.Get(ctx, "flow")
	if sess.AssessmentComplete || sess.QuestionsAsked != 1 {
		t.Errorf("expected reset session, got complete=%v questions=%d",
			sess.AssessmentComplete, sess.QuestionsAsked)
	}
}

func TestProcessMessageEmergencyDoesNotReset(t *testing.T) {
	svc, store := newTestService(t, failingProvider(errors.New("down")))
	ctx := context.Background()

	reply, err := svc.ProcessMessage(ctx, types.ChatRequest{
		SessionID: "em", UserID: "u1", Message: "sudden chest pain", Language: "English",
	})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if reply.Triage != types.TriageEmergency {
		t.Fatalf("expected emergency, got %+v", reply)
	}

	// The emergency stays an emergency on the next message even though it
	// brings no new symptoms.
	reply, err = svc.ProcessMessage(ctx, types.ChatRequest{
		SessionID: "em", UserID: "u1", Message: "what should I do", Language: "English",
	})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if reply.Triage != types.TriageEmergency {
		t.Errorf("expected emergency to persist, got %+v", reply)
	}
	sess, _ := store.Get(ctx, "em")
	if !reflect.DeepEqual(sess.DetectedSymptoms, []string{"chest pain"}) {
		t.Errorf("emergency symptoms must survive, got %v", sess.DetectedSymptoms)
	}
}

func TestProcessMessageEmergencyEscalates(t *testing.T) {
	store, err := session.NewStore(session.StoreTypeMemory)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	defer store.Close()

	alerts := &captureDispatcher{notified: make(chan []string, 1)}
	svc := NewService(store, testCatalog(), failingProvider(errors.New("down")),
		locale.NewCatalog(), alerts, nil, time.Second)

	_, err = svc.ProcessMessage(context.Background(), types.ChatRequest{
		SessionID: "esc", UserID: "u1", Message: "severe bleeding from my arm", Language: "English",
	})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}

	select {
	case symptoms := <-alerts.notified:
		if !reflect.DeepEqual(symptoms, []string{"severe bleeding"}) {
			t.Errorf("escalated symptoms = %v", symptoms)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("emergency was never escalated")
	}
}

func TestProcessMessageHistoryCapped(t *testing.T) {
	svc, store := newTestService(t, failingProvider(errors.New("down")))
	ctx := context.Background()

	for i := 0; i < maxExchanges+5; i++ {
		if _, err := svc.ProcessMessage(ctx, types.ChatRequest{
			SessionID: "cap", UserID: "u1", Message: "still not feeling well", Language: "English",
		}); err != nil {
			t.Fatalf("ProcessMessage: %v", err)
		}
	}

	sess, _ := store.Get(ctx, "cap")
	if len(sess.History) != maxExchanges*2 {
		t.Errorf("history length = %d, want %d", len(sess.History), maxExchanges*2)
	}
	if sess.History[len(sess.History)-1].Role != "assistant" {
		t.Error("history must end with the assistant turn")
	}
}

func TestProcessMessageGreetingClearsSymptoms(t *testing.T) {
	svc, store := newTestService(t, failingProvider(errors.New("down")))
	ctx := context.Background()

	if _, err := svc.ProcessMessage(ctx, types.ChatRequest{
		SessionID: "greet", UserID: "u1", Message: "I have a cough", Language: "English",
	}); err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if _, err := svc.ProcessMessage(ctx, types.ChatRequest{
		SessionID: "greet", UserID: "u1", Message: "hello", Language: "English",
	}); err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}

	sess, _ := store.Get(ctx, "greet")
	if len(sess.DetectedSymptoms) != 0 {
		t.Errorf("greeting should clear symptoms, got %v", sess.DetectedSymptoms)
	}
}

func TestProcessMessageAISuccess(t *testing.T) {
	aiReply := &types.Reply{
		Type:             types.ReplyTriage,
		Message:          "Based on your symptoms, this looks like the flu.",
		Triage:           types.TriageSelfCare,
		Disease:          "Flu",
		DetectedSymptoms: []string{"fever", "cough"},
	}
	provider := &stubProvider{chat: func(_ context.Context, req llm.Request) (*types.Reply, error) {
		if req.Language != "English" {
			return nil, fmt.Errorf("unexpected language %q", req.Language)
		}
		r := *aiReply
		return &r, nil
	}}
	svc, store := newTestService(t, provider)

	reply, err := svc.ProcessMessage(context.Background(), types.ChatRequest{
		SessionID: "ai", UserID: "u1", Message: "fever and cough for two days", Language: "English",
	})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if reply.Message != aiReply.Message || reply.Triage != types.TriageSelfCare {
		t.Errorf("AI reply not passed through: %+v", reply)
	}
	if reply.SessionID != "ai" {
		t.Errorf("session id not stamped on reply: %q", reply.SessionID)
	}

	sess, _ := store.Get(context.Background(), "ai")
	if !sess.AssessmentComplete {
		t.Error("AI triage must mark the session complete")
	}
}

func TestProcessMessageAISeesHistory(t *testing.T) {
	var seen []llm.Message
	provider := &stubProvider{chat: func(_ context.Context, req llm.Request) (*types.Reply, error) {
		seen = req.History
		return &types.Reply{Type: types.ReplyQuestion, Message: "How long has this been going on?"}, nil
	}}
	svc, _ := newTestService(t, provider)
	ctx := context.Background()

	for _, msg := range []string{"I have a fever", "since yesterday"} {
		if _, err := svc.ProcessMessage(ctx, types.ChatRequest{
			SessionID: "hist", UserID: "u1", Message: msg, Language: "English",
		}); err != nil {
			t.Fatalf("ProcessMessage(%q): %v", msg, err)
		}
	}

	want := []llm.Message{
		{Role: "user", Text: "I have a fever"},
		{Role: "assistant", Text: "How long has this been going on?"},
	}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("history seen by provider = %v, want %v", seen, want)
	}
}
