package triage

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"sevai/sevai/knowledge"
	"sevai/sevai/locale"
	"sevai/sevai/services/alert"
	"sevai/sevai/services/llm"
	"sevai/sevai/sources/session"
	"sevai/sevai/utils/logging"
	"sevai/sevai/utils/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxExchanges bounds the retained conversation history; two turns per
// exchange, so the turn sequence never exceeds 2*maxExchanges.
const maxExchanges = 10

// ErrEmptyMessage is returned for requests without message text. It is the
// only client error the service produces; everything else either degrades
// (AI path, empty knowledge base) or is a fatal store failure.
var ErrEmptyMessage = errors.New("message is required")

// Archiver stores completed assessments for audit. Implemented by the
// MinIO client; nil disables archiving.
type Archiver interface {
	UploadAssessment(ctx context.Context, sess *session.Session, reply *types.Reply) (string, error)
}

// Service is the conversation controller: it owns session lifecycle, merges
// detector output, tries the AI path, falls back to the rule engine, trims
// history and persists the session.
type Service struct {
	store    session.Store
	catalog  *knowledge.Catalog
	detector *Detector
	fallback *FallbackEngine
	provider llm.Provider
	locales  *locale.Catalog
	alerts   alert.Dispatcher
	archiver Archiver

	llmTimeout time.Duration

	// Per-session mutual exclusion: the load-mutate-persist sequence is
	// not safe under concurrent messages for one session id. Striped by
	// session id hash; collisions only cost contention, never correctness.
	locks [64]sync.Mutex
}

func NewService(
	store session.Store,
	catalog *knowledge.Catalog,
	provider llm.Provider,
	locales *locale.Catalog,
	alerts alert.Dispatcher,
	archiver Archiver,
	llmTimeout time.Duration,
) *Service {
	if alerts == nil {
		alerts = alert.Noop{}
	}
	if llmTimeout <= 0 {
		llmTimeout = 20 * time.Second
	}
	return &Service{
		store:      store,
		catalog:    catalog,
		detector:   NewDetector(catalog),
		fallback:   NewFallbackEngine(catalog, locales),
		provider:   provider,
		locales:    locales,
		alerts:     alerts,
		archiver:   archiver,
		llmTimeout: llmTimeout,
	}
}

func (s *Service) sessionLock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%uint32(len(s.locks))]
}

// ProcessMessage handles one inbound chat message and returns the reply
// produced by the AI path or, on any AI failure, by the fallback engine.
// Session store failures are returned as-is; no partial state is persisted
// without a reply and no reply is returned without persisted state.
func (s *Service) ProcessMessage(ctx context.Context, req types.ChatRequest) (*types.Reply, error) {
	if req.Message == "" {
		return nil, ErrEmptyMessage
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = session.New(sessionID, req.UserID, req.Language)
	}
	if sess.Language == "" {
		sess.Language = req.Language
	}

	newSymptoms := s.detector.Detect(ctx, req.Message)

	// A finished assessment starts over when the new message brings no
	// fresh symptoms, unless the accumulated symptoms are still an
	// emergency; those must not silently reset.
	if sess.AssessmentComplete && len(newSymptoms) == 0 && !IsEmergency(sess.DetectedSymptoms) {
		sess.Reset()
	}

	sess.DetectedSymptoms = mergeSymptoms(sess.DetectedSymptoms, newSymptoms)
	sess.QuestionsAsked++

	reply := s.respond(ctx, sess, req.Message)

	sess.History = append(sess.History,
		session.Turn{Role: "user", Text: req.Message},
		session.Turn{Role: "assistant", Text: reply.Message},
	)
	if limit := maxExchanges * 2; len(sess.History) > limit {
		sess.History = sess.History[len(sess.History)-limit:]
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	if reply.Triage == types.TriageEmergency {
		s.escalate(sess.UserID, sess.DetectedSymptoms)
	}
	if reply.Type == types.ReplyTriage && s.archiver != nil {
		s.archive(sess, reply)
	}

	reply.SessionID = sess.ID
	return reply, nil
}

// respond tries the AI orchestrator and falls back to the rule engine on
// any failure. AI failures never surface to the user.
func (s *Service) respond(ctx context.Context, sess *session.Session, message string) *types.Reply {
	history := make([]llm.Message, 0, len(sess.History))
	for _, turn := range sess.History {
		history = append(history, llm.Message{Role: turn.Role, Text: turn.Text})
	}

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	reply, err := s.provider.Chat(llmCtx, llm.Request{
		History:  history,
		Message:  message,
		Language: sess.Language,
	})
	cancel()

	if err == nil {
		if reply.Type == types.ReplyTriage {
			sess.AssessmentComplete = true
		}
		return reply
	}

	logging.AppLogger.Warn("ai path unavailable, using rule-based fallback",
		zap.String("session_id", sess.ID),
		zap.Error(err),
	)
	reply = s.fallback.Respond(sess, message)

	// The user just greeted: drop whatever evidence the detector scraped
	// out of earlier small talk and start clean.
	if reply.Message == s.locales.Templates(sess.Language).Greeting {
		sess.DetectedSymptoms = nil
		sess.AssessmentComplete = false
	}
	return reply
}

func (s *Service) escalate(userID string, symptoms []string) {
	detected := make([]string, len(symptoms))
	copy(detected, symptoms)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.alerts.Notify(ctx, userID, detected, types.TriageEmergency); err != nil {
			logging.ErrorLogger.Error("emergency escalation failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}()
}

func (s *Service) archive(sess *session.Session, reply *types.Reply) {
	snapshot := *sess
	snapshot.History = append([]session.Turn(nil), sess.History...)
	snapshot.DetectedSymptoms = append([]string(nil), sess.DetectedSymptoms...)
	replyCopy := *reply
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.archiver.UploadAssessment(ctx, &snapshot, &replyCopy); err != nil {
			logging.ErrorLogger.Error("assessment archive failed",
				zap.String("session_id", snapshot.ID),
				zap.Error(err),
			)
		}
	}()
}
