package triage

import (
	"fmt"
	"reflect"
	"testing"

	"sevai/sevai/locale"
	"sevai/sevai/sources/session"
	"sevai/sevai/utils/types"
)

func testEngine() (*FallbackEngine, locale.Templates) {
	locales := locale.NewCatalog()
	return NewFallbackEngine(testCatalog(), locales), locales.Templates(locale.DefaultLanguage)
}

func TestFallbackOutOfScopeWinsFirst(t *testing.T) {
	engine, texts := testEngine()
	// Emergency symptoms accumulated, but the denylist state is checked first.
	sess := session.New("s1", "u1", "English")
	sess.DetectedSymptoms = []string{"chest pain"}

	reply := engine.Respond(sess, "tell me a joke")
	if reply.Type != types.ReplyQuestion || reply.Message != texts.OutOfScope {
		t.Errorf("expected out-of-scope reply, got %+v", reply)
	}
}

func TestFallbackBareGreeting(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")

	for _, msg := range []string{"hi", "Hello", " HEY ", "namaste"} {
		reply := engine.Respond(sess, msg)
		if reply.Type != types.ReplyQuestion || reply.Message != texts.Greeting {
			t.Errorf("Respond(%q) = %+v, want greeting", msg, reply)
		}
	}
}

func TestFallbackGreetingMustMatchExactly(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")

	reply := engine.Respond(sess, "hi doctor I feel sick")
	if reply.Message == texts.Greeting {
		t.Error("greeting must only match the bare token, not a sentence containing it")
	}
}

func TestFallbackEmergencyShortCircuit(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")
	sess.DetectedSymptoms = []string{"fever", "chest pain"}
	sess.QuestionsAsked = 1 // below the assessment threshold

	reply := engine.Respond(sess, "it hurts")
	if reply.Type != types.ReplyTriage || reply.Triage != types.TriageEmergency {
		t.Fatalf("expected emergency triage, got %+v", reply)
	}
	if reply.Message != texts.Emergency {
		t.Errorf("expected emergency template, got %q", reply.Message)
	}
	if !reflect.DeepEqual(reply.DetectedSymptoms, sess.DetectedSymptoms) {
		t.Errorf("emergency reply must carry the accumulated symptoms")
	}
	if !sess.AssessmentComplete {
		t.Error("emergency must mark the assessment complete")
	}
}

func TestFallbackQuestionBeforeThreshold(t *testing.T) {
	engine, _ := testEngine()
	sess := session.New("s1", "u1", "English")
	sess.DetectedSymptoms = []string{"fever"}

	for q := 1; q < assessmentThreshold; q++ {
		sess.QuestionsAsked = q
		reply := engine.Respond(sess, "I feel unwell")
		if reply.Type != types.ReplyQuestion {
			t.Errorf("at %d exchanges expected a question, got %+v", q, reply)
		}
	}
}

func TestFallbackAssessmentAtThreshold(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")
	sess.DetectedSymptoms = []string{"fever", "cough"}
	sess.QuestionsAsked = assessmentThreshold

	reply := engine.Respond(sess, "anything else you need?")
	if reply.Type != types.ReplyTriage {
		t.Fatalf("expected triage, got %+v", reply)
	}
	if reply.Disease != "Flu" {
		t.Errorf("expected Flu, got %q", reply.Disease)
	}
	if reply.Triage != types.TriageDoctor {
		t.Errorf("rule-based assessment urgency should be doctor, got %q", reply.Triage)
	}
	if want := fmt.Sprintf(texts.Assessment, "Flu"); reply.Message != want {
		t.Errorf("message = %q, want %q", reply.Message, want)
	}
	if reply.Description == "" || len(reply.Recommendations) == 0 {
		t.Error("assessment must attach description and precautions")
	}
	if !sess.AssessmentComplete {
		t.Error("assessment must mark the session complete")
	}
}

func TestFallbackMoreInfoWhenNoMatch(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")
	sess.QuestionsAsked = assessmentThreshold // no symptoms at all

	reply := engine.Respond(sess, "I just feel off")
	if reply.Type != types.ReplyQuestion || reply.Message != texts.MoreInfo {
		t.Errorf("expected more-info reply, got %+v", reply)
	}
	if sess.AssessmentComplete {
		t.Error("no-match assessment must leave the session incomplete")
	}
}

func TestFallbackNextQuestionNoSymptoms(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")

	reply := engine.Respond(sess, "I do not feel great")
	if reply.Message != texts.NextQuestion {
		t.Errorf("expected generic next question, got %q", reply.Message)
	}
}

func TestFallbackNextQuestionProposesUndetectedSymptom(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")
	sess.DetectedSymptoms = []string{"fever"}
	sess.QuestionsAsked = 1

	reply := engine.Respond(sess, "I have a fever")
	want := fmt.Sprintf(texts.AreYouExperiencing, "cough")
	if reply.Message != want {
		t.Errorf("expected %q, got %q", want, reply.Message)
	}
}

func TestFallbackAnyOtherSymptomsWhenDiseaseExhausted(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "English")
	sess.DetectedSymptoms = []string{"fever", "cough"}
	sess.QuestionsAsked = 1

	reply := engine.Respond(sess, "fever and cough")
	if reply.Message != texts.AnyOtherSymptoms {
		t.Errorf("expected any-other-symptoms probe, got %q", reply.Message)
	}
}

func TestFallbackUnknownLanguageFallsBackToEnglish(t *testing.T) {
	engine, texts := testEngine()
	sess := session.New("s1", "u1", "Klingon")

	reply := engine.Respond(sess, "hello")
	if reply.Message != texts.Greeting {
		t.Errorf("unknown language should get English templates, got %q", reply.Message)
	}
}

func TestFallbackLocalizedGreeting(t *testing.T) {
	locales := locale.NewCatalog()
	engine := NewFallbackEngine(testCatalog(), locales)
	sess := session.New("s1", "u1", "Hindi")

	reply := engine.Respond(sess, "hi")
	if want := locales.Templates("Hindi").Greeting; reply.Message != want {
		t.Errorf("expected Hindi greeting, got %q", reply.Message)
	}
}
