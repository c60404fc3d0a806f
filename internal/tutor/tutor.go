package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/mastery"
	"github.com/studytrail/studytrail/internal/store"
)

// Config controls the tutor.
type Config struct {
	// MaxTokens is the token budget for each reply.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxMaterialChars caps how much course material goes into the system
	// prompt.
	MaxMaterialChars int

	// MaxHistory is the maximum number of prior messages kept per session.
	// Older messages are dropped from the front.
	MaxHistory int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        1024,
		Temperature:      0.7,
		MaxMaterialChars: 8000,
		MaxHistory:       20,
	}
}

// ObjectiveStanding pairs one learning objective with the student's current
// mastery result on it.
type ObjectiveStanding struct {
	Index  int
	Text   string
	Result mastery.Result
}

// Session is one tutoring conversation about one module. Not safe for
// concurrent use.
type Session struct {
	module    store.ModuleData
	standings []ObjectiveStanding
	history   []llm.Message
}

// Service answers student questions about a module, aware of which
// objectives the student has and hasn't mastered.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// NewSession starts a conversation about module, seeded with the student's
// current standings.
func (s *Service) NewSession(module store.ModuleData, standings []ObjectiveStanding) *Session {
	return &Session{module: module, standings: standings}
}

// History returns the conversation so far.
func (sess *Session) History() []llm.Message {
	return sess.history
}

// Respond sends the student's message and returns the tutor's reply. The
// exchange is appended to the session history.
func (s *Service) Respond(ctx context.Context, sess *Session, userMsg string) (string, error) {
	userMsg = strings.TrimSpace(userMsg)
	if userMsg == "" {
		return "", fmt.Errorf("message is empty")
	}

	ctx = llm.WithPurpose(ctx, "tutor")

	messages := append(append([]llm.Message{}, sess.history...), llm.Message{
		Role:    llm.RoleUser,
		Content: userMsg,
	})

	req := llm.Request{
		System:      s.buildSystemPrompt(sess),
		Messages:    messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tutor reply failed: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("tutor returned an empty reply")
	}

	sess.history = append(sess.history,
		llm.Message{Role: llm.RoleUser, Content: userMsg},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
	if s.cfg.MaxHistory > 0 && len(sess.history) > s.cfg.MaxHistory {
		sess.history = sess.history[len(sess.history)-s.cfg.MaxHistory:]
	}

	return reply, nil
}

const tutorSystemPromptHeader = `You are a patient tutor helping a student work through course material.

Rules:
- Ground every answer in the provided course material. If the student asks about something the material doesn't cover, say so.
- The student's current standing on each objective is listed below. Lean on it: walk slowly through objectives marked "developing", connect new questions back to objectives with a recent mistake, and keep answers brief for objectives already mastered.
- Guide rather than lecture. Prefer a short explanation followed by a question that checks understanding.
- Keep replies to a few short paragraphs at most.`

func (s *Service) buildSystemPrompt(sess *Session) string {
	var b strings.Builder
	b.WriteString(tutorSystemPromptHeader)

	fmt.Fprintf(&b, "\n\nModule: %s\n", sess.module.Title)

	b.WriteString("\nObjectives and the student's standing:\n")
	for _, st := range sess.standings {
		fmt.Fprintf(&b, "[%d] %s — %s", st.Index, st.Text, st.Result.Status)
		if st.Result.Streak > 0 {
			fmt.Fprintf(&b, ", streak %d", st.Result.Streak)
		}
		if st.Result.RecentMajorMistake {
			b.WriteString(", recent major mistake")
		}
		b.WriteString("\n")
	}

	b.WriteString("\nCourse material:\n")
	b.WriteString(truncate(sess.module.Material, s.cfg.MaxMaterialChars))
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n[material truncated]"
}
