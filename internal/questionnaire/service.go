// Package questionnaire orchestrates the conversational assessment: session
// lookup, answer extraction (AI with a deterministic heuristic fallback),
// question selection, and conversational phrasing.
package questionnaire

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/benchmark"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/extraction"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/selection"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/session"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/anthropic"
)

// ErrDuplicateRequest is returned when a turn for the same session is
// already in flight, or an identical payload repeats inside the debounce
// window. Callers treat it as a no-op.
var ErrDuplicateRequest = eris.New("questionnaire: duplicate request")

// aiConfidence is attached to AI-sourced extractions; the heuristic path
// carries its own flat constant.
const aiConfidence = 0.85

// AIConfig carries the model settings for the AI extraction path.
type AIConfig struct {
	Model     string
	MaxTokens int64
}

// Service is the questionnaire orchestrator. All session state lives in the
// injected store; the service itself holds only guards and collaborators.
type Service struct {
	store session.Store
	sel   *selection.Service
	bank  *model.QuestionBank
	ai    anthropic.Client // nil disables the AI path
	aiCfg AIConfig

	guard *debounce
}

// New creates a questionnaire service. ai may be nil, in which case every
// extraction uses the heuristic path.
func New(store session.Store, bank *model.QuestionBank, ai anthropic.Client, aiCfg AIConfig) *Service {
	if aiCfg.Model == "" {
		aiCfg.Model = "claude-haiku-4-5-20251001"
	}
	if aiCfg.MaxTokens == 0 {
		aiCfg.MaxTokens = 1024
	}
	return &Service{
		store: store,
		sel:   selection.New(bank),
		bank:  bank,
		ai:    ai,
		aiCfg: aiCfg,
		guard: newDebounce(),
	}
}

// TurnResult is the outcome of one conversational turn.
type TurnResult struct {
	SessionID         string                  `json:"session_id"`
	Question          *model.Question         `json:"question,omitempty"`
	QuestionText      string                  `json:"question_text,omitempty"`
	SectionTransition string                  `json:"section_transition,omitempty"`
	IsComplete        bool                    `json:"is_complete"`
	Progress          model.ProgressMetrics   `json:"progress"`
	Extraction        *model.ExtractionRecord `json:"extraction,omitempty"`
}

// NextQuestion advances a session by one turn. An empty sessionID starts a
// new session; a non-empty userResponse is attributed to the session's
// pending question before the next question is selected.
func (s *Service) NextQuestion(ctx context.Context, sessionID, userResponse string) (*TurnResult, error) {
	if err := s.guard.enter(sessionID, userResponse); err != nil {
		return nil, err
	}
	defer s.guard.leave(sessionID)

	s.sweepIdle(ctx)

	sess, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var record *model.ExtractionRecord
	if userResponse != "" && sess.PendingQuestionID != "" {
		record = s.extract(ctx, sess, userResponse)
		s.sel.MarkAnswered(sess, sess.PendingQuestionID, record.Patch)
		sess.Extractions = append(sess.Extractions, *record)
		sess.PendingQuestionID = ""
	}

	next := s.sel.NextQuestion(sess)

	result := &TurnResult{
		SessionID:  sess.ID,
		IsComplete: next.IsComplete,
		Progress:   next.Progress,
		Extraction: record,
	}
	if next.Question != nil {
		sess.PendingQuestionID = next.Question.ID
		result.Question = next.Question
		result.QuestionText = s.phrase(next.Question, sess)
	}
	if next.SectionTransition != nil {
		result.SectionTransition = s.transitionMessage(next.SectionTransition, sess)
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	zap.L().Info("questionnaire: turn complete",
		zap.String("session", sess.ID),
		zap.Bool("complete", result.IsComplete),
		zap.Float64("overall_progress", result.Progress.OverallProgress),
		zap.Int("questions_answered", result.Progress.QuestionsAnswered),
	)
	return result, nil
}

// Progress returns the current metrics without advancing the session.
func (s *Service) Progress(ctx context.Context, sessionID string) (model.ProgressMetrics, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return model.ProgressMetrics{}, err
	}
	return s.sel.Progress(sess), nil
}

// Session exposes the raw session for the report layer.
func (s *Service) Session(ctx context.Context, sessionID string) (*model.Session, error) {
	return s.store.Get(ctx, sessionID)
}

// Reset discards a session entirely. There is no partial correction path:
// a wrong extraction is fixed by starting over.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// LoadProgress restores a persisted snapshot into a fresh session, for
// clients that mirror state locally.
func (s *Service) LoadProgress(ctx context.Context, sessionID string, snapshot model.ConversationContext, answeredIDs []string) (*model.Session, error) {
	sess, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.sel.LoadProgress(sess, snapshot, answeredIDs)
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// BusinessIntelligence summarizes what has been learned about the business
// so far: the typed context plus benchmark placements for the metrics that
// have values.
type BusinessIntelligence struct {
	Context  model.ConversationContext `json:"context"`
	Insights []benchmark.Insight       `json:"insights,omitempty"`
}

// Intelligence returns the context snapshot with benchmark insights.
func (s *Service) Intelligence(ctx context.Context, sessionID string) (*BusinessIntelligence, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	bi := &BusinessIntelligence{Context: sess.Context}
	c := sess.Context
	if c.LastYearTransactions != nil {
		if ins := benchmark.PerformanceInsight(benchmark.MetricTransactions, *c.LastYearTransactions); ins != nil {
			bi.Insights = append(bi.Insights, *ins)
		}
	}
	if c.LastYearGCI != nil {
		if ins := benchmark.PerformanceInsight(benchmark.MetricGCI, *c.LastYearGCI); ins != nil {
			bi.Insights = append(bi.Insights, *ins)
		}
	}
	if c.MonthlyLeadVolume != nil {
		if ins := benchmark.PerformanceInsight(benchmark.MetricLeadVolume, *c.MonthlyLeadVolume); ins != nil {
			bi.Insights = append(bi.Insights, *ins)
		}
	}
	if c.LeadResponseTime != nil {
		if ins := benchmark.PerformanceInsight(benchmark.MetricResponseTime, *c.LeadResponseTime); ins != nil {
			bi.Insights = append(bi.Insights, *ins)
		}
	}
	return bi, nil
}

func (s *Service) loadOrCreate(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return s.store.Create(ctx, s.bank.Sections[0].ID)
	}
	sess, err := s.store.Get(ctx, sessionID)
	if eris.Is(err, session.ErrNotFound) {
		// Swept or never existed; start fresh rather than failing the turn.
		return s.store.Create(ctx, s.bank.Sections[0].ID)
	}
	return sess, err
}

// extract runs the AI extraction path when configured, falling back to the
// heuristic cascade on any failure. The degraded path is recorded in the
// result's Source, never hidden.
func (s *Service) extract(ctx context.Context, sess *model.Session, response string) *model.ExtractionRecord {
	q := s.bank.Question(sess.PendingQuestionID)

	record := &model.ExtractionRecord{
		QuestionID: sess.PendingQuestionID,
		Response:   response,
		At:         time.Now().UTC(),
	}

	if s.ai != nil {
		patch, err := s.aiExtract(ctx, q, response)
		if err == nil {
			record.Patch = patch
			record.Source = model.ExtractionSourceAI
			record.Confidence = aiConfidence
			return record
		}
		zap.L().Warn("questionnaire: ai extraction failed, using heuristics",
			zap.String("session", sess.ID),
			zap.Error(err),
		)
	}

	res := extraction.ExtractForQuestion(q, response)
	record.Patch = res.Patch
	record.Source = model.ExtractionSourceHeuristic
	record.Confidence = res.Confidence
	return record
}

const extractSystemPrompt = `You extract structured facts about a real-estate agent's business from one questionnaire answer. Respond with a single JSON object using only these optional fields: agent_name, years_experience, last_year_gci, last_year_transactions, avg_sale_price, business_structure (solo_agent|team_lead|team_member|brokerage_owner), team_size, market_area, monthly_lead_volume, lead_response_time (under_5min|under_1hour|same_day|next_day|varies), lead_sources, current_crm, uses_automation, biggest_challenges, hours_per_week, admin_hours_per_week, time_spent_on_tasks, growth_goal, growth_stage (starting|scaling|established), monthly_revenue, automation_readiness. Omit anything the answer does not state. No prose.`

func (s *Service) aiExtract(ctx context.Context, q *model.Question, response string) (model.ConversationContext, error) {
	prompt := "Answer: " + response
	if q != nil {
		prompt = "Question asked: " + q.Text + "\n" + prompt
	}

	resp, err := s.ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     s.aiCfg.Model,
		MaxTokens: s.aiCfg.MaxTokens,
		System:    extractSystemPrompt,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return model.ConversationContext{}, err
	}
	resp.Usage.LogCost(s.aiCfg.Model, "extract")

	text := strings.TrimSpace(resp.Text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var patch model.ConversationContext
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &patch); err != nil {
		return model.ConversationContext{}, eris.Wrap(err, "questionnaire: parse extraction json")
	}
	return patch, nil
}

// sweepIdle opportunistically removes idle sessions at most once per minute.
func (s *Service) sweepIdle(ctx context.Context) {
	if !s.guard.shouldSweep() {
		return
	}
	n, err := s.store.DeleteIdle(ctx, session.IdleTimeout)
	if err != nil {
		zap.L().Warn("questionnaire: idle sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Info("questionnaire: idle sessions swept", zap.Int("count", n))
	}
}

// SweepIdle removes idle sessions immediately; used by the serve command's
// background loop.
func (s *Service) SweepIdle(ctx context.Context) (int, error) {
	return s.store.DeleteIdle(ctx, session.IdleTimeout)
}
