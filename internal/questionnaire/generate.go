package questionnaire

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/extraction"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/anthropic"
)

// ExtractIntelligence runs extraction over a single response without
// touching session state. Used by the stateless extraction endpoint.
func (s *Service) ExtractIntelligence(ctx context.Context, questionID, response string) (*model.ExtractionRecord, error) {
	if strings.TrimSpace(response) == "" {
		return nil, eris.New("questionnaire: response is required")
	}

	q := s.bank.Question(questionID)
	record := &model.ExtractionRecord{
		QuestionID: questionID,
		Response:   response,
		At:         time.Now().UTC(),
	}

	if s.ai != nil {
		patch, err := s.aiExtract(ctx, q, response)
		if err == nil {
			record.Patch = patch
			record.Source = model.ExtractionSourceAI
			record.Confidence = aiConfidence
			return record, nil
		}
		zap.L().Warn("questionnaire: ai extraction failed, using heuristics", zap.Error(err))
	}

	res := extraction.ExtractForQuestion(q, response)
	record.Patch = res.Patch
	record.Source = model.ExtractionSourceHeuristic
	record.Confidence = res.Confidence
	return record, nil
}

const phraseSystemPrompt = `You rewrite one real-estate business questionnaire item as a single warm, conversational question. Keep the same information need. One sentence, no preamble, no quotes.`

// GenerateQuestion returns a conversational phrasing of a bank question for
// the given session, via the AI when configured and the templated phrasing
// otherwise or on any failure.
func (s *Service) GenerateQuestion(ctx context.Context, sessionID, questionID string) (string, error) {
	q := s.bank.Question(questionID)
	if q == nil {
		return "", eris.Errorf("questionnaire: unknown question %s", questionID)
	}

	sess, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return "", eris.Wrap(err, "questionnaire: load session")
	}

	if s.ai != nil {
		resp, err := s.ai.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     s.aiCfg.Model,
			MaxTokens: s.aiCfg.MaxTokens,
			System:    phraseSystemPrompt,
			Messages:  []anthropic.Message{{Role: "user", Content: s.phrase(q, sess)}},
		})
		if err == nil {
			if text := strings.TrimSpace(resp.Text); text != "" {
				resp.Usage.LogCost(s.aiCfg.Model, "generate_question")
				return text, nil
			}
		} else {
			zap.L().Warn("questionnaire: ai question generation failed, using template",
				zap.String("question", questionID),
				zap.Error(err),
			)
		}
	}

	return s.phrase(q, sess), nil
}
