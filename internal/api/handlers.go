package api

import (
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/questionnaire"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/session"
)

type nextQuestionRequest struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	var req nextQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.svc.NextQuestion(r.Context(), req.SessionID, req.Response)
	if err != nil {
		if eris.Is(err, questionnaire.ErrDuplicateRequest) {
			writeError(w, http.StatusTooManyRequests, "request already in progress")
			return
		}
		zap.L().Error("api: next question", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to advance questionnaire")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	progress, err := s.svc.Progress(r.Context(), sessionID)
	if err != nil {
		if eris.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		zap.L().Error("api: progress", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute progress")
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	if err := s.svc.Reset(r.Context(), req.SessionID); err != nil {
		zap.L().Error("api: reset", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to reset session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

type loadProgressRequest struct {
	SessionID   string                    `json:"session_id"`
	Context     model.ConversationContext `json:"context"`
	AnsweredIDs []string                  `json:"answered_ids"`
}

func (s *Server) handleLoadProgress(w http.ResponseWriter, r *http.Request) {
	var req loadProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.svc.LoadProgress(r.Context(), req.SessionID, req.Context, req.AnsweredIDs)
	if err != nil {
		zap.L().Error("api: load progress", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to restore progress")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"session_id": sess.ID})
}

type extractRequest struct {
	QuestionID string `json:"question_id"`
	Response   string `json:"response"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Response == "" {
		writeError(w, http.StatusBadRequest, "response is required")
		return
	}

	record, err := s.svc.ExtractIntelligence(r.Context(), req.QuestionID, req.Response)
	if err != nil {
		zap.L().Error("api: extract", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "extraction failed")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type generateQuestionRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
}

func (s *Server) handleGenerateQuestion(w http.ResponseWriter, r *http.Request) {
	var req generateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "question_id is required")
		return
	}

	text, err := s.svc.GenerateQuestion(r.Context(), req.SessionID, req.QuestionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown question")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"question": text})
}

type generateReportRequest struct {
	SessionID string `json:"session_id"`
	ExportTo  string `json:"export_to,omitempty"`
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	sess, err := s.svc.Session(r.Context(), req.SessionID)
	if err != nil {
		if eris.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		zap.L().Error("api: load session for report", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	rpt := s.generator.Generate(r.Context(), sess)

	if req.ExportTo != "" {
		exporter, ok := s.exporters[req.ExportTo]
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown export destination")
			return
		}
		// Export failure does not fail report delivery.
		if _, err := exporter.Export(r.Context(), rpt); err != nil {
			zap.L().Error("api: lead export failed",
				zap.String("destination", req.ExportTo),
				zap.Error(err),
			)
		}
	}

	writeJSON(w, http.StatusOK, rpt)
}
