package handlers

import (
	"errors"
	"net/http"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/service"
	"go.uber.org/zap"
)

// CentralHandler exposes the behavioral pipeline.
type CentralHandler struct {
	summaries    *service.SummaryService
	insights     *service.InsightService
	orchestrator *service.Orchestrator
	logger       *zap.Logger
}

func NewCentralHandler(summaries *service.SummaryService, insights *service.InsightService, orchestrator *service.Orchestrator, logger *zap.Logger) *CentralHandler {
	return &CentralHandler{summaries: summaries, insights: insights, orchestrator: orchestrator, logger: logger}
}

type summaryRequest struct {
	Question string `json:"question"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

func (h *CentralHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req summaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var (
		summary domain.BehaviorSummary
		err     error
	)
	if req.Start != "" || req.End != "" {
		summary, err = h.summaries.SummarizeRange(r.Context(), user.ID, req.Start, req.End)
	} else {
		summary, err = h.summaries.Summarize(r.Context(), user.ID, req.Question)
	}
	if err != nil {
		h.logger.Error("summary failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to build summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

type rangeRequest struct {
	Range string `json:"range"`
}

func (h *CentralHandler) Reasoning(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req rangeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, output, err := h.insights.Reason(r.Context(), user.ID, req.Range)
	if err != nil {
		h.logger.Error("reasoning failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to run reasoning")
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *CentralHandler) Insight(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req rangeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	insight, err := h.insights.Generate(r.Context(), user.ID, req.Range)
	if err != nil {
		h.logger.Error("insight failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate insight")
		return
	}

	writeJSON(w, http.StatusOK, insight)
}

type orchestrateRequest struct {
	Goal string `json:"goal"`
}

func (h *CentralHandler) Orchestrate(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req orchestrateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.orchestrator.Handle(r.Context(), user.ID, req.Goal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("orchestration failed", zap.String("user_id", user.ID.String()), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to handle goal")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Curate renders one decision directly. It needs no user data, but stays
// behind auth with the rest of the pipeline.
func (h *CentralHandler) Curate(w http.ResponseWriter, r *http.Request) {
	if currentUser(w, r) == nil {
		return
	}

	var in domain.CurationInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if in.Action == "" {
		writeError(w, http.StatusBadRequest, "action is required")
		return
	}
	if in.ResponseType != "" && !domain.ValidResponseType(string(in.ResponseType)) {
		writeError(w, http.StatusBadRequest, "response_type must be inform, ask or warn")
		return
	}
	switch in.Severity {
	case "", domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh:
	default:
		writeError(w, http.StatusBadRequest, "severity must be low, medium or high")
		return
	}
	if in.Confidence < 0 || in.Confidence > 1 {
		writeError(w, http.StatusBadRequest, "confidence must be between 0 and 1")
		return
	}

	answer := service.CurateAnswer(in)
	writeJSON(w, http.StatusOK, domain.PlacedAnswer{
		CuratedAnswer: answer,
		Placement:     service.MapPlacement(answer.ResponseType, in.Severity),
	})
}
