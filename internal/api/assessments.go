package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Readiness/internal/cache"
	"github.com/MikeSquared-Agency/Readiness/internal/hermes"
	"github.com/MikeSquared-Agency/Readiness/internal/metrics"
	"github.com/MikeSquared-Agency/Readiness/internal/scoring"
	"github.com/MikeSquared-Agency/Readiness/internal/store"
)

const maxBodyBytes = 1 << 20

// AssessmentsHandler scores submissions and serves stored results. The store,
// cache and notifier are optional; nil disables the matching behavior.
type AssessmentsHandler struct {
	scorer   *scoring.Scorer
	store    store.Store
	cache    cache.ReportCache
	notifier *hermes.Notifier
	logger   *slog.Logger
}

func NewAssessmentsHandler(sc *scoring.Scorer, s store.Store, c cache.ReportCache, n *hermes.Notifier, logger *slog.Logger) *AssessmentsHandler {
	return &AssessmentsHandler{scorer: sc, store: s, cache: c, notifier: n, logger: logger}
}

type SubmitRequest struct {
	Answers []scoring.Answer `json:"answers"`
}

type AssessmentResponse struct {
	AssessmentID string                    `json:"assessment_id,omitempty"`
	Fingerprint  string                    `json:"fingerprint"`
	Report       *scoring.Report           `json:"report"`
	Coverage     []scoring.SectionCoverage `json:"coverage"`
	CreatedAt    *time.Time                `json:"created_at,omitempty"`
}

type validationErrorResponse struct {
	Error      string `json:"error"`
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
	Min        int    `json:"min"`
	Max        int    `json:"max"`
}

type evaluation struct {
	set         scoring.AnswerSet
	fingerprint string
	report      *scoring.Report
}

// Create scores a submission, persists it and announces the result.
func (h *AssessmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	ev, ok := h.evaluate(w, r, req, true)
	if !ok {
		return
	}

	rec := &store.Assessment{
		Fingerprint: ev.fingerprint,
		Answers:     req.Answers,
		Report:      ev.report,
		Coverage:    h.scorer.Coverage(ev.set),
	}
	if h.store != nil {
		if err := h.store.SaveAssessment(r.Context(), rec); err != nil {
			h.logger.Error("failed to save assessment", "fingerprint", ev.fingerprint, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else {
		rec.ID = uuid.New()
		rec.CreatedAt = time.Now().UTC()
	}

	h.notifier.AssessmentCompleted(r.Context(), completedEvent(rec))
	writeJSON(w, http.StatusCreated, toResponse(rec))
}

// Preview scores a submission without storing it or publishing events.
func (h *AssessmentsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	ev, ok := h.evaluate(w, r, req, false)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, AssessmentResponse{
		Fingerprint: ev.fingerprint,
		Report:      ev.report,
		Coverage:    h.scorer.Coverage(ev.set),
	})
}

func (h *AssessmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}

	rec, err := h.store.GetAssessment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}
	writeJSON(w, http.StatusOK, toResponse(rec))
}

func (h *AssessmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	q := r.URL.Query()
	filter := store.AssessmentFilter{}
	if v := q.Get("verdict"); v != "" {
		verdict := scoring.Verdict(v)
		switch verdict {
		case scoring.VerdictPursue, scoring.VerdictMaybe, scoring.VerdictNotRecommended:
		default:
			writeError(w, http.StatusBadRequest, "invalid verdict")
			return
		}
		filter.Verdict = &verdict
	}
	var err error
	if filter.Limit, err = intParam(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if filter.Offset, err = intParam(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	recs, err := h.store.ListAssessments(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]AssessmentResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AssessmentsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AssessmentsHandler) decode(w http.ResponseWriter, r *http.Request) (*SubmitRequest, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := validateSubmission(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	var req SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

// evaluate validates and scores a request, consulting the report cache by
// fingerprint. It writes the error response itself when it returns false.
// Rejections are published only when announce is set.
func (h *AssessmentsHandler) evaluate(w http.ResponseWriter, r *http.Request, req *SubmitRequest, announce bool) (*evaluation, bool) {
	ctx := r.Context()
	set := scoring.Normalize(req.Answers)

	if err := scoring.Validate(h.scorer.Catalog(), set); err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailures.Inc()
			if announce {
				h.notifier.AssessmentRejected(ctx, hermes.AssessmentRejectedEvent{
					QuestionID: verr.QuestionID,
					Value:      verr.Value,
					Reason:     verr.Error(),
					RejectedAt: time.Now().UTC(),
				})
			}
			writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
				Error:      verr.Error(),
				QuestionID: verr.QuestionID,
				Value:      verr.Value,
				Min:        verr.Min,
				Max:        verr.Max,
			})
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}

	ev := &evaluation{set: set, fingerprint: h.scorer.Fingerprint(set)}
	ev.report = h.cached(ctx, ev.fingerprint)
	if ev.report == nil {
		report, err := h.scorer.ScoreSet(set)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return nil, false
		}
		ev.report = report
		h.remember(ctx, ev.fingerprint, report)
	}

	metrics.ObserveReport(string(ev.report.Recommendation.Verdict), ev.report.OverallScore)
	return ev, true
}

func (h *AssessmentsHandler) cached(ctx context.Context, fingerprint string) *scoring.Report {
	if h.cache == nil {
		return nil
	}
	report, err := h.cache.Get(ctx, fingerprint)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		h.logger.Warn("report cache lookup failed", "fingerprint", fingerprint, "error", err)
		return nil
	case report == nil:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil
	default:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return report
	}
}

func (h *AssessmentsHandler) remember(ctx context.Context, fingerprint string, report *scoring.Report) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, fingerprint, report); err != nil {
		h.logger.Warn("report cache store failed", "fingerprint", fingerprint, "error", err)
	}
}

func (h *AssessmentsHandler) requireStore(w http.ResponseWriter) bool {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "assessment storage not configured")
		return false
	}
	return true
}

func completedEvent(rec *store.Assessment) hermes.AssessmentCompletedEvent {
	ev := hermes.AssessmentCompletedEvent{
		AssessmentID: rec.ID.String(),
		Fingerprint:  rec.Fingerprint,
		Verdict:      string(rec.Report.Recommendation.Verdict),
		OverallScore: rec.Report.OverallScore,
		Confidence:   rec.Report.Recommendation.Confidence,
		CompletedAt:  rec.CreatedAt,
	}
	if matches := rec.Report.Recommendation.CareerMatches; len(matches) > 0 {
		ev.TopCareer = matches[0].Title
	}
	return ev
}

func toResponse(rec *store.Assessment) AssessmentResponse {
	created := rec.CreatedAt
	return AssessmentResponse{
		AssessmentID: rec.ID.String(),
		Fingerprint:  rec.Fingerprint,
		Report:       rec.Report,
		Coverage:     rec.Coverage,
		CreatedAt:    &created,
	}
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("must be a non-negative integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
