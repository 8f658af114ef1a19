package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
	"github.com/artpar/pagekit/domain/audit"
)

// Schema returns the full schema as JSON. Clients fetch it once at
// bootstrap; there is no incremental or partial delivery.
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		h.metrics.SchemaFetchesTotal.Inc()
	}
	writeJSON(w, http.StatusOK, h.schema)
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Action executes one invocation. Invocation-time failures become a
// structured failure response; only the malformed-body case is rejected
// before reaching the dispatch layer.
func (h *Handler) Action(w http.ResponseWriter, r *http.Request) {
	var inv schema.Invocation
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	requestID := h.requestID()
	start := h.now()

	updates, err := h.registry.Dispatch(r.Context(), inv)
	elapsed := h.now().Sub(start)

	switch {
	case errors.Is(err, runtime.ErrUnknownAction):
		h.logger.Warn().
			Str("request_id", requestID).
			Str("action", inv.ID).
			Msg("unknown action")
		h.record(r, requestID, inv.ID, audit.OutcomeNotFound, err.Error(), 0, elapsed)
		writeJSON(w, http.StatusNotFound, schema.Response{
			Success: false,
			Error:   err.Error(),
		})

	case err != nil:
		h.logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("action", inv.ID).
			Msg("action failed")
		h.record(r, requestID, inv.ID, audit.OutcomeError, err.Error(), 0, elapsed)
		writeJSON(w, http.StatusInternalServerError, schema.Response{
			Success: false,
			Error:   err.Error(),
		})

	default:
		h.logger.Info().
			Str("request_id", requestID).
			Str("action", inv.ID).
			Int("updates", len(updates)).
			Dur("elapsed", elapsed).
			Msg("action completed")
		h.record(r, requestID, inv.ID, audit.OutcomeOK, "", len(updates), elapsed)
		writeJSON(w, http.StatusOK, schema.Response{
			Success: true,
			Updates: updates,
		})
	}
}

func (h *Handler) record(r *http.Request, id, action string, outcome audit.Outcome, errMsg string, updates int, elapsed time.Duration) {
	if h.metrics != nil {
		h.metrics.InvocationsTotal.WithLabelValues(action, string(outcome)).Inc()
		h.metrics.InvocationDuration.WithLabelValues(action).Observe(elapsed.Seconds())
	}

	if h.audit == nil {
		return
	}

	e := audit.Event{
		ID:        id,
		Action:    action,
		Outcome:   outcome,
		Error:     errMsg,
		Updates:   updates,
		LatencyMs: elapsed.Milliseconds(),
		Timestamp: h.now(),
	}
	if err := h.audit.Record(r.Context(), e); err != nil {
		h.logger.Error().Err(err).Msg("audit record failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
		"code":    code,
	})
}
