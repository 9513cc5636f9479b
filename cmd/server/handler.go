package main

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	aguievents "github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/agui"
	"github.com/wayfinder-ai/wayfinder/event"
	"github.com/wayfinder-ai/wayfinder/planner"
)

//go:embed index.html
var indexFS embed.FS

var indexTemplate = template.Must(template.ParseFS(indexFS, "index.html"))

// indexHandler serves the embedded trip form page.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		MinStartDate string
	}{
		MinStartDate: time.Now().Format(planner.DateFormat),
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("failed to render index", "error", err)
	}
}

// PlanHandler runs the planning pipeline and streams AG-UI events over SSE.
type PlanHandler struct {
	planner *planner.Planner
}

// NewPlanHandler creates a handler for the given planner.
func NewPlanHandler(p *planner.Planner) *PlanHandler {
	return &PlanHandler{planner: p}
}

// ServeHTTP handles POST requests carrying a TripRequest JSON body.
func (h *PlanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req planner.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid request body", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	log := slog.With(
		"origin", req.Origin,
		"destination", req.Destination,
	)

	ctx := r.Context()
	events, state, err := h.planner.RunStream(ctx, req)
	if err != nil {
		log.Warn("invalid trip request", "error", err)
		writeJSONError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("streaming not supported")
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	log.Info("plan request started")

	mapper := agui.NewMapper("", "")

	var eventCount int
	var failed bool
	for ev := range events {
		if ev.Type == event.RunError {
			failed = true
		}

		aguiEvent := mapper.MapEvent(ev)
		if aguiEvent == nil {
			continue
		}
		eventCount++

		if err := writeSSE(w, flusher, aguiEvent); err != nil {
			log.Error("failed to write SSE event", "error", err, "event_type", aguiEvent.Type())
			return
		}
	}

	// A failed run has no complete plan to offer; the RUN_ERROR event
	// already told the browser.
	if failed {
		log.Warn("plan request failed",
			"duration_ms", time.Since(start).Milliseconds(),
			"events_sent", eventCount,
		)
		return
	}

	// Final payload: the assembled plan, so the browser can offer the
	// download without another pipeline run.
	plan := planner.PlanFromState(req, state)
	if err := writeSSEJSON(w, flusher, "plan", plan); err != nil {
		log.Error("failed to write plan event", "error", err)
		return
	}

	log.Info("plan request completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"events_sent", eventCount,
	)
}

// DownloadHandler renders a finished plan as a text or PDF attachment.
// The browser posts back the plan it received from the SSE stream, so no
// server-side state is needed.
type DownloadHandler struct{}

// NewDownloadHandler creates a download handler.
func NewDownloadHandler() *DownloadHandler {
	return &DownloadHandler{}
}

// ServeHTTP handles POST requests with a plan JSON body. The format query
// parameter selects pdf or txt (default txt).
func (h *DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var plan planner.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid plan body: "+err.Error())
		return
	}
	if plan.Summary == "" {
		writeJSONError(w, http.StatusBadRequest, "plan has no summary")
		return
	}

	switch r.URL.Query().Get("format") {
	case "pdf":
		data, err := plan.PDF()
		if err != nil {
			slog.Error("failed to render pdf", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "failed to render pdf")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", plan.Filename("pdf")))
		w.Write(data)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", plan.Filename("txt")))
		w.Write([]byte(plan.Text()))
	}
}

// writeSSE writes an AG-UI event in SSE format.
func writeSSE(w http.ResponseWriter, flusher http.Flusher, ev aguievents.Event) error {
	data, err := ev.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type(), string(data)); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	flusher.Flush()
	return nil
}

// writeSSEJSON writes an application-level SSE event with a JSON payload.
func writeSSEJSON(w http.ResponseWriter, flusher http.Flusher, eventName string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize %s payload: %w", eventName, err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, string(data)); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	flusher.Flush()
	return nil
}

// statusFor maps categorized errors to HTTP status codes.
func statusFor(err error) int {
	var aiErr *ai.Error
	if errors.As(err, &aiErr) {
		switch aiErr.Category() {
		case ai.ErrorUserInput:
			return http.StatusBadRequest
		case ai.ErrorTransient:
			return http.StatusServiceUnavailable
		}
	}
	return http.StatusInternalServerError
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// corsMiddleware adds CORS headers for cross-origin frontend requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
