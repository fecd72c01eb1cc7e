package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/eugenenazirov/topic-functions/internal/function"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const maxRequestBytes = 1 << 16

// Handler wires the initialized functions into HTTP handlers.
type Handler struct {
	echo        function.Invoker[function.Response]
	acknowledge function.Invoker[function.Acknowledgement]

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided functions.
func NewHandler(echo function.Invoker[function.Response], acknowledge function.Invoker[function.Acknowledgement], opts ...HandlerOption) *Handler {
	h := &Handler{
		echo:        echo,
		acknowledge: acknowledge,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListFunctions(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, functionsResponse{Functions: function.Names()})
}

func (h *Handler) handleEcho(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.echo.Invoke(r.Context(), req)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAcknowledge(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.acknowledge.Invoke(r.Context(), req)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeRequest accepts an empty body or any JSON object.
func decodeRequest(w http.ResponseWriter, r *http.Request) (function.Request, bool) {
	var req function.Request
	if r.Body == nil {
		return req, true
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req)
	if err == nil || errors.Is(err, io.EOF) {
		return req, true
	}

	writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
	return req, false
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type functionsResponse struct {
	Functions []string `json:"functions"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
