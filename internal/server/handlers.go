package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	rot "github.com/harrycraft44/rotnode"
	"github.com/harrycraft44/rotnode/internal/ctxlog"
	"github.com/harrycraft44/rotnode/internal/usage"
)

// rotateRequest is the body of the POST routes. Shift and charset are
// pointers so that an absent field keeps the engine default while an
// explicit zero value is honored. Shift arrives as a JSON number and goes
// through the same coercion as every other numeric shift source.
type rotateRequest struct {
	Text    string   `json:"text"`
	Shift   *float64 `json:"shift"`
	Charset *string  `json:"charset"`
	Preset  string   `json:"preset"`
}

func (req rotateRequest) options() []rot.Option {
	var opts []rot.Option
	if req.Shift != nil {
		opts = append(opts, rot.WithShift(rot.CoerceShift(*req.Shift)))
	}
	if req.Charset != nil {
		opts = append(opts, rot.WithCharset(rot.Charset(*req.Charset)))
	}
	if req.Preset != "" {
		opts = append(opts, rot.WithPreset(rot.Preset(req.Preset)))
	}
	return opts
}

type rotateResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("server: marshal response: %w", err))
	}
	body = append(body, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
	}
}

func errorHandler(status int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, status, errorResponse{Error: message})
	})
}

func rotationHandler(op string, apply func(string, ...rot.Option) string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rotateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
			return
		}

		result := apply(req.Text, req.options()...)

		if err := usage.Record(op, time.Now()); err != nil {
			log := ctxlog.Get(r.Context())
			log.Error("failed to record usage", "op", op, "error", err)
		}

		writeJSON(w, r, http.StatusOK, rotateResponse{Result: result})
	})
}

func alphabetsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alphabets := map[rot.Charset]string{}
		for name, alphabet := range rot.Alphabets() {
			alphabets[name] = alphabet
		}

		writeJSON(w, r, http.StatusOK, alphabets)
	})
}

func statsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats := map[string]usage.Stats{}
		for op, s := range usage.All() {
			stats[op] = s
		}

		writeJSON(w, r, http.StatusOK, stats)
	})
}
