package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/middlewares"
)

var ErrBadRequest = errors.New("server: bad request")

type handlers struct {
	log      *slog.Logger
	provider *intl.Provider
	maxBody  int64
}

// Result is the body of every formatting response.
type Result struct {
	Locale string `json:"locale"`
	Value  string `json:"value"`
}

// MessageRequest is the body of /v1/message and /v1/html.
type MessageRequest struct {
	intl.MessageDescriptor
	Values intl.Values `json:"values,omitempty"`
}

// DateRequest is the body of /v1/date and /v1/time. Value is an RFC 3339
// string, a 2006-01-02 date or milliseconds since the Unix epoch.
type DateRequest struct {
	Value any `json:"value"`
	intl.DateOptions
}

// RelativeRequest is the body of /v1/relative.
type RelativeRequest struct {
	Value any `json:"value"`
	intl.RelativeOptions
}

// NumberRequest is the body of /v1/number.
type NumberRequest struct {
	Value any `json:"value"`
	intl.NumberOptions
}

// PluralRequest is the body of /v1/plural.
type PluralRequest struct {
	Value any `json:"value"`
	intl.PluralOptions
}

// LocalesResponse is the body of /v1/locales.
type LocalesResponse struct {
	Locale        string   `json:"locale"`
	DefaultLocale string   `json:"defaultLocale"`
	Locales       []string `json:"locales"`
}

// MessagesResponse is the body of /v1/messages.
type MessagesResponse struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) locales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LocalesResponse{
		Locale:        middlewares.LocaleFromContext(r.Context()),
		DefaultLocale: h.provider.DefaultLocale(),
		Locales:       h.provider.Locales(),
	})
}

func (h *handlers) messages(w http.ResponseWriter, r *http.Request) {
	i := middlewares.FromContext(r.Context())
	writeJSON(w, http.StatusOK, MessagesResponse{
		Locale:   i.Locale(),
		Messages: i.Config().Messages,
	})
}

func (h *handlers) message(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	i := middlewares.FromContext(r.Context())
	h.result(w, i, i.FormatMessage(req.MessageDescriptor, req.Values))
}

func (h *handlers) html(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	i := middlewares.FromContext(r.Context())
	h.result(w, i, i.FormatHTMLMessage(req.MessageDescriptor, req.Values))
}

func (h *handlers) date(w http.ResponseWriter, r *http.Request) {
	var req DateRequest
	if !h.decode(w, r, &req) {
		return
	}
	i := middlewares.FromContext(r.Context())
	h.result(w, i, i.FormatDate(req.Value, req.DateOptions))
}

func (h *handlers) time(w http.ResponseWriter, r *http.Request) {
	var req DateRequest
	if !h.decode(w, r, &req) {
		return
	}
	i := middlewares.FromContext(r.Context())
	h.result(w, i, i.FormatTime(req.Value, req.DateOptions))
}

func (h *handlers) relative(w http.ResponseWriter, r *http.Request) {
	var req RelativeRequest
	if !h.decode(w, r, &req) {
		return
	}
	i := middlewares.FromContext(r.Context())
	h.result(w, i, i.FormatRelative(req.Value, req.RelativeOptions))
}

func (h *handlers) number(w http.ResponseWriter, r *http.Request) {
	var req NumberRequest
	if !h.decode(w, r, &req) {
		return
	}
	i := middlewares.FromContext(r.Context())
	h.result(w, i, i.FormatNumber(req.Value, req.NumberOptions))
}

func (h *handlers) plural(w http.ResponseWriter, r *http.Request) {
	var req PluralRequest
	if !h.decode(w, r, &req) {
		return
	}
	i := middlewares.FromContext(r.Context())
	h.result(w, i, i.FormatPlural(req.Value, req.PluralOptions))
}

// decode reads a JSON body. Numbers stay json.Number so large integers keep
// their precision. It writes a 400 response and returns false on error.
func (h *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.log.DebugContext(r.Context(), "invalid request body", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errors.Join(ErrBadRequest, err).Error()})
		return false
	}
	return true
}

func (h *handlers) result(w http.ResponseWriter, i *intl.Intl, value string) {
	writeJSON(w, http.StatusOK, Result{Locale: i.Locale(), Value: value})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

