// Package echo serves the stateless endpoint that acknowledges a posted log
// entry and returns it unchanged. Nothing is stored.
package echo

import (
	"bytes"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"tableflip.dev/dietlog/pkg/entry"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	MessageOK               = "POST request processed successfully"
	MessageNoBody           = "Invalid request, no body provided"
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageInternal         = "Internal Server Error"
)

// Response is the body of every reply.
type Response struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Handler answers POSTs carrying a JSON LogItem. The body is echoed as
// posted, fields the LogItem does not know included.
type Handler struct {
	Logger zerolog.Logger
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.reply(w, http.StatusMethodNotAllowed, Response{Message: MessageMethodNotAllowed})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.Logger.Error().Err(err).Msg("read request body")
		h.reply(w, http.StatusInternalServerError, Response{Message: MessageInternal})
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.reply(w, http.StatusBadRequest, Response{Message: MessageNoBody})
		return
	}

	if !json.Valid(body) {
		h.Logger.Error().Msg("request body is not valid JSON")
		h.reply(w, http.StatusInternalServerError, Response{Message: MessageInternal})
		return
	}
	var item entry.LogItem
	if err := json.Unmarshal(body, &item); err == nil {
		h.Logger.Debug().Str("id", item.ID).Str("category", string(item.Category)).Msg("echo")
	}
	h.reply(w, http.StatusOK, Response{Message: MessageOK, Data: json.RawMessage(body)})
}

func (h *Handler) reply(w http.ResponseWriter, status int, resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, MessageInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
