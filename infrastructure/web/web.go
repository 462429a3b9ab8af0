// Package web contains a small web framework extension over net/http: handler
// functions return an Encoder, middleware wraps handlers, and responses are
// written in one place.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Encoder defines behavior that can encode a data model and provide the
// content type for that encoding.
type Encoder interface {
	Encode() (data []byte, contentType string, err error)
}

// HandlerFunc represents a function that handles a http request within our own
// little mini framework.
type HandlerFunc func(ctx context.Context, r *http.Request) Encoder

// Middleware wraps a HandlerFunc with pre/post processing.
type Middleware func(HandlerFunc) HandlerFunc

// Telemetry represents a provider of request trace identity.
type Telemetry interface {
	SetTraceID(ctx context.Context) context.Context
	GetTraceID(ctx context.Context) string
}

// Handler is the entrypoint for route registration. It owns the mux, the
// global middleware chain and the response writing.
type Handler struct {
	mux              *http.ServeMux
	log              *slog.Logger
	telemetry        Telemetry
	defaultHeaders   map[string]string
	globalMiddleware []Middleware
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogging sets the logger.
func WithLogging(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = log
	}
}

// WithTelemetry sets the telemetry provider.
func WithTelemetry(tel Telemetry) HandlerOption {
	return func(h *Handler) {
		h.telemetry = tel
	}
}

// WithDefaultHeaders sets headers applied to every response.
func WithDefaultHeaders(headers map[string]string) HandlerOption {
	return func(h *Handler) {
		for k, v := range headers {
			h.defaultHeaders[k] = v
		}
	}
}

// WithGlobalMiddleware appends middleware applied to every route in
// registration order.
func WithGlobalMiddleware(middleware ...Middleware) HandlerOption {
	return func(h *Handler) {
		h.globalMiddleware = append(h.globalMiddleware, middleware...)
	}
}

// NewHandler creates a Handler and applies the given options.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		mux:            http.NewServeMux(),
		defaultHeaders: make(map[string]string),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Handle registers a handler for the method and path, wrapping it with the
// global middleware chain plus any route-specific middleware.
func (h *Handler) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	final := h.buildHandlerChain(handler, middleware...)

	httpHandler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if h.telemetry != nil {
			ctx = h.telemetry.SetTraceID(ctx)
		}
		ctx = setWriter(ctx, w)

		for k, v := range h.defaultHeaders {
			w.Header().Set(k, v)
		}

		resp := final(ctx, r)

		if err := Respond(ctx, w, resp); err != nil && h.log != nil {
			h.log.ErrorContext(ctx, "web respond", "err", err)
		}
	}

	pattern := fmt.Sprintf("%s %s", strings.ToUpper(method), path)
	h.mux.HandleFunc(pattern, httpHandler)
}

// HandleRaw registers a plain http.Handler without middleware, for endpoints
// that need full control of the response.
func (h *Handler) HandleRaw(pattern string, handler http.Handler) {
	h.mux.Handle(pattern, handler)
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) buildHandlerChain(handler HandlerFunc, middleware ...Middleware) HandlerFunc {
	all := append(append([]Middleware{}, h.globalMiddleware...), middleware...)

	final := handler
	for i := len(all) - 1; i >= 0; i-- {
		final = all[i](final)
	}

	return final
}
