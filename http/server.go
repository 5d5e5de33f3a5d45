package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mkaravias/eortologio"
)

// Server exposes the nameday services over HTTP.
type Server struct {
	months  eortologio.MonthService
	names   eortologio.NameService
	logger  *slog.Logger
	now     func() time.Time
	handler http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithClock sets the clock used to compute today and tomorrow.
// Defaults to time.Now.
func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates a Server routing the nameday API.
func NewServer(months eortologio.MonthService, names eortologio.NameService, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		months: months,
		names:  names,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /today", s.handleToday)
	mux.HandleFunc("GET /tomorrow", s.handleTomorrow)
	mux.HandleFunc("GET /month", s.handleCurrentMonth)
	mux.HandleFunc("GET /month/{num}", s.handleMonth)
	mux.HandleFunc("GET /search/{name}", s.handleSearch)
	s.handler = s.logRequests(mux)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, messageResponse{Message: "Greek Nameday API is running."})
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	s.handleDay(w, r, s.now())
}

func (s *Server) handleTomorrow(w http.ResponseWriter, r *http.Request) {
	s.handleDay(w, r, s.now().AddDate(0, 0, 1))
}

// handleDay serves the single entry matching date out of its month's
// cached data.
func (s *Server) handleDay(w http.ResponseWriter, r *http.Request, date time.Time) {
	entries, err := s.months.MonthEntries(r.Context(), int(date.Month()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	for _, entry := range entries {
		if entry.Day == date.Day() {
			s.writeJSON(w, r, http.StatusOK, entry)
			return
		}
	}

	s.writeError(w, r, eortologio.Errorf(eortologio.ENOTFOUND,
		"no nameday information found for %s", date.Format("2006-01-02")))
}

func (s *Server) handleCurrentMonth(w http.ResponseWriter, r *http.Request) {
	s.serveMonth(w, r, int(s.now().Month()))
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.PathValue("num"))
	if err != nil || month < 1 || month > 12 {
		s.writeError(w, r, eortologio.Errorf(eortologio.EINVALID,
			"invalid month number, must be between 1 and 12"))
		return
	}
	s.serveMonth(w, r, month)
}

func (s *Server) serveMonth(w http.ResponseWriter, r *http.Request, month int) {
	entries, err := s.months.MonthEntries(r.Context(), month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []eortologio.NamedayEntry{}
	}
	s.writeJSON(w, r, http.StatusOK, entries)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		s.writeError(w, r, eortologio.Errorf(eortologio.EINVALID, "name parameter cannot be empty"))
		return
	}

	dates, err := s.names.CelebrationDates(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if dates == nil {
		dates = []eortologio.CelebrationDate{}
	}
	s.writeJSON(w, r, http.StatusOK, dates)
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response. Successful responses carry a
// content-addressed ETag so clients polling the same cached data get
// 304s.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encoding response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if status == http.StatusOK {
		etag := fmt.Sprintf("%q", strconv.FormatUint(xxhash.Sum64(body), 16))
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps an application error to its HTTP status.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := eortologio.ErrorCode(err)
	status := statusFromCode(code)

	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "code", code, "err", err)
	} else {
		s.logger.Warn("request rejected", "path", r.URL.Path, "code", code, "err", err)
	}

	s.writeJSON(w, r, status, errorResponse{Error: eortologio.ErrorMessage(err)})
}

// statusFromCode maps application error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case eortologio.EINVALID:
		return http.StatusBadRequest
	case eortologio.ENOTFOUND:
		return http.StatusNotFound
	case eortologio.EPARSE:
		return http.StatusInternalServerError
	case eortologio.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	case eortologio.ETIMEOUT:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests tags every request with an ID, echoes it in the
// X-Request-Id header, and logs method, path, status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
			"request_id", id,
		)
	})
}
