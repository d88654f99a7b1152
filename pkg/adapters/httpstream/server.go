// Package httpstream serves typewriter playback over HTTP: a client posts
// a YAML script and receives every visual mutation as a server-sent event,
// paced in real time by the engine.
package httpstream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/typeline"
	"github.com/aretw0/typeline/internal/logging"
	"github.com/aretw0/typeline/internal/script"
	"github.com/aretw0/typeline/pkg/adapters/memory"
	"github.com/aretw0/typeline/pkg/adapters/timer"
	"github.com/aretw0/typeline/pkg/observability"
)

// eventBuffer bounds how far playback may run ahead of a slow client
// before mutations are dropped.
const eventBuffer = 256

// Server streams script playback as server-sent events.
type Server struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
	interval time.Duration
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithFrameInterval overrides the playback frame interval (default 16ms).
func WithFrameInterval(d time.Duration) Option {
	return func(s *Server) {
		s.interval = d
	}
}

// NewHandler creates the HTTP handler: POST /play streams a script,
// GET /healthz reports liveness, GET /metrics exposes playback counters.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
		interval: timer.DefaultInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = observability.NewMetrics(s.registry)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Post("/play", s.play)
	return r
}

// event is the wire shape of one streamed mutation.
type event struct {
	Op      string `json:"op"`
	Tag     string `json:"tag,omitempty"`
	Text    string `json:"text,omitempty"`
	Visible string `json:"visible"`
}

func (s *Server) play(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sc, err := script.Load(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid script: %v", err), http.StatusBadRequest)
		return
	}

	events := make(chan event, eventBuffer)
	surf := memory.New(memory.WithObserver(func(m memory.Mutation) {
		ev := event{Op: string(m.Op), Tag: m.Tag, Text: m.Text}
		select {
		case events <- ev:
		default:
			// Client too slow: drop rather than stall the tick.
			s.logger.Warn("dropping playback event", "op", ev.Op)
		}
	}))

	engOpts := append(sc.Options(),
		typeline.WithLogger(s.logger),
		typeline.WithHooks(s.metrics.Hooks()),
		typeline.WithFrameSource(timer.New(s.interval)),
	)
	eng, err := typeline.New(surf, engOpts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sc.Apply(eng); err != nil {
		http.Error(w, fmt.Sprintf("invalid script: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	s.logger.Info("streaming script", "title", sc.Title, "loop", sc.Loop)
	eng.Start()
	defer eng.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-eng.Done():
			// Drain whatever the final ticks produced, then say goodbye.
			for {
				select {
				case ev := <-events:
					writeEvent(w, flusher, surf, ev)
				default:
					fmt.Fprint(w, "event: done\ndata: {}\n\n")
					flusher.Flush()
					return
				}
			}
		case ev := <-events:
			writeEvent(w, flusher, surf, ev)
		}
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, surf *memory.Surface, ev event) {
	ev.Visible = surf.Text()
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	flusher.Flush()
}
