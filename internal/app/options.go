package app

import (
	"time"

	"github.com/okian/emojisnap/internal/adapters/http/fetcher"
	"github.com/okian/emojisnap/internal/emit"
	"github.com/okian/emojisnap/internal/render"
	"github.com/okian/emojisnap/pkg/logger"
	"github.com/okian/emojisnap/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the rankings URL handed to the fetcher and named in the
// provenance comment.
func WithSource(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.source = url
		}
	}
}

// WithFetcher replaces the HTTP fetcher, e.g. with a fetcher.Func in tests.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithRenderer sets the fragment renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithEmitter sets the file emitter.
func WithEmitter(e *emit.Emitter) Option {
	return func(s *Service) {
		if e != nil {
			s.emitter = e
		}
	}
}

// WithClock sets the time source used for the provenance timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager runs are recorded on.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}
