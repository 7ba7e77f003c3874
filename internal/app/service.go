// Package app runs the generator pipeline: fetch, decode, render, emit.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/okian/emojisnap/internal/adapters/decoder"
	"github.com/okian/emojisnap/internal/adapters/http/fetcher"
	"github.com/okian/emojisnap/internal/config"
	"github.com/okian/emojisnap/internal/emit"
	"github.com/okian/emojisnap/internal/render"
	"github.com/okian/emojisnap/pkg/logger"
	"github.com/okian/emojisnap/pkg/metrics"
)

// Failure kinds reported by Classify.
const (
	KindTransport = "transport_failure"
	KindStatus    = "unexpected_status"
	KindMalformed = "malformed_response"
	KindRender    = "render_failure"
	KindEmit      = "emit_failure"
	KindWrite     = "write_failure"
	KindCanceled  = "canceled"
	KindUnknown   = "unknown"
)

// errWrite marks failures of the final write to the caller's writer.
var errWrite = errors.New("write output")

// Service executes one generation per Run call.
type Service struct {
	source   string
	fetcher  fetcher.Fetcher
	renderer *render.Renderer
	emitter  *emit.Emitter
	now      func() time.Time
	logger   logger.Logger
	metrics  *metrics.Manager
}

// Result summarises a successful run.
type Result struct {
	RunID       string
	Records     int
	Bytes       int
	RetrievedAt time.Time
}

// New constructs a Service. Unset parts default to the historical generator:
// the legacy rankings URL, an HTTP fetcher with a 30s timeout, lowercase keys
// and a `var emojiRankings = []emojiRanking{...}` file in package main.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		source:   config.EmojitrackerRankingsURL,
		renderer: render.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Nop()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewManager()
	}
	if s.fetcher == nil {
		s.fetcher = fetcher.New(fetcher.WithLogger(s.logger.Named("fetcher")))
	}
	if s.emitter == nil {
		e, err := emit.New()
		if err != nil {
			return nil, err
		}
		s.emitter = e
	}
	return s, nil
}

// Run fetches the rankings and writes the generated file to w. w receives
// either the complete file in a single write or nothing at all.
func (s *Service) Run(ctx context.Context, w io.Writer) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.NewString()}
	log := s.logger.With(logger.String("run_id", res.RunID))

	err := s.run(ctx, w, log, &res)
	kind := metrics.ResultSuccess
	if err != nil {
		kind = Classify(err)
		log.Debug(ctx, "generation failed", logger.String("kind", kind), logger.Error(err))
	}
	s.metrics.RecordRun(kind, time.Since(start))
	return res, err
}

func (s *Service) run(ctx context.Context, w io.Writer, log logger.Logger, res *Result) error {
	// Step 1: fetch
	log.Info(ctx, "fetching rankings", logger.String("url", s.source))
	fetchStart := time.Now()
	body, err := s.fetcher.Fetch(ctx, s.source)
	if err != nil {
		return fmt.Errorf("retrieve remote rankings from %s: %w", s.source, err)
	}
	res.RetrievedAt = s.now()
	s.metrics.RecordFetch(time.Since(fetchStart), len(body))

	// Step 2: decode
	rankings, err := decoder.Decode(body)
	if err != nil {
		return err
	}
	log.Debug(ctx, "decoded rankings", logger.Int("records", len(rankings)))

	// Step 3: render
	fragments, err := s.renderer.Fragments(rankings)
	if err != nil {
		return err
	}

	// Step 4: emit
	src, err := s.emitter.Render(emit.File{
		Source:    s.source,
		Time:      res.RetrievedAt,
		Fragments: fragments,
	})
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	res.Records = len(rankings)
	res.Bytes = len(src)
	s.metrics.RecordOutput(res.Records, res.Bytes, res.RetrievedAt)
	log.Info(ctx, "generated rankings file",
		logger.Int("records", res.Records),
		logger.Int("bytes", res.Bytes),
		logger.String("retrieved_at", res.RetrievedAt.Format(emit.TimeLayout)),
	)
	return nil
}

// Classify maps a Run error to its failure kind.
func Classify(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, fetcher.ErrUnexpectedStatus):
		return KindStatus
	case errors.Is(err, fetcher.ErrTransport):
		return KindTransport
	case errors.Is(err, decoder.ErrMalformedResponse):
		return KindMalformed
	case errors.Is(err, render.ErrInvalidScore):
		return KindRender
	case errors.Is(err, emit.ErrInvalidSource), errors.Is(err, emit.ErrInvalidIdentifier):
		return KindEmit
	case errors.Is(err, errWrite):
		return KindWrite
	default:
		return KindUnknown
	}
}
