// Package batch decodes and validates many documents concurrently on a
// bounded worker pool.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog"

	iso "github.com/open-payments/iso20022"
	"github.com/open-payments/iso20022/bizmsg"
)

// Input is one document to process. Name identifies it in results and logs
// (usually a file path).
type Input struct {
	Name string
	Data []byte
}

// Outcome classifies a Result.
type Outcome string

const (
	OutcomeValid   Outcome = "valid"
	OutcomeInvalid Outcome = "invalid"
	OutcomeUnknown Outcome = "unknown"
	OutcomeError   Outcome = "error"
)

// ErrTooLarge is reported for inputs above the configured size limit.
var ErrTooLarge = errors.New("batch: document too large")

// Result is the outcome for one Input.
type Result struct {
	Name string
	// Kind is the message definition identifier, empty for Unknown documents
	// and inputs that failed to decode.
	Kind    string
	Wrapper string
	// Err is nil for a valid document, a *iso.ValidationError for an invalid
	// or Unknown one, and any other error when decoding failed.
	Err      error
	Duration time.Duration
}

// Outcome reports how the document fared.
func (r Result) Outcome() Outcome {
	if r.Err == nil {
		return OutcomeValid
	}
	ve, ok := iso.AsValidationError(r.Err)
	switch {
	case !ok:
		return OutcomeError
	case ve.Code == iso.CodeUnknownDocument:
		return OutcomeUnknown
	default:
		return OutcomeInvalid
	}
}

// OK reports whether the document decoded and passed validation.
func (r Result) OK() bool { return r.Err == nil }

// Runner processes inputs against a registry.
type Runner struct {
	reg     *iso.Registry
	pool    pond.Pool
	logger  zerolog.Logger
	metrics *Metrics
	maxSize int64
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option { return func(r *Runner) { r.logger = l } }

// WithMetrics records outcomes in m.
func WithMetrics(m *Metrics) Option { return func(r *Runner) { r.metrics = m } }

// WithMaxSize rejects inputs larger than n bytes. Zero or a negative n
// disables the limit.
func WithMaxSize(n int64) Option { return func(r *Runner) { r.maxSize = n } }

// WithTimeout bounds the time spent on each document, measured from the
// moment a worker picks it up. A document that overruns reports
// context.DeadlineExceeded.
func WithTimeout(d time.Duration) Option { return func(r *Runner) { r.timeout = d } }

// New creates a Runner with a pool of workers goroutines. Call Close when
// done.
func New(reg *iso.Registry, workers int, opts ...Option) *Runner {
	if workers <= 0 {
		workers = 1
	}
	r := &Runner{
		reg:    reg,
		pool:   pond.NewPool(workers),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close stops the pool after running tasks finish.
func (r *Runner) Close() { r.pool.StopAndWait() }

// Run processes every input and returns results in input order. Inputs not
// started before ctx ends report the context error.
func (r *Runner) Run(ctx context.Context, inputs []Input) []Result {
	results := make([]Result, len(inputs))
	group := r.pool.NewGroup()
	for i := range inputs {
		i := i // per-iteration copy; the module targets go 1.21 loop semantics
		group.Submit(func() {
			results[i] = r.process(ctx, inputs[i])
		})
	}
	if err := group.Wait(); err != nil {
		r.logger.Error().Err(err).Msg("batch group failed")
	}

	var valid int
	for _, res := range results {
		if res.OK() {
			valid++
		}
	}
	r.logger.Info().
		Int("documents", len(inputs)).
		Int("valid", valid).
		Int("failed", len(inputs)-valid).
		Msg("batch finished")
	return results
}

func (r *Runner) process(ctx context.Context, in Input) Result {
	res := Result{Name: in.Name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.metrics.start()
	started := time.Now()
	res.Kind, res.Wrapper, res.Err = r.validate(in.Data)
	res.Duration = time.Since(started)
	if overran(ctx) {
		res.Err = fmt.Errorf("%s: %w", in.Name, context.DeadlineExceeded)
	}
	r.metrics.record(res)

	event := r.logger.Debug()
	switch res.Outcome() {
	case OutcomeInvalid, OutcomeUnknown:
		event = r.logger.Warn()
	case OutcomeError:
		event = r.logger.Error()
	}
	event.
		Str("name", in.Name).
		Str("kind", res.Kind).
		Str("outcome", string(res.Outcome())).
		Dur("duration", res.Duration).
		Err(res.Err).
		Msg("document processed")
	return res
}

func (r *Runner) validate(data []byte) (kind, wrapper string, err error) {
	if r.maxSize > 0 && int64(len(data)) > r.maxSize {
		return "", "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		doc, err := r.reg.DecodeJSON(trimmed)
		if err != nil {
			return "", "", err
		}
		return doc.MessageID(), "", doc.Validate()
	}

	env, err := bizmsg.Parse(r.reg, data)
	if errors.Is(err, bizmsg.ErrNoDocument) {
		// A standalone root such as AppHdr.
		doc, err := r.reg.ParseXML(data)
		if err != nil {
			return "", "", err
		}
		return doc.MessageID(), "", doc.Validate()
	}
	if err != nil {
		return "", "", err
	}
	if env.Header == nil && env.Wrapper == "" {
		// A bare Document reports paths relative to its message, as JSON does.
		return env.Document.MessageID(), "", env.Document.Validate()
	}
	return env.Document.MessageID(), env.Wrapper, env.Validate()
}

// overran reports whether ctx has passed its deadline, whether or not its
// timer has fired yet.
func overran(ctx context.Context) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	dl, ok := ctx.Deadline()
	return ok && !time.Now().Before(dl)
}
