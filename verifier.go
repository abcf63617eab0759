package emailverify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/optimode/emailverify/check"
	"github.com/optimode/emailverify/internal/doh"
	"github.com/optimode/emailverify/internal/failopen"
	"github.com/optimode/emailverify/internal/fetch"
	"github.com/optimode/emailverify/internal/parse"
	"github.com/optimode/emailverify/internal/reputation"
	"github.com/optimode/emailverify/metrics"
	"github.com/optimode/emailverify/types"
)

const tracerName = "github.com/optimode/emailverify"

// compileGrace extends the aggregator's limit past the checks' so that
// their own fail-open results are collected before it gives up.
const compileGrace = 100 * time.Millisecond

// checker is the internal interface for the concurrent checks.
// Every check/ package type implements this.
type checker interface {
	Level() types.CheckLevel
	Check(ctx context.Context, cand parse.Candidate) (types.CheckResult, error)
}

// Verifier is the main fluent builder struct.
// Instantiate with the New() function. A Verifier holds no per-address
// state and is safe for concurrent use once configured.
type Verifier struct {
	opts     Options
	err      error // configuration error, returned on Inspect()
	checkers []checker
	doer     fetch.Doer
	logger   *zerolog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// New creates a Verifier. Optionally overrides the default Options; unset
// fields keep their defaults.
func New(opts ...Options) *Verifier {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0].withDefaults()
	}
	v := &Verifier{
		opts:   o,
		doer:   &http.Client{},
		tracer: otel.Tracer(tracerName),
	}
	v.build()
	return v
}

// WithHTTPClient sets the client used for DoH and reputation requests.
// The client should not carry a cookie jar; requests are meant to go out
// without credentials.
func (v *Verifier) WithHTTPClient(c *http.Client) *Verifier {
	if c != nil {
		v.doer = c
		v.build()
	}
	return v
}

// WithLogger sets the logger. By default the global zerolog logger is used.
func (v *Verifier) WithLogger(l zerolog.Logger) *Verifier {
	v.logger = &l
	return v
}

// WithMetrics enables Prometheus metrics.
func (v *Verifier) WithMetrics(m *metrics.Metrics) *Verifier {
	v.metrics = m
	return v
}

// WithTracerProvider sets the OpenTelemetry tracer provider. By default the
// global provider is used.
func (v *Verifier) WithTracerProvider(tp trace.TracerProvider) *Verifier {
	if tp != nil {
		v.tracer = tp.Tracer(tracerName)
	}
	return v
}

// build wires the checks from the current options and HTTP client.
func (v *Verifier) build() {
	v.err = nil
	if v.opts.CheckTimeout < 0 {
		v.err = fmt.Errorf("%w: negative check timeout %v", ErrInvalidOptions, v.opts.CheckTimeout)
		return
	}
	client := fetch.New(v.doer, v.opts.UserAgent)
	resolver, err := doh.New(v.opts.DoHEndpoint, client)
	if err != nil {
		v.err = fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		return
	}
	source, err := reputation.New(v.opts.ReputationEndpoint, client)
	if err != nil {
		v.err = fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		return
	}
	v.checkers = []checker{
		check.NewSyntaxChecker(),
		check.NewMXChecker(resolver),
		check.NewBurnerChecker(source),
	}
}

func (v *Verifier) log() zerolog.Logger {
	if v.logger != nil {
		return *v.logger
	}
	return log.Logger.With().Str("module", "emailverify").Logger()
}

// Verify reports whether address is acceptable. It never fails: malformed
// input yields false, and infrastructure errors yield true. Cancelling ctx
// counts as an infrastructure error, so a cancelled verification of a
// structurally sound address reports true ("assume valid"), not unknown.
func (v *Verifier) Verify(ctx context.Context, address any) bool {
	res, err := v.Inspect(ctx, address)
	if err != nil {
		logger := v.log()
		logger.Error().Err(err).Str("verification_id", res.ID).
			Msg("Verifier is misconfigured; returning true by default")
		return true
	}
	return res.Valid
}

// Inspect verifies address and reports every check. The error is only
// ever a configuration error (ErrInvalidOptions), and is only returned for
// addresses that passed the structural checks.
//
// Checks cut short by ctx cancellation pass with FailedOpen set, exactly as
// checks that time out do.
func (v *Verifier) Inspect(ctx context.Context, address any) (Result, error) {
	res := Result{ID: uuid.NewString()}
	if s, ok := address.(string); ok {
		res.Address = s
	}
	logger := v.log().With().Str("verification_id", res.ID).Interface("address", address).Logger()

	ctx, span := v.tracer.Start(ctx, "emailverify.Verify",
		trace.WithAttributes(attribute.String("emailverify.id", res.ID)))
	defer span.End()

	cand, err := parse.Guard(address)
	if err != nil {
		logger.Debug().Err(err).Msg("Address failed structural checks")
		res.Reason = err.Error()
		res.Err = err
		res.Checks = []CheckResult{{Level: LevelStructure, Passed: false, Details: err.Error()}}
		span.SetAttributes(attribute.String("emailverify.result", "malformed"))
		v.metrics.IncrementVerdict("malformed")
		return res, nil
	}
	res.Address = cand.Raw

	if v.err != nil {
		span.SetStatus(codes.Error, v.err.Error())
		return res, v.err
	}

	res.Checks, res.Valid = v.compile(ctx, logger, cand)

	verdict := "invalid"
	if res.Valid {
		verdict = "valid"
	}
	span.SetAttributes(attribute.String("emailverify.result", verdict))
	v.metrics.IncrementVerdict(verdict)
	logger.Debug().Bool("result", res.Valid).Msg("Results from validating email address")
	return res, nil
}

type compiled struct {
	checks []CheckResult
	valid  bool
}

// compile fans the checks out, waits for all of them and passes the address
// unless one definitively failed. The aggregation itself runs fail-open.
func (v *Verifier) compile(ctx context.Context, logger zerolog.Logger, cand parse.Candidate) ([]CheckResult, bool) {
	ctx, span := v.tracer.Start(ctx, "emailverify.check."+LevelCompile)
	defer span.End()

	start := time.Now()
	out, err := failopen.Run(ctx, v.opts.CheckTimeout+compileGrace, compiled{valid: true},
		func(ctx context.Context) (compiled, error) {
			checks := make([]CheckResult, len(v.checkers))
			var g errgroup.Group
			for i, c := range v.checkers {
				g.Go(func() error {
					checks[i] = v.runCheck(ctx, logger, cand, c)
					return nil
				})
			}
			_ = g.Wait()
			return compiled{checks: checks, valid: countFailed(checks) == 0}, nil
		})

	res := CheckResult{Level: LevelCompile, Passed: out.valid, Duration: time.Since(start)}
	if err == nil {
		if failed := countFailed(out.checks); failed > 0 {
			res.Details = fmt.Sprintf("%d check(s) failed", failed)
		}
	}
	v.record(logger, span, &res, err)
	return append(out.checks, res), out.valid
}

func countFailed(checks []CheckResult) int {
	n := 0
	for _, c := range checks {
		if !c.Passed {
			n++
		}
	}
	return n
}

// runCheck runs a single check under the time limit, substituting a pass
// when it errors, panics or times out.
func (v *Verifier) runCheck(ctx context.Context, logger zerolog.Logger, cand parse.Candidate, c checker) CheckResult {
	level := c.Level()
	ctx, span := v.tracer.Start(ctx, "emailverify.check."+level)
	defer span.End()

	start := time.Now()
	res, err := failopen.Run(ctx, v.opts.CheckTimeout, CheckResult{Passed: true}, func(ctx context.Context) (CheckResult, error) {
		return c.Check(ctx, cand)
	})
	res.Level = level
	res.Duration = time.Since(start)
	v.record(logger, span, &res, err)
	return res
}

// record applies the fail-open substitution to res and reports it to the
// log, the span and the metrics.
func (v *Verifier) record(logger zerolog.Logger, span trace.Span, res *CheckResult, err error) {
	desc := types.Description(res.Level)
	outcome := metrics.OutcomePass

	if err != nil {
		res.Passed = true
		res.FailedOpen = true
		res.Error = err.Error()
		res.Details = "assumed valid after error"
		outcome = metrics.OutcomeFailOpen

		logger.Warn().Err(err).Str("check", res.Level).
			Msgf("Error while %s; returning true by default", desc)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		if !res.Passed {
			outcome = metrics.OutcomeFail
		}
		logger.Debug().Str("check", res.Level).Bool("result", res.Passed).Str("details", res.Details).
			Msgf("Successfully completed %s", desc)
	}

	span.SetAttributes(
		attribute.String("emailverify.check", res.Level),
		attribute.String("emailverify.outcome", outcome),
	)
	v.metrics.ObserveCheck(res.Level, outcome, res.Duration)
}

// ConcurrencyOptions configures concurrent processing for VerifyMany.
type ConcurrencyOptions struct {
	// Workers is the number of concurrent verifications. Default: 5
	Workers int
}

// VerifyMany verifies multiple addresses concurrently.
// The result order matches the input slice order.
func (v *Verifier) VerifyMany(ctx context.Context, addresses []string, opts ...ConcurrencyOptions) ([]Result, error) {
	if v.err != nil {
		return nil, v.err
	}

	workers := 5
	if len(opts) > 0 && opts[0].Workers > 0 {
		workers = opts[0].Workers
	}

	results := make([]Result, len(addresses))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, a := range addresses {
		g.Go(func() error {
			// Configuration was checked above, so Inspect cannot fail here.
			results[i], _ = v.Inspect(ctx, a)
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}
