package telemetry

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/errtrail/internal/stacktrace"
	"github.com/fyrsmithlabs/errtrail/internal/useragent"
)

// Client captures exceptions, messages, and breadcrumbs and delivers them
// to the collection endpoint. Create one per application session with New,
// call Init once to subscribe to the host's global error signals, and
// discard it with the process; there is no teardown.
//
// All methods are safe for concurrent use.
type Client struct {
	cfg        Config
	logger     *zap.Logger
	sender     Sender
	host       Host
	classifier Classifier
	metrics    *metrics

	inflight sync.WaitGroup

	mu          sync.Mutex
	tags        map[string]string
	user        *User
	breadcrumbs []Breadcrumb
	initialized bool
}

// CaptureOptions carries call-site additions to a single capture.
type CaptureOptions struct {
	// Tags are merged over the client's live tags for this report only;
	// call-site values win on key collision.
	Tags map[string]string
}

// stackTracer lets error types carry their own stack trace text. Errors
// without one get a stack synthesized at capture time.
type stackTracer interface {
	StackTrace() string
}

// New creates a client from cfg, filling defaults for anything unset.
// It never fails: missing credentials surface later as quiet send failures,
// not as construction errors.
func New(cfg Config) *Client {
	if cfg.Environment == "" {
		cfg.Environment = "production"
	}

	tags := make(map[string]string, len(cfg.Tags))
	for k, v := range cfg.Tags {
		tags[k] = v
	}

	c := &Client{
		cfg:        cfg,
		logger:     cfg.Logger,
		sender:     cfg.Sender,
		host:       cfg.Host,
		classifier: cfg.Classifier,
		metrics:    newMetrics(cfg.Registerer),
		tags:       tags,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.host == nil {
		c.host = NoopHost{}
	}
	if c.classifier == nil {
		c.classifier = useragent.Detector{}
	}
	if c.sender == nil {
		c.sender = newHTTPSender(cfg.Endpoint, cfg.APIKey)
	}
	return c
}

// Init subscribes the client to the host's uncaught-error and
// unhandled-rejection signals, routing both into exception capture. Init is
// idempotent: calls after the first are no-ops. A host without such signals
// (NoopHost) makes registration a silent no-op, not an error.
func (c *Client) Init() {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.mu.Unlock()

	c.host.OnUncaughtError(func(err error) {
		c.CaptureException(err, nil)
	})
	c.host.OnUnhandledRejection(func(reason any) {
		c.CaptureException(reason, nil)
	})
}

// CaptureException builds an error-level report from v and dispatches it.
// v is usually an error, but rejection reasons are arbitrary: strings become
// generic errors with a freshly synthesized stack, and any other value is
// coerced through its string form. The call returns immediately; delivery
// happens out of band.
func (c *Client) CaptureException(v any, opts *CaptureOptions) {
	err := coerceError(v)

	report := c.newReport(err.Error(), LevelError, opts)
	report.Stack = errorStack(err)
	if loc, ok := stacktrace.Extract(report.Stack); ok {
		report.File = loc.File
		report.Line = loc.Line
		report.Column = loc.Column
	}

	c.dispatch(report)
}

// CaptureMessage builds a report for a log-like message at the given level
// (LevelInfo when empty) and dispatches it. Message reports carry no stack
// or source location.
func (c *Client) CaptureMessage(message string, level Level) {
	if !level.Valid() {
		level = LevelInfo
	}
	c.dispatch(c.newReport(message, level, nil))
}

// AddBreadcrumb appends an annotation to the trail, stamping it with the
// current time. When the trail exceeds MaxBreadcrumbs the oldest entries
// are evicted.
func (c *Client) AddBreadcrumb(crumb Breadcrumb) {
	crumb.Timestamp = time.Now().UnixMilli()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.breadcrumbs = append(c.breadcrumbs, crumb)
	if excess := len(c.breadcrumbs) - MaxBreadcrumbs; excess > 0 {
		c.breadcrumbs = append(c.breadcrumbs[:0:0], c.breadcrumbs[excess:]...)
		c.metrics.breadcrumbsEvicted.Add(float64(excess))
	}
}

// SetUser records the identity attached to subsequent reports. Already-sent
// reports are unaffected.
func (c *Client) SetUser(user User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = &user
}

// SetTag upserts a single tag on the live tag map.
func (c *Client) SetTag(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[key] = value
}

// SetTags merges the given mapping over the live tag map; new keys win on
// collision.
func (c *Client) SetTags(tags map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range tags {
		c.tags[k] = v
	}
}

// newReport snapshots the client's state into a fresh report. Breadcrumbs,
// tags, and user are copied so later mutations cannot reach into a report
// already built.
func (c *Client) newReport(message string, level Level, opts *CaptureOptions) *Report {
	c.mu.Lock()
	tags := make(map[string]string, len(c.tags))
	for k, v := range c.tags {
		tags[k] = v
	}
	crumbs := make([]Breadcrumb, len(c.breadcrumbs))
	copy(crumbs, c.breadcrumbs)
	var user *User
	if c.user != nil {
		u := *c.user
		user = &u
	}
	c.mu.Unlock()

	if opts != nil {
		for k, v := range opts.Tags {
			tags[k] = v
		}
	}

	return &Report{
		Message:     message,
		Level:       level,
		Timestamp:   time.Now().UnixMilli(),
		Environment: c.cfg.Environment,
		Release:     c.cfg.Release,
		Tags:        tags,
		User:        user,
		Context:     c.hostContext(),
		Breadcrumbs: crumbs,
	}
}

// hostContext queries the host for enrichment metadata. With NoopHost every
// field comes back empty, which serializes as an empty context block.
func (c *Client) hostContext() Context {
	ua := c.host.UserAgent()
	return Context{
		Browser:   c.classifier.Browser(ua),
		OS:        c.classifier.OS(ua),
		URL:       c.host.URL(),
		UserAgent: ua,
	}
}

// dispatch runs the BeforeSend transform and hands the surviving report to
// the sender on its own goroutine. There is no per-send handle: the capture
// caller cannot await, cancel, or observe the outcome, and failures are
// logged to the diagnostic channel only. Flush is the sole way to wait, and
// it waits for everything.
func (c *Client) dispatch(report *Report) {
	if c.cfg.BeforeSend != nil {
		report = c.cfg.BeforeSend(report)
		if report == nil {
			c.metrics.reportsDropped.Inc()
			return
		}
	}

	c.metrics.reportsSent.Inc()
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if err := c.sender.Send(context.Background(), report); err != nil {
			c.metrics.sendFailures.Inc()
			c.logger.Warn("report delivery failed",
				zap.String("message", report.Message),
				zap.String("level", string(report.Level)),
				zap.Error(err))
		}
	}()
}

// Flush waits up to timeout for in-flight sends to finish and reports
// whether they all did. Captures never await their sends, but a process
// about to exit (a CLI, a batch job) would otherwise race its own telemetry;
// browsers keep the page alive, Go programs must wait themselves.
func (c *Client) Flush(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// coerceError turns an arbitrary captured value into an error. Coercion
// always succeeds.
func coerceError(v any) error {
	switch err := v.(type) {
	case error:
		return err
	case string:
		return errors.New(err)
	case nil:
		return errors.New("unknown error")
	default:
		return fmt.Errorf("%v", err)
	}
}

// errorStack returns the error's own stack trace text when it carries one,
// falling back to a stack synthesized at the capture site.
func errorStack(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return string(debug.Stack())
}
