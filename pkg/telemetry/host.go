package telemetry

// Host exposes the signals and queries of the surrounding runtime that the
// client consumes: global uncaught-error and unhandled-rejection signals,
// plus the current URL and user-agent string for context enrichment.
//
// Implementations own the dispatch semantics of the signals; the client only
// subscribes. Hosts without such signals use NoopHost.
type Host interface {
	// URL returns the current page or entrypoint URL, or "" when unknown.
	URL() string

	// UserAgent returns the raw user-agent string, or "" when unknown.
	UserAgent() string

	// OnUncaughtError registers a handler for the host's global
	// uncaught-error signal. Hosts that attach only message text should
	// wrap it in an error before invoking the handler.
	OnUncaughtError(handler func(err error))

	// OnUnhandledRejection registers a handler for the host's global
	// unhandled-rejection signal. The reason is arbitrary and may not be
	// an error.
	OnUnhandledRejection(handler func(reason any))
}

// NoopHost is the Host for runtimes with no browser-like globals. Signal
// registration is skipped silently and context queries return nothing.
type NoopHost struct{}

func (NoopHost) URL() string                           { return "" }
func (NoopHost) UserAgent() string                     { return "" }
func (NoopHost) OnUncaughtError(func(err error))       {}
func (NoopHost) OnUnhandledRejection(func(reason any)) {}

// Classifier derives coarse browser and OS families from a user-agent
// string. The default is a substring heuristic; swap in a real user-agent
// parser here if family accuracy starts to matter.
type Classifier interface {
	Browser(userAgent string) string
	OS(userAgent string) string
}
