package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Config configures a Client. APIKey and Endpoint are required for sends to
// succeed, but construction deliberately performs no validation: a
// misconfigured client still constructs, and its sends fail quietly later.
// Telemetry must never be the thing that crashes the application.
//
// Config is immutable after construction except for Tags, which seed the
// client's live tag map (mutable via SetTag and SetTags).
type Config struct {
	// APIKey is the opaque credential sent as the X-API-Key header.
	APIKey string

	// Endpoint is the collector base URL; reports go to
	// {Endpoint}/api/errors.
	Endpoint string

	// Environment labels reports, e.g. "staging". Defaults to
	// "production".
	Environment string

	// Release is an optional version string attached to reports.
	Release string

	// Tags seed the client's tag map. Every report carries the live tag
	// map merged with call-site tags (call-site wins on collision).
	Tags map[string]string

	// BeforeSend, when set, may mutate or veto a report before
	// transmission. Returning nil drops the report silently. It applies
	// to exception and message reports alike.
	BeforeSend func(report *Report) *Report

	// Host supplies the runtime's error signals and context queries.
	// Defaults to NoopHost.
	Host Host

	// Sender delivers reports. Defaults to an HTTP sender built from
	// APIKey and Endpoint.
	Sender Sender

	// Logger is the diagnostic channel for internal failures such as
	// rejected sends. Defaults to a no-op logger.
	Logger *zap.Logger

	// Classifier derives browser/OS families for the context block.
	// Defaults to the built-in substring heuristic.
	Classifier Classifier

	// Registerer receives the client's metrics. Nil leaves them
	// unregistered.
	Registerer prometheus.Registerer
}
