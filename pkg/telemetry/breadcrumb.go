package telemetry

// MaxBreadcrumbs caps the trail. When a new breadcrumb would push the trail
// past the cap, the oldest entries are evicted first.
const MaxBreadcrumbs = 100

// Breadcrumb is a point-in-time annotation of a prior user or application
// action, retained to give later reports context.
//
// Timestamp is assigned by the client at insertion time; a caller-supplied
// value is overwritten.
type Breadcrumb struct {
	Timestamp int64          `json:"timestamp"`
	Message   string         `json:"message"`
	Category  string         `json:"category"`
	Level     Level          `json:"level"`
	Data      map[string]any `json:"data,omitempty"`
}
