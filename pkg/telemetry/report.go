package telemetry

// User identifies the person on whose behalf the application was running
// when a report was captured.
type User struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// Context is best-effort environmental metadata attached to every report.
// All fields are empty when the host exposes no browser-like globals.
type Context struct {
	Browser   string `json:"browser,omitempty"`
	OS        string `json:"os,omitempty"`
	URL       string `json:"url,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// Report is the payload describing one captured exception or message.
//
// A report is a snapshot taken at capture time: tags, user, context, and
// breadcrumbs reflect the client's state at that instant, and later
// mutations never retroactively affect a report already built. Timestamp is
// epoch milliseconds at capture time, not send time.
//
// File, Line, and Column are populated only for exception reports, and only
// when the stack trace yields a usable location; their absence is missing
// metadata, not an error.
type Report struct {
	Message     string            `json:"message"`
	Stack       string            `json:"stack,omitempty"`
	File        string            `json:"file,omitempty"`
	Line        int               `json:"line,omitempty"`
	Column      int               `json:"column,omitempty"`
	Level       Level             `json:"level"`
	Timestamp   int64             `json:"timestamp"`
	Environment string            `json:"environment"`
	Release     string            `json:"release,omitempty"`
	Tags        map[string]string `json:"tags"`
	User        *User             `json:"user,omitempty"`
	Context     Context           `json:"context"`
	Breadcrumbs []Breadcrumb      `json:"breadcrumbs"`
}
