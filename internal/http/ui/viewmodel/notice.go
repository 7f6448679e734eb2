package viewmodel

// Severity grades a notice.
type Severity string

// Notice severities.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is the single user-facing feedback contract: rendered inline as a
// banner and, for htmx requests, also raised as a toast.
type Notice struct {
	Message     string
	Severity    Severity
	Dismissible bool
}

// NewNotice builds a dismissible notice.
func NewNotice(sev Severity, msg string) *Notice {
	return &Notice{Message: msg, Severity: sev, Dismissible: true}
}
