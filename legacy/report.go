package legacy

// Severity is the severity of a reported conversion problem.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lower case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Reporter receives problems found during a conversion. Reporting never
// aborts the conversion.
type Reporter interface {
	Report(sev Severity, msg string)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(sev Severity, msg string)

// Report calls f(sev, msg).
func (f ReporterFunc) Report(sev Severity, msg string) { f(sev, msg) }

// Discard is a Reporter that drops every message.
var Discard Reporter = ReporterFunc(func(Severity, string) {})

// UnknownNameError is reported for a palette entry whose legacy name has no
// table entry.
type UnknownNameError struct {
	Name string
}

// Error returns the message shown to the user.
func (e UnknownNameError) Error() string {
	return "Failed to convert block with old name '" + e.Name + "'"
}
