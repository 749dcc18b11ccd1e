package spec

// Severity grades a log message exchanged through the Logger capability.
// The scale matches what managers conventionally emit: API-level tracing
// up to critical failures.
type Severity int

const (
	SeverityDebugAPI Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityProgress
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityDebugAPI:
		return "debugApi"
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityProgress:
		return "progress"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
