package report

import (
	"sync"
	"time"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during compilation.  The reporter respects the set log
// level and is synchronized: its methods can be safely called from multiple
// goroutines compiling different documents.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors and warnings reported so far.
	errorCount, warningCount int

	// startTime is used to display the total compilation time.
	startTime time.Time
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// rep is the global reporter instance.
var rep = newReporter(LogLevelVerbose)

// newReporter creates a new reporter at the given log level.
func newReporter(logLevel int) *Reporter {
	return &Reporter{
		m:         &sync.Mutex{},
		logLevel:  logLevel,
		startTime: time.Now(),
	}
}

// InitReporter (re)initializes the global reporter to the given log level.
// This should be called once, before compilation begins.
func InitReporter(logLevel int) {
	rep = newReporter(logLevel)
}

// LogLevelFromName converts a log level name as it is entered on the command
// line or in the configuration file into a log level.
func LogLevelFromName(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	// everything else (including invalid log levels) should default to verbose
	default:
		return LogLevelVerbose
	}
}

// IsLogLevelName returns whether a name is one of the accepted log level names
func IsLogLevelName(name string) bool {
	switch name {
	case "silent", "error", "warn", "warning", "verbose":
		return true
	}

	return false
}
