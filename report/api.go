package report

import (
	"errors"
	"fmt"
	"os"
)

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportCompileError reports an error produced while compiling a document. The
// absPath is the absolute path to the source document (used to display the
// offending markup) and the reprPath is the path displayed to the user. Errors
// carrying a span have the offending markup displayed.
func ReportCompileError(absPath, reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayCompileMessage("error", kindOfError(err), absPath, reprPath, SpanOfError(err), messageOfError(err))
	}
}

// ReportCompileWarning reports a non-fatal compilation problem: eg. a semantic
// error suppressed by a lax (non-strict) transformation.
func ReportCompileWarning(absPath, reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		displayCompileMessage("warning", kindOfError(err), absPath, reprPath, SpanOfError(err), messageOfError(err))
	}
}

// ReportStdError reports a non-fatal, standard Go error: eg. failing to open a
// file.
func ReportStdError(tag string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayStdError(tag, err)
	}
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately: missing configuration, an incompatible type
// system, etc.  It exits the program.
func ReportFatal(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayFatalError(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportInfo displays an informational message to the user.
func ReportInfo(tag, msg string) {
	if rep.logLevel > LogLevelSilent {
		displayInfoMessage(tag, msg)
	}
}

// -----------------------------------------------------------------------------

// ShouldProceed indicates whether or not there have been any errors that should
// cause compilation to stop at the current phase.
func ShouldProceed() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount == 0
}

// SpanOfError extracts the text span from one of the compiler's error types.
// It returns nil if the error has no position information.
func SpanOfError(err error) *TextSpan {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Span
	}

	var le *LoadError
	if errors.As(err, &le) {
		return le.Span
	}

	return nil
}

// kindOfError names the stage that raised one of the compiler's errors or
// returns an empty string for other errors.
func kindOfError(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return "Markup"
	}

	var le *LoadError
	if errors.As(err, &le) {
		return "Emit"
	}

	return ""
}

// messageOfError extracts the message without its position prefix.
func messageOfError(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Message
	}

	var le *LoadError
	if errors.As(err, &le) {
		return le.Message
	}

	return err.Error()
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is to verbose.  These provide additional information about the
// compilation process to the user.

// ReportCompileHeader reports the pre-compilation header: information about the
// compiler's current configuration.
func ReportCompileHeader(format string, strict bool) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(format, strict)
	}
}

// ReportBeginPhase reports the beginning of a compilation phase (eg. emission).
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current compilation phase.
func ReportEndPhase() {
	if rep.logLevel == LogLevelVerbose {
		displayEndPhase(ShouldProceed())
	}
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished(outputPath string) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompilationFinished(rep.errorCount == 0, outputPath, rep.errorCount, rep.warningCount, rep.startTime)
	}
}

// ReportTypeListing displays the description of a type: its header line and
// the lines describing its members.  It is used by the `types` command.
func ReportTypeListing(header string, members []string) {
	if rep.logLevel > LogLevelSilent {
		displayTypeListing(header, members)
	}
}
