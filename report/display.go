package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"xamlx/common"

	"github.com/pterm/pterm"
)

// palette used by every display function
var (
	okColor     = pterm.FgLightGreen
	okStyle     = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColor   = pterm.FgYellow
	warnStyle   = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColor  = pterm.FgRed
	errorStyle  = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	accentColor = pterm.FgLightCyan
)

// bannerWidth is the maximum width of a message banner
const bannerWidth = 60

func displayInfoMessage(tag, msg string) {
	okStyle.Print(tag)
	okColor.Println(" " + msg)
}

func displayStdError(tag string, err error) {
	errorStyle.Print(tag)
	errorColor.Println(" " + err.Error())
}

func displayFatalError(msg string) {
	fmt.Println()
	errorStyle.Print("Fatal")
	errorColor.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayCompileMessage displays an error or warning about a document.  The
// kind names the stage that raised it (eg. `Markup`) and may be empty.
func displayCompileMessage(severity, kind, absPath, reprPath string, span *TextSpan, message string) {
	title := strings.TrimSpace(kind + " " + strings.Title(severity))
	displayBanner(severity, title, reprPath)

	location := reprPath
	if span != nil {
		location = fmt.Sprintf("%s:%d:%d", reprPath, span.StartLine+1, span.StartCol+1)
	}

	fmt.Printf("%s: %s\n", location, message)

	if span != nil && absPath != "" {
		displayMarkup(absPath, span)
	}
}

// displayBanner displays the line heading a compile message: its title on the
// left and the document name on the right.
func displayBanner(severity, title, reprPath string) {
	fmt.Print("\n-- ")
	if severity == "error" {
		errorStyle.Print(title)
	} else {
		warnStyle.Print(title)
	}

	width := pterm.GetTerminalWidth() / 2
	if width > bannerWidth {
		width = bannerWidth
	}

	docName := filepath.Base(reprPath)
	fill := width - len(title) - len(docName) - 2
	if fill < 3 {
		fill = 3
	}

	fmt.Print(" " + strings.Repeat("-", fill) + " ")
	accentColor.Println(docName)
}

// displayMarkup prints the lines of a document covered by a span with the
// covered text underlined.  Nothing is printed if the document can no longer
// be read.
func displayMarkup(absPath string, span *TextSpan) {
	lines, err := readLines(absPath, span.StartLine, span.EndLine)
	if err != nil || len(lines) == 0 {
		return
	}

	// strip the indentation common to every line
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent == -1 || n < indent {
			indent = n
		}
	}

	if indent < 0 {
		indent = 0
	}

	gutter := len(fmt.Sprint(span.EndLine + 1))

	for i, line := range lines {
		text := ""
		if len(line) > indent {
			text = line[indent:]
		}

		accentColor.Printf("%*d | ", gutter, span.StartLine+i+1)
		fmt.Println(text)

		start, end := 0, len(text)
		if i == 0 {
			start = span.StartCol - indent
		}

		if i == len(lines)-1 && span.EndCol-indent+1 < end {
			end = span.EndCol - indent + 1
		}

		if start < 0 || start >= end {
			start, end = 0, 1
		}

		fmt.Print(strings.Repeat(" ", gutter) + " | " + strings.Repeat(" ", start))
		errorColor.Println(strings.Repeat("^", end-start))
	}

	fmt.Println()
}

// readLines reads the lines `first` through `last` (zero-indexed, inclusive)
// of a file with tabs expanded.
func readLines(path string, first, last int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string

	sc := bufio.NewScanner(f)
	for n := 0; sc.Scan() && n <= last; n++ {
		if n >= first {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	return lines, sc.Err()
}

// -----------------------------------------------------------------------------

func displayCompileHeader(format string, strict bool) {
	mode := "strict"
	if !strict {
		mode = "lax"
	}

	fmt.Print("xamlx ")
	accentColor.Print(common.XamlxVersion)
	fmt.Print(" | format ")
	accentColor.Print(format)
	fmt.Print(" | mode ")
	accentColor.Println(mode)
}

// phase is the compilation phase currently displayed
var phase struct {
	name    string
	started time.Time
	spinner *pterm.SpinnerPrinter
}

// phaseColumn is the width the phase names are padded to
const phaseColumn = len("Transforming") + 2

func displayBeginPhase(name string) {
	phase.name = name
	phase.started = time.Now()

	phase.spinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(accentColor))
	phase.spinner.SuccessPrinter = phasePrinter(okStyle, "Done")
	phase.spinner.FailPrinter = phasePrinter(errorStyle, "Fail")
	phase.spinner.Start(padPhase(name + "..."))
}

// phasePrinter creates the printer of a finished phase line
func phasePrinter(style *pterm.Style, prefix string) *pterm.PrefixPrinter {
	return &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: style, Text: prefix},
	}
}

func padPhase(text string) string {
	if len(text) >= phaseColumn {
		return text
	}

	return text + strings.Repeat(" ", phaseColumn-len(text))
}

func displayEndPhase(success bool) {
	if phase.spinner == nil {
		return
	}

	if success {
		phase.spinner.Success(padPhase(phase.name), fmt.Sprintf("%.3fs", time.Since(phase.started).Seconds()))
	} else {
		phase.spinner.Fail(padPhase(phase.name))
	}

	phase.spinner = nil
}

func displayCompilationFinished(success bool, outputPath string, errorCount, warningCount int, startTime time.Time) {
	fmt.Println()

	if success {
		okColor.Print("Compiled ")
	} else {
		errorColor.Print("Failed ")
	}

	fmt.Printf("with %s and %s in %.3fs\n",
		countText(errorCount, "error", errorColor),
		countText(warningCount, "warning", warnColor),
		time.Since(startTime).Seconds(),
	)

	if success && outputPath != "" {
		fmt.Print("output: ")
		accentColor.Println(outputPath)
	}
}

// countText formats a count of messages, coloured if it is not zero
func countText(n int, noun string, color pterm.Color) string {
	if n != 1 {
		noun += "s"
	}

	if n == 0 {
		return okColor.Sprintf("no %s", noun)
	}

	return color.Sprintf("%d %s", n, noun)
}

func displayTypeListing(header string, members []string) {
	accentColor.Println(header)

	for _, member := range members {
		fmt.Println("    " + member)
	}

	fmt.Println()
}
