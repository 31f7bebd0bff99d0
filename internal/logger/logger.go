package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	redirColor   = color.New(color.FgCyan)
	methodColor  = color.New(color.FgMagenta)
)

func stamp() string {
	return timeColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info logs a general message
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), infoColor.Sprintf(format, args...))
}

// Success logs a successful step
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), successColor.Sprintf("✓ "+format, args...))
}

// Warning logs a non-fatal problem
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), warnColor.Sprintf("⚠ "+format, args...))
}

// Error logs a failure
func Error(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), errorColor.Sprintf("✗ "+format, args...))
}

// Request logs an HTTP request with its status and duration, colored by
// status class.
func Request(method, path string, statusCode int, duration time.Duration) {
	statusColor := successColor
	switch {
	case statusCode >= 500:
		statusColor = errorColor
	case statusCode >= 400:
		statusColor = warnColor
	case statusCode >= 300:
		statusColor = redirColor
	}

	fmt.Printf("%s %s %-40s %s %s\n",
		stamp(),
		methodColor.Sprintf("%-6s", method),
		path,
		statusColor.Sprintf("[%d]", statusCode),
		timeColor.Sprintf("(%s)", duration.Round(time.Microsecond)))
}
