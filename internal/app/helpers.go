package app

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/blackwell-systems/lendctl/internal/config"
)

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// formatDue renders a loan due date for lists.
func formatDue(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}

// shorten trims an ID for table display.
func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func lookupTimeout(cfg *config.Config) time.Duration {
	secs := cfg.Lookup.TimeoutSeconds
	if secs <= 0 {
		secs = 10
	}
	return time.Duration(secs) * time.Second
}
