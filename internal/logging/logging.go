// Package logging builds the console logger used by the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Debug output is enabled when verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "purpleblog",
	})
	logger.SetStyles(styles())
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("OK").
		Bold(true).
		Foreground(lipgloss.Color("42"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("FAIL").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	s.Values["err"] = lipgloss.NewStyle().Bold(true)
	s.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	return s
}
