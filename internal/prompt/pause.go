// Package prompt handles the end-of-run terminal pause.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TerminalSupported reports whether an interactive pause is possible. When
// the process runs without a usable terminal (CI, pipes), pausing would hang.
func TerminalSupported() bool {
	return liner.TerminalSupported()
}

// Pause blocks until the operator presses Enter, so output stays readable
// when the tool was launched from a window that closes on exit. Ctrl+C and
// EOF release the pause without error.
func Pause() error {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	line.SetCtrlCAborts(true)
	return PauseWithPrompter(&LinerPrompter{State: line})
}

// PauseWithPrompter performs the pause using a custom prompter.
func PauseWithPrompter(prompter Prompter) error {
	_, err := prompter.Prompt(color.CyanString("Press Enter to exit "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("terminal pause failed: %w", err)
	}
	return nil
}
