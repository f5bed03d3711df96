// Package badge formats and publishes the toolbar badge count.
package badge

import (
	"context"
	"strconv"

	"github.com/linkvault/linkvault/internal/logger"
)

// Setter receives the formatted badge text after every mutation that
// can change the total bookmark count.
type Setter interface {
	SetText(ctx context.Context, text string) error
}

// Format renders a bookmark total as badge text: empty for zero (the
// badge is cleared, never shows "0"), capped at "999+".
func Format(count int) string {
	switch {
	case count <= 0:
		return ""
	case count > 999:
		return "999+"
	default:
		return strconv.Itoa(count)
	}
}

// LogSetter publishes badge updates to the log. The real toolbar lives
// in the extension surface; the service only emits the value.
type LogSetter struct {
	logger logger.Logger
}

func NewLogSetter(log logger.Logger) *LogSetter {
	return &LogSetter{logger: log}
}

func (s *LogSetter) SetText(ctx context.Context, text string) error {
	s.logger.Debug("badge updated", logger.String("text", text))
	return nil
}

// MemorySetter records the last value set. Used by tests.
type MemorySetter struct {
	Text string
	Sets int
}

func (s *MemorySetter) SetText(ctx context.Context, text string) error {
	s.Text = text
	s.Sets++
	return nil
}
