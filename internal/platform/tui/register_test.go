package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProgramResult(t *testing.T) {
	live := context.Background()
	done, cancel := context.WithCancel(context.Background())
	cancel()

	errOther := errors.New("tty lost")

	tests := []struct {
		name     string
		ctx      context.Context
		err      error
		expected error
	}{
		{"clean exit", live, nil, nil},
		{"killed by signal", done, tea.ErrProgramKilled, nil},
		{"killed and wrapped", done, fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled), nil},
		{"killed while ctx live", live, tea.ErrProgramKilled, tea.ErrProgramKilled},
		{"other failure after cancel", done, errOther, errOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := programResult(tt.ctx, tt.err); !errors.Is(got, tt.expected) || (tt.expected == nil) != (got == nil) {
				t.Errorf("programResult() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
