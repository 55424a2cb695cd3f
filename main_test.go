package main

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-gol/model"
	"github.com/sheikhrachel/bounded-gol/utils"
)

func TestRun(t *testing.T) {
	if err := run([]string{"-generations", "2", "-pattern", "blinker"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunReturnsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"invalid pattern", []string{"-pattern", "spaceship"}, utils.ErrInvalidConfig},
		{"width over max", []string{"-width", "11"}, model.ErrInvalidSize},
		{"demo does not fit", []string{"-width", "2", "-height", "2"}, model.ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args); !errors.Is(err, tt.want) {
				t.Fatalf("run(%v) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}

	if err := run([]string{"-no-such-flag"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}
