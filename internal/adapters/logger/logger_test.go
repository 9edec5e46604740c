package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"go.trai.ch/press/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func capture(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		wants []string
	}{
		{
			name:  "info",
			log:   func(lg *logger.Logger) { lg.Info("site rendered") },
			wants: []string{"INFO", "site rendered"},
		},
		{
			name:  "warn",
			log:   func(lg *logger.Logger) { lg.Warn("output dir missing") },
			wants: []string{"WARN", "output dir missing"},
		},
		{
			name:  "error",
			log:   func(lg *logger.Logger) { lg.Error(os.ErrPermission) },
			wants: []string{"ERROR", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := capture(t)
			tt.log(lg)

			for _, want := range tt.wants {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q: %s", want, buf.String())
				}
			}
		})
	}
}

func TestLogger_Error_Metadata(t *testing.T) {
	lg, buf := capture(t)

	err := zerr.With(zerr.New("render failed"), "page", "about")
	err = zerr.With(err, "attempt", 2)
	lg.Error(err)

	output := buf.String()
	for _, want := range []string{"render failed", "page=about", "attempt=2"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}
