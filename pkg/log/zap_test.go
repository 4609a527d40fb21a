package log_test

import (
	"context"
	"testing"

	"todo-me/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "Development console", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "Production json", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "Unknown level falls back", cfg: log.ZapConfig{Level: "loud", Mode: "production", Encoding: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger, got nil")
			}
			ctx := context.WithValue(context.Background(), log.RequestIDKey, "req-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Info(ctx, "info")
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "discarded: %v", "x")
}
