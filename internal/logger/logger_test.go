package logger

import (
	"context"
	"testing"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// Must not panic and must be usable as a regular logger.
	l.Info().Str("k", "v").Msg("discarded")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	child.Debug().Msg("child message")
}

func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected non-nil logger from empty context")
	}
	l.Debug().Msg("from background context")
}
