package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFromContext(t *testing.T) {
	t.Parallel()
	if FromContext(context.Background()) != DefaultLogger() {
		t.Errorf("an empty context must yield the default logger")
	}

	logger := zap.NewNop().Sugar()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Errorf("the context logger was not returned")
	}
}

func TestLevelFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{level: "debug", expected: zapcore.DebugLevel},
		{level: "WARN", expected: zapcore.WarnLevel},
		{level: "error", expected: zapcore.ErrorLevel},
		{level: "", expected: zapcore.InfoLevel},
		{level: "verbose", expected: zapcore.InfoLevel},
	}
	for _, test := range tests {
		if got := levelFor(test.level); got != test.expected {
			t.Errorf("level for %q, got: %v, expected: %v", test.level, got, test.expected)
		}
	}
}
