package logger_i

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/akolanti/RagWeb/internal/config"
)

func TestLogger_ProductionWritesJSONWithTrace(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter(&buf, true, true)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "trace-1")
	NewLogger("test").WithTrace(ctx).Info("hello", "key", "value")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if line["component"] != "test" || line["traceId"] != "trace-1" || line["key"] != "value" {
		t.Errorf("unexpected log line %v", line)
	}
}

func TestLogger_DebugSuppressedWhenNotDebug(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter(&buf, false, false)

	l := NewLogger("quiet")
	l.Debug("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestLogger_WithTraceNoValue(t *testing.T) {
	l := NewLogger("x")
	if l.WithTrace(context.Background()) != l {
		t.Error("WithTrace without a trace id should return the same logger")
	}
}

func TestLogger_CreatedBeforeInit(t *testing.T) {
	early := NewLogger("early").With("k", "v")

	var buf bytes.Buffer
	initWithWriter(&buf, true, true)
	early.Info("after init")

	if !strings.Contains(buf.String(), `"component":"early"`) || !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("logger created before Init should use the new handler: %q", buf.String())
	}
}
