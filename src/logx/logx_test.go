package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	if GetLoggerLevelByString("warn") != zapcore.WarnLevel {
		t.Fatalf("warn not mapped")
	}
	if GetLoggerLevelByString("verbose") != zapcore.InfoLevel {
		t.Fatalf("unknown level should fall back to info")
	}
}

func TestInitLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.DebugLevel, false, false)
	l.InitLogger(&buf)
	l.With("session", "abc").Infof("picked %s", "e2")
	_ = l.Sync()

	out := buf.String()
	for _, want := range []string{`"MESSAGE":"picked e2"`, `"session":"abc"`, `"LEVEL":"info"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q missing %s", out, want)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.WarnLevel, false, false)
	l.InitLogger(&buf)
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	var l Logger = NewNop()
	l.With("k", "v").Errorf("nothing %d", 1)
}
