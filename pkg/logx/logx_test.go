package logx_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/Abraxas-365/recruitboard/pkg/logx"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logx.SetOutput(&buf)
	defer logx.SetOutput(os.Stdout)

	logx.SetLevel(logx.LevelWarn)
	defer logx.SetLevel(logx.LevelInfo)

	logx.Infof("hidden %d", 1)
	logx.Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logx.Level{
		"debug":   logx.LevelDebug,
		"WARN":    logx.LevelWarn,
		"error":   logx.LevelError,
		"":        logx.LevelInfo,
		"verbose": logx.LevelInfo,
	}
	for in, want := range cases {
		if got := logx.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logx.SetOutput(&buf)
	defer logx.SetOutput(os.Stdout)

	logx.Info("report archived", "key", "reports/2024-05-15/a.json")

	out := buf.String()
	if !strings.Contains(out, "report archived") || !strings.Contains(out, "key=reports/2024-05-15/a.json") {
		t.Errorf("unexpected line: %q", out)
	}
}
