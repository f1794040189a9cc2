package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GayathriPCh/LoLCode-AI/internal/config"
)

func keepDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInitCreatesLogFile(t *testing.T) {
	keepDefault(t)
	logPath := filepath.Join(t.TempDir(), "logs", "lolcode.log")

	logger, err := Init(config.LogConfig{Level: "info", Format: "json", File: logPath}, false)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	logger.Info("hello", slog.String("component", "test"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("Expected JSON log line, got: %s", string(data))
	}
}

func TestInitLevel(t *testing.T) {
	keepDefault(t)
	var buf bytes.Buffer

	logger, err := initWith(config.LogConfig{Level: "warn", Format: "text"}, false, &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output: %s", out)
	}
	if slog.Default() != logger {
		t.Error("Init should install the logger as default")
	}
}

func TestInitVerbose(t *testing.T) {
	keepDefault(t)
	var buf bytes.Buffer

	logger, _ := initWith(config.LogConfig{Level: "error"}, true, &buf)
	logger.Debug("debugging")
	if !strings.Contains(buf.String(), "debugging") {
		t.Error("verbose should enable debug logs")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "http request" || rec["path"] != "/teapot" {
		t.Errorf("unexpected record: %v", rec)
	}
	if rec["status"] != float64(http.StatusTeapot) {
		t.Errorf("status = %v", rec["status"])
	}
	if rec["bytes"] != float64(len("short and stout")) {
		t.Errorf("bytes = %v", rec["bytes"])
	}
	if id, _ := rec["request_id"].(string); id == "" {
		t.Error("expected a request id")
	}
}
