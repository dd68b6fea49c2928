package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when Get is called before Init")
		}
	}()
	_ = Get()
}

func TestInit_JSONWithServiceAndComponent(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Options{Level: "debug", Service: "hbnb", Output: &buf})

	log := Component("facade")
	log.Info().Str("entity", "user").Msg("entity created")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if event["service"] != "hbnb" {
		t.Errorf("expected service=hbnb, got %v", event["service"])
	}
	if event["component"] != "facade" {
		t.Errorf("expected component=facade, got %v", event["component"])
	}
	if event["message"] != "entity created" {
		t.Errorf("unexpected message %v", event["message"])
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	Init(Options{Level: "info", Output: &second})

	log := Get()
	log.Info().Msg("hello")

	if first.Len() == 0 {
		t.Error("expected output on the first writer")
	}
	if second.Len() != 0 {
		t.Error("second Init must not replace the logger")
	}
}

func TestInit_LevelFiltersEvents(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Options{Level: "warn", Output: &buf})

	log := Get()
	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info event written at warn level: %q", buf.String())
	}
	log.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatal("warn event missing at warn level")
	}
}
