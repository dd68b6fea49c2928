package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbnb/rental-directory/internal/pkg/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

const validSeed = `users:
  - first_name: John
    last_name: Doe
    email: john@example.com
amenities:
  - name: Wi-Fi
places:
  - title: Loft
    price: 80
    latitude: 10
    longitude: 20
    owner: john@example.com
    amenities: [Wi-Fi]
reviews:
  - place: Loft
    user: john@example.com
    text: Lovely
    rating: 4
`

func TestSeedValidate_OK(t *testing.T) {
	p := writeFile(t, "seed.yaml", validSeed)

	out, err := run(t, "seed", "validate", p)
	if err != nil {
		t.Fatalf("unexpected error: %v (output %q)", err, out)
	}
	want := "OK: 1 users, 1 amenities, 1 places, 1 reviews"
	if !strings.Contains(out, want) {
		t.Fatalf("output = %q, want it to contain %q", out, want)
	}
}

func TestSeedValidate_TextCap(t *testing.T) {
	p := writeFile(t, "seed.yaml", validSeed)

	if _, err := run(t, "seed", "validate", "--review-text-max", "3", p); err == nil {
		t.Fatal("expected review text over the cap to fail")
	}
	if _, err := run(t, "seed", "validate", "--review-text-max", "0", p); err != nil {
		t.Fatalf("cap disabled: unexpected error: %v", err)
	}
}

func TestSeedValidate_BadReference(t *testing.T) {
	p := writeFile(t, "seed.yaml", strings.Replace(validSeed, "owner: john@example.com", "owner: ghost@example.com", 1))

	_, err := run(t, "seed", "validate", p)
	if err == nil {
		t.Fatal("expected error for unknown owner")
	}
	if !strings.Contains(err.Error(), "places[0]") {
		t.Fatalf("error %q should locate the failing entry", err)
	}
}

func TestSeedValidate_RequiresFile(t *testing.T) {
	if _, err := run(t, "seed", "validate"); err == nil {
		t.Fatal("expected error without a file argument")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "hbnb dev") {
		t.Fatalf("version output = %q", out)
	}
}

func TestApplyServeFlags(t *testing.T) {
	cases := []struct {
		name     string
		port     string
		seed     string
		wantPort string
		wantSeed string
	}{
		{"no overrides", "", "", "8080", "env.yaml"},
		{"port only", "9090", "", "9090", "env.yaml"},
		{"both", "9090", "flag.yaml", "9090", "flag.yaml"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := &config.Config{Port: "8080", SeedFile: "env.yaml"}
			applyServeFlags(cfg, c.port, c.seed)
			if cfg.Port != c.wantPort || cfg.SeedFile != c.wantSeed {
				t.Fatalf("got port=%q seed=%q, want port=%q seed=%q", cfg.Port, cfg.SeedFile, c.wantPort, c.wantSeed)
			}
		})
	}
}

func TestLoggerOptions(t *testing.T) {
	cases := []struct {
		env    string
		pretty bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
	}
	for _, c := range cases {
		opts := loggerOptions(&config.Config{Env: c.env, LogLevel: "debug"})
		if opts.Pretty != c.pretty {
			t.Errorf("env %q: Pretty = %v, want %v", c.env, opts.Pretty, c.pretty)
		}
		if opts.Level != "debug" || opts.Service != "hbnb" {
			t.Errorf("env %q: unexpected options %+v", c.env, opts)
		}
	}
}
