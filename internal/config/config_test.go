package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/go-sanskrit-tokenizer/internal/scan"
	"github.com/spf13/pflag"
)

// stubCmd satisfies the flag binder used by Load.
type stubCmd struct {
	fs *pflag.FlagSet
}

func (s stubCmd) Flags() *pflag.FlagSet { return s.fs }

func parsedFlags(t *testing.T, defaults Config, args ...string) stubCmd {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return stubCmd{fs: fs}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if !cfg.Pipeline.Normalize {
		t.Error("Pipeline.Normalize = false, want true")
	}
	if cfg.Pipeline.StripDiacritics || cfg.Pipeline.ASCIIMap || cfg.Pipeline.SandhiSplit {
		t.Error("optional pipeline stages must default to off")
	}
	if cfg.Pipeline.MinPartLen != 2 {
		t.Errorf("Pipeline.MinPartLen = %d, want 2", cfg.Pipeline.MinPartLen)
	}
	if cfg.Scanner.Policy != PolicyUnicode {
		t.Errorf("Scanner.Policy = %q, want %q", cfg.Scanner.Policy, PolicyUnicode)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("Server.ListenAddr = %q, want %q", cfg.Server.ListenAddr, ":8080")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sanskritok.yaml")
	content := `
log_level: debug
pipeline:
  sandhi_split: true
  min_part_len: 3
scanner:
  policy: ascii
server:
  listen_addr: ":9091"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(LoadOptions{ConfigFile: path, Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.Pipeline.SandhiSplit {
		t.Error("Pipeline.SandhiSplit = false, want true")
	}
	if cfg.Pipeline.MinPartLen != 3 {
		t.Errorf("Pipeline.MinPartLen = %d, want 3", cfg.Pipeline.MinPartLen)
	}
	if cfg.Scanner.Policy != PolicyASCII {
		t.Errorf("Scanner.Policy = %q, want %q", cfg.Scanner.Policy, PolicyASCII)
	}
	if cfg.Server.ListenAddr != ":9091" {
		t.Errorf("Server.ListenAddr = %q, want %q", cfg.Server.ListenAddr, ":9091")
	}
	// Untouched sections keep their defaults.
	if !cfg.Pipeline.Normalize {
		t.Error("Pipeline.Normalize = false, want default true")
	}
}

// Flags registered with dashed names must land in the nested sections the
// struct tags expect, while untouched flags leave defaults intact.
func TestLoad_FlagsBindToNestedKeys(t *testing.T) {
	defaults := DefaultConfig()
	cmd := parsedFlags(t, defaults,
		"--pipeline-sandhi-split",
		"--pipeline-min-part-len=4",
		"--scanner-policy=ascii",
	)

	cfg, err := Load(LoadOptions{Cmd: cmd, Defaults: defaults})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Pipeline.SandhiSplit {
		t.Error("Pipeline.SandhiSplit = false, want true from flag")
	}
	if cfg.Pipeline.MinPartLen != 4 {
		t.Errorf("Pipeline.MinPartLen = %d, want 4 from flag", cfg.Pipeline.MinPartLen)
	}
	if cfg.Scanner.Policy != PolicyASCII {
		t.Errorf("Scanner.Policy = %q, want %q from flag", cfg.Scanner.Policy, PolicyASCII)
	}
	// Flags that were not set must not clobber defaults.
	if !cfg.Pipeline.Normalize {
		t.Error("Pipeline.Normalize = false, want default true")
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("Server.ListenAddr = %q, want default %q", cfg.Server.ListenAddr, ":8080")
	}
}

// A changed flag wins over the config file; file values still apply to
// keys whose flags were left at their defaults.
func TestLoad_ChangedFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sanskritok.yaml")
	content := `
pipeline:
  sandhi_split: true
  min_part_len: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	defaults := DefaultConfig()
	cmd := parsedFlags(t, defaults, "--pipeline-min-part-len=5")

	cfg, err := Load(LoadOptions{Cmd: cmd, ConfigFile: path, Defaults: defaults})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Pipeline.MinPartLen != 5 {
		t.Errorf("Pipeline.MinPartLen = %d, want 5 (flag over file)", cfg.Pipeline.MinPartLen)
	}
	if !cfg.Pipeline.SandhiSplit {
		t.Error("Pipeline.SandhiSplit = false, want true from file")
	}
}

func TestLoad_InvalidPolicyInConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sanskritok.yaml")
	if err := os.WriteFile(path, []byte("scanner:\n  policy: latin-3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(LoadOptions{ConfigFile: path, Defaults: DefaultConfig()}); err == nil {
		t.Fatal("expected error for invalid scanner policy in config file")
	}
}

func TestLoad_RejectsInvalidPolicy(t *testing.T) {
	defaults := DefaultConfig()
	defaults.Scanner.Policy = "latin-3"

	if _, err := Load(LoadOptions{Defaults: defaults}); err == nil {
		t.Fatal("expected error for invalid scanner policy")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		raw     string
		want    scan.Policy
		wantErr bool
	}{
		{"", scan.PolicyUnicode, false},
		{"unicode", scan.PolicyUnicode, false},
		{"UNICODE", scan.PolicyUnicode, false},
		{"ascii", scan.PolicyASCII, false},
		{" ascii ", scan.PolicyASCII, false},
		{"latin-3", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePolicy(%q): expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePolicy(%q): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
