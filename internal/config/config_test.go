package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplySettings(t *testing.T) {
	def := DefaultClient()

	tests := []struct {
		name      string
		src       string
		resizable bool
		sfx       float64
		bgm       float64
	}{
		{"empty", "", true, 1, 1},
		{"partial", "SFX_VOLUME=0.25\n", true, 0.25, 1},
		{"full", "RESIZABLE_WINDOW=false\nBGM_VOLUME=0.5\nSFX_VOLUME=0\n", false, 0, 0.5},
		{"bad bool falls back", "RESIZABLE_WINDOW=maybe\nSFX_VOLUME=0.3\n", true, 1, 1},
		{"negative volume falls back", "SFX_VOLUME=-1\n", true, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplySettings(def, strings.NewReader(tt.src), "test")
			if got.ResizableWindow != tt.resizable || got.SFXVolume != tt.sfx || got.BGMVolume != tt.bgm {
				t.Errorf("got resizable=%v sfx=%v bgm=%v", got.ResizableWindow, got.SFXVolume, got.BGMVolume)
			}
		})
	}
}

func TestLoadServerLayering(t *testing.T) {
	t.Setenv("BOMBY_PROTO", "kcp")
	t.Setenv("BOMBY_BOTS", "2")
	t.Setenv("BOMBY_SESSION_TTL", "not-a-duration")

	cfg, err := LoadServer([]string{"-addr", ":9999", "-bots", "1"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" || cfg.Proto != "kcp" || cfg.Bots != 1 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != DefaultServer().SessionTTL {
		t.Errorf("SessionTTL = %v, want default", cfg.SessionTTL)
	}
}

func TestLoadServerInvalid(t *testing.T) {
	tests := [][]string{
		{"-proto", "quic"},
		{"-bots", "9"},
		{"-input-rate", "0"},
		{"-session-ttl", "-1s"},
	}
	for _, args := range tests {
		if _, err := LoadServer(args); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadServer(%v) err = %v, want %v", args, err, ErrInvalidConfig)
		}
	}

	if _, err := LoadServer([]string{"-no-such-flag"}); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestLoadClientSettingsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "bomby"), 0o755); err != nil {
		t.Fatal(err)
	}
	settings := "RESIZABLE_WINDOW=false\nSFX_VOLUME=0.4\n"
	if err := os.WriteFile(filepath.Join(dir, "bomby", "config.env"), []byte(settings), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClient([]string{"-bgm", "0.2", "-online", "-character", "red"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ResizableWindow || cfg.SFXVolume != 0.4 || cfg.BGMVolume != 0.2 {
		t.Errorf("settings not applied: %+v", cfg)
	}
	if !cfg.Online || cfg.Character != "red" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestLoadClientMissingSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadClient(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultClient() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultServer().Validate(); err != nil {
		t.Error(err)
	}
	if err := DefaultClient().Validate(); err != nil {
		t.Error(err)
	}
	if DefaultServer().SessionTTL != 5*time.Minute {
		t.Error("unexpected default session TTL")
	}
}
