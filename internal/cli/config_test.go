package cli

import (
	"path/filepath"
	"testing"

	mirrorcopy "github.com/mirrorkit/mirrorkit/pkg/copy"
	mkerrors "github.com/mirrorkit/mirrorkit/pkg/errors"
)

func TestLoadConfigMissingFileIsNil(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil", cfg)
	}
}

func TestLoadConfigEmptyPathIsNil(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil || cfg != nil {
		t.Errorf("loadConfig(\"\") = %v, %v, want nil, nil", cfg, err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.toml", `
max_depth = 4
max_stack_size = 8
freeze = true
include_type_names = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg == nil {
		t.Fatal("cfg is nil")
	}

	opts := cfg.toOptions()
	if opts.MaxDepth != 4 {
		t.Errorf("MaxDepth = %d, want 4", opts.MaxDepth)
	}
	if opts.MaxStackSize != 8 {
		t.Errorf("MaxStackSize = %d, want 8", opts.MaxStackSize)
	}
	if !opts.Freeze || !opts.IncludeTypeNames {
		t.Error("boolean options lost")
	}
}

func TestLoadConfigAppliesLimits(t *testing.T) {
	path := writeFile(t, "config.toml", "max_stack_size = 5000\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	opts := cfg.toOptions()
	if opts.MaxStackSize != mirrorcopy.MaxStackCeiling {
		t.Errorf("MaxStackSize = %d, want clamped to %d", opts.MaxStackSize, mirrorcopy.MaxStackCeiling)
	}
	if opts.MaxDepth != mirrorcopy.DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want default", opts.MaxDepth)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeFile(t, "config.toml", "max_depth = [broken\n")

	_, err := loadConfig(path)
	if !mkerrors.Is(err, mkerrors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want %v", err, mkerrors.ErrCodeInvalidFormat)
	}
}
