package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	mirrorcopy "github.com/mirrorkit/mirrorkit/pkg/copy"
	mkerrors "github.com/mirrorkit/mirrorkit/pkg/errors"
)

// config holds the user-level defaults read from config.toml. Every field
// maps to a copy option; per-command flags override it.
type config struct {
	MaxDepth         int  `toml:"max_depth"`
	MaxStackSize     int  `toml:"max_stack_size"`
	Freeze           bool `toml:"freeze"`
	IncludeTypeNames bool `toml:"include_type_names"`
}

// loadConfig reads the config file at path. A missing file is not an error;
// the caller falls back to built-in defaults.
func loadConfig(path string) (*config, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, mkerrors.Wrap(mkerrors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return &cfg, nil
}

// toOptions converts the config into resolved copy options.
func (c *config) toOptions() mirrorcopy.Options {
	return mirrorcopy.Resolve(&mirrorcopy.Options{
		MaxDepth:         c.MaxDepth,
		MaxStackSize:     c.MaxStackSize,
		Freeze:           c.Freeze,
		IncludeTypeNames: c.IncludeTypeNames,
	})
}
