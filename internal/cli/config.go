package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/pypiscope/pkg/errors"
	"github.com/matzehuels/pypiscope/pkg/pypi"
)

// fileConfig is the TOML config file layout.
//
//	username = "wolfsoftware"
//	strategy = "http"          # or "browser"
//	timeout = "10s"
//	user_agent = "pypiscope"
//
//	[serve]
//	addr = ":8080"
type fileConfig struct {
	Username  string      `toml:"username"`
	Strategy  string      `toml:"strategy"`
	Timeout   duration    `toml:"timeout"`
	UserAgent string      `toml:"user_agent"`
	Serve     serveConfig `toml:"serve"`
}

type serveConfig struct {
	Addr string `toml:"addr"`
}

// duration wraps time.Duration so TOML values can be written as "10s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// defaultConfigPath returns ~/.config/pypiscope/config.toml, honoring
// XDG_CONFIG_HOME.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; flags and defaults cover
// everything the file can set.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, apperrors.New(apperrors.ErrCodeConfiguration, "config file not found: %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeConfiguration, err, "reading config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeConfiguration, err, "parsing config file %s", path)
	}
	return cfg, nil
}

// clientConfig converts the file values into a pypi.Config; unset fields
// fall through to the library defaults.
func (f fileConfig) clientConfig() pypi.Config {
	return pypi.Config{
		Username:  f.Username,
		Strategy:  pypi.Strategy(f.Strategy),
		Timeout:   f.Timeout.Duration,
		UserAgent: f.UserAgent,
	}
}
