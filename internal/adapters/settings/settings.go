// Package settings loads runtime tool settings from the environment and
// an optional settings file. Settings configure the press binary itself;
// everything about the site lives in the manifest.
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/zerr"
)

// Load reads settings with the following precedence: environment variables
// (PRESS_ prefix), then the settings file, then built-in defaults. The
// settings file is $PRESS_SETTINGS if set, otherwise press/settings.toml
// under the user config directory. A missing file is not an error.
func Load() (domain.Settings, error) {
	v := viper.New()

	v.SetDefault("jobs", runtime.NumCPU())
	v.SetDefault("progress", domain.ProgressPlain)
	v.SetDefault("state_dir", "")

	v.SetConfigType("toml")
	if path := os.Getenv("PRESS_SETTINGS"); path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "press"))
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix("PRESS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return domain.Settings{}, zerr.Wrap(err, "failed to read settings file")
		}
	}

	var s domain.Settings
	if err := v.Unmarshal(&s); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse settings")
	}

	if err := validate(s); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

func validate(s domain.Settings) error {
	if s.Jobs < 1 {
		return zerr.With(zerr.New("jobs must be at least one"), "jobs", s.Jobs)
	}
	switch s.Progress {
	case domain.ProgressPlain, domain.ProgressOTel, domain.ProgressOff:
		return nil
	default:
		return zerr.With(zerr.New("unknown progress mode"), "progress", s.Progress)
	}
}
