// Package config loads and persists the pawfetch settings file.
//
// The file is ini-formatted with a single [settings] section. It is created
// with the defaults on first run and read back verbatim afterwards: keys are
// never merged, upgraded or defaulted once the file exists.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"pawfetch/errors"
	"pawfetch/logger"
)

const (
	// GlobalConfigDir is the directory, relative to the home directory, holding the config file.
	GlobalConfigDir = ".config/pawfetch"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.paw"
	// Section is the ini section holding all settings.
	Section = "settings"
)

// Setting keys
const (
	KeyTitleColor     = "title_color"
	KeyInfoColor      = "info_color"
	KeyInfoSubColor   = "info_sub_color"
	KeyASCIIColor1    = "ascii_color1"
	KeyASCIIColor2    = "ascii_color2"
	KeyASCIIColor3    = "ascii_color3"
	KeyHostnameFormat = "hostname_format"
)

// Keys lists every setting in the order it is written to a new file.
var Keys = []string{
	KeyTitleColor,
	KeyInfoColor,
	KeyInfoSubColor,
	KeyASCIIColor1,
	KeyASCIIColor2,
	KeyASCIIColor3,
	KeyHostnameFormat,
}

// Settings maps setting keys to their raw string values.
type Settings map[string]string

// Defaults returns the settings written on first run.
func Defaults() Settings {
	return Settings{
		KeyTitleColor:     "#f5c2e7",
		KeyInfoColor:      "#f5c2e7",
		KeyInfoSubColor:   "#cdd6f4",
		KeyASCIIColor1:    "#74c7ec",
		KeyASCIIColor2:    "#f5c2e7",
		KeyASCIIColor3:    "#cdd6f4",
		KeyHostnameFormat: "{user}@{hostname}",
	}
}

// DefaultPath returns ~/.config/pawfetch/config.paw.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set HOME or pass --config")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}

// loadOptions keeps "#RRGGBB" values intact: ini.v1 would otherwise treat
// the leading '#' as the start of an inline comment.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	Insensitive:         true,
}

// Load returns the settings stored at path. When no file exists there, the
// defaults are written to path (creating parent directories) and returned.
func Load(path string, log logger.Logger) (Settings, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+path,
				"Check file permissions")
		}
		defaults := Defaults()
		if err := Save(path, defaults); err != nil {
			return nil, err
		}
		log.Debug("created default config", "path", path)
		return defaults, nil
	}

	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Fix the ini syntax in "+path+" or delete it to regenerate the defaults")
	}

	sec, err := f.GetSection(Section)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Config file has no ["+Section+"] section",
			"Delete "+path+" to regenerate the defaults")
	}

	settings := make(Settings, len(sec.Keys()))
	for _, key := range sec.Keys() {
		settings[key.Name()] = key.Value()
	}
	log.Debug("loaded config", "path", path, "keys", len(settings))
	return settings, nil
}

// Save writes settings to path as an ini file, creating parent directories.
// Known keys are written in the order of Keys, any others after them.
func Save(path string, settings Settings) error {
	f := ini.Empty(loadOptions)
	sec, err := f.NewSection(Section)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to build config file", "")
	}

	written := make(map[string]bool, len(settings))
	for _, k := range Keys {
		v, ok := settings[k]
		if !ok {
			continue
		}
		if _, err := sec.NewKey(k, v); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, "Failed to build config file", "")
		}
		written[k] = true
	}
	for k, v := range settings {
		if written[k] {
			continue
		}
		if _, err := sec.NewKey(k, v); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, "Failed to build config file", "")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory",
			"Check permissions on "+filepath.Dir(path))
	}
	if err := f.SaveTo(path); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check permissions on "+path)
	}
	return nil
}
