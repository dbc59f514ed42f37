package config

import (
	"pawfetch/errors"
)

// Palette is the typed view of Settings consumed by the renderer.
// Color values are passed through unchecked; the renderer rejects bad ones.
type Palette struct {
	Title          string
	Info           string
	InfoSub        string
	Art            [3]string
	HostnameFormat string
}

// Palette extracts the rendering palette. Every key must be present.
func (s Settings) Palette() (Palette, error) {
	var missing string
	get := func(key string) string {
		v, ok := s[key]
		if !ok && missing == "" {
			missing = key
		}
		return v
	}

	p := Palette{
		Title:   get(KeyTitleColor),
		Info:    get(KeyInfoColor),
		InfoSub: get(KeyInfoSubColor),
		Art: [3]string{
			get(KeyASCIIColor1),
			get(KeyASCIIColor2),
			get(KeyASCIIColor3),
		},
		HostnameFormat: get(KeyHostnameFormat),
	}
	if missing != "" {
		return Palette{}, errors.New(errors.ErrConfig,
			"Config is missing setting '"+missing+"'",
			"Add it to the [settings] section or delete the file to regenerate the defaults")
	}
	return p, nil
}
