package speakable

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var localeDataFS embed.FS

// unitNames carries the singular and plural spoken form of a duration unit.
type unitNames struct {
	One   string `yaml:"one"`
	Other string `yaml:"other"`
}

func (u unitNames) pick(count int64) string {
	if count == 1 {
		return u.One
	}
	return u.Other
}

// localeData is the immutable per-locale rule table decoded from the
// embedded YAML supplier. Number-word tables live in Go source beside each
// language variant; this table carries the calendar and phrasing data.
type localeData struct {
	Code     string   `yaml:"code"`
	Language string   `yaml:"language"`
	Weekdays []string `yaml:"weekdays"` // indexed by time.Weekday (Sunday first)
	Months   []string `yaml:"months"`

	RelativeDays struct {
		Today     string `yaml:"today"`
		Tomorrow  string `yaml:"tomorrow"`
		Yesterday string `yaml:"yesterday"`
	} `yaml:"relative_days"`

	AM string `yaml:"am"`
	PM string `yaml:"pm"`

	DateTimeTemplate string `yaml:"date_time_template"`
	BCSuffix         string `yaml:"bc_suffix"`

	Units struct {
		Day    unitNames `yaml:"day"`
		Hour   unitNames `yaml:"hour"`
		Minute unitNames `yaml:"minute"`
		Second unitNames `yaml:"second"`
	} `yaml:"units"`
}

func (d *localeData) weekdayName(t time.Time) (string, error) {
	if len(d.Weekdays) != 7 {
		return "", fmt.Errorf("%w: %s weekday names", ErrMissingLocaleData, d.Code)
	}
	return d.Weekdays[int(t.Weekday())], nil
}

func (d *localeData) monthName(t time.Time) (string, error) {
	if len(d.Months) != 12 {
		return "", fmt.Errorf("%w: %s month names", ErrMissingLocaleData, d.Code)
	}
	return d.Months[int(t.Month())-1], nil
}

func (d *localeData) unitName(unit int, count int64) string {
	switch unit {
	case 3:
		return d.Units.Day.pick(count)
	case 2:
		return d.Units.Hour.pick(count)
	case 1:
		return d.Units.Minute.pick(count)
	default:
		return d.Units.Second.pick(count)
	}
}

func (d *localeData) validate(path string) error {
	switch {
	case d.Code == "":
		return fmt.Errorf("%w: %s lacks a locale code", ErrMissingLocaleData, path)
	case d.Language == "":
		return fmt.Errorf("%w: %s lacks a language key", ErrMissingLocaleData, path)
	case d.RelativeDays.Today == "" || d.RelativeDays.Tomorrow == "" || d.RelativeDays.Yesterday == "":
		return fmt.Errorf("%w: %s relative day tokens", ErrMissingLocaleData, path)
	case d.DateTimeTemplate == "":
		return fmt.Errorf("%w: %s date-time template", ErrMissingLocaleData, path)
	case d.Units.Second.One == "" || d.Units.Second.Other == "":
		return fmt.Errorf("%w: %s duration unit names", ErrMissingLocaleData, path)
	}
	return nil
}

// loadLocaleData decodes every embedded rule table, keyed by locale code.
func loadLocaleData() (map[string]*localeData, error) {
	entries, err := fs.Glob(localeDataFS, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("speakable: list locale data: %w", err)
	}

	tables := make(map[string]*localeData, len(entries))
	for _, path := range entries {
		raw, err := localeDataFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("speakable: read %s: %w", path, err)
		}

		var data localeData
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("speakable: decode %s: %w", path, err)
		}
		if err := data.validate(path); err != nil {
			return nil, err
		}
		tables[normalizeLocale(data.Code)] = &data
	}
	return tables, nil
}
