// Package profile persists user preferences and usage counters.
package profile

import (
	"time"
)

// MaxRecentTemplates bounds the recent template history.
const MaxRecentTemplates = 5

// CodeStyles lists the accepted code style presets.
var CodeStyles = []string{"standard", "airbnb", "google", "custom"}

// Document is the on-disk profile file.
type Document struct {
	Profile   Profile   `yaml:"profile"`
	Templates Templates `yaml:"templates"`
	Stats     Stats     `yaml:"stats"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Profile holds user preferences.
type Profile struct {
	Name          string   `yaml:"name,omitempty"`
	FavoriteStack []string `yaml:"favorite_stack" validate:"dive,required"`
	CodeStyle     string   `yaml:"code_style,omitempty" validate:"omitempty,oneof=standard airbnb google custom"`
	AllowedLibs   []string `yaml:"allowed_libs" validate:"dive,required"`
}

// Templates tracks template usage.
type Templates struct {
	Favorites []string `yaml:"favorites" validate:"dive,required"`
	Recent    []string `yaml:"recent" validate:"max=5,dive,required"`
}

// Stats counts created projects.
type Stats struct {
	ProjectsCreated int        `yaml:"projects_created" validate:"min=0"`
	LastUsed        *time.Time `yaml:"last_used,omitempty"`
	FirstSuccess    *time.Time `yaml:"first_success,omitempty"`
}

// Telemetry is kept for compatibility; nothing is ever sent.
type Telemetry struct {
	Enabled bool `yaml:"enabled"`
}

// Defaults returns an empty profile.
func Defaults() Document {
	return Document{
		Profile:   Profile{FavoriteStack: []string{}, AllowedLibs: []string{}},
		Templates: Templates{Favorites: []string{}, Recent: []string{}},
	}
}

// PushRecent moves id to the front of recent, dropping duplicates and
// trimming the list to MaxRecentTemplates.
func PushRecent(recent []string, id string) []string {
	out := make([]string, 0, MaxRecentTemplates)
	out = append(out, id)
	for _, existing := range recent {
		if existing == id {
			continue
		}
		if len(out) == MaxRecentTemplates {
			break
		}
		out = append(out, existing)
	}
	return out
}
