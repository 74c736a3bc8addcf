package plugin

import (
	"slices"
)

// Category groups plugins for catalog listings.
type Category string

const (
	CategoryPayment       Category = "payment"
	CategoryAuth          Category = "auth"
	CategoryDatabase      Category = "database"
	CategoryAI            Category = "ai"
	CategoryCommunication Category = "communication"
	CategoryStorage       Category = "storage"
	CategoryAnalytics     Category = "analytics"
	CategoryAPI           Category = "api"
	CategoryUI            Category = "ui"
	CategoryState         Category = "state"
	CategoryTesting       Category = "testing"
)

var categoryLabels = map[Category]string{
	CategoryPayment:       "Payment Processing",
	CategoryAuth:          "Authentication",
	CategoryDatabase:      "Database & Backend",
	CategoryAI:            "AI & Machine Learning",
	CategoryCommunication: "Communication",
	CategoryStorage:       "File Storage",
	CategoryAnalytics:     "Analytics & Monitoring",
	CategoryAPI:           "API & Data",
	CategoryUI:            "UI & Styling",
	CategoryState:         "State Management",
	CategoryTesting:       "Testing",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryPayment,
		CategoryAuth,
		CategoryDatabase,
		CategoryAI,
		CategoryCommunication,
		CategoryStorage,
		CategoryAnalytics,
		CategoryAPI,
		CategoryUI,
		CategoryState,
		CategoryTesting,
	}
}

// Label returns the human readable heading for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Other"
}

// EnvVar declares an environment variable a plugin needs at runtime.
type EnvVar struct {
	Key         string `validate:"required,env_key"`
	Description string `validate:"required"`
	Required    bool
	Default     string
}

// File is a scaffold file written verbatim into the target project.
// Path is relative to the project root.
type File struct {
	Path      string `validate:"required,project_path"`
	Content   string
	Overwrite bool
}

// Plugin is an optional add-on installable into a generated project.
// It is pure data; side-effecting setup lives in Hooks.
type Plugin struct {
	ID          string   `validate:"required,plugin_id"`
	Name        string   `validate:"required"`
	Description string   `validate:"required"`
	Category    Category `validate:"required,category"`
	Packages    []string `validate:"required,min=1,dive,required"`
	EnvVars     []EnvVar `validate:"unique=Key,dive"`
	Files       []File   `validate:"dive"`
}

func (p Plugin) clone() Plugin {
	p.Packages = slices.Clone(p.Packages)
	p.EnvVars = slices.Clone(p.EnvVars)
	p.Files = slices.Clone(p.Files)
	return p
}

// EnvKeys returns the declared environment keys in declaration order.
func (p Plugin) EnvKeys() []string {
	keys := make([]string, 0, len(p.EnvVars))
	for _, v := range p.EnvVars {
		keys = append(keys, v.Key)
	}
	return keys
}
