package plugin

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

// popularIDs are highlighted ahead of the full catalog listing.
var popularIDs = []string{"stripe", "clerk", "supabase", "openai", "prisma", "nextauth", "trpc", "shadcn"}

// Registry is an immutable lookup table of plugins keyed by id.
type Registry struct {
	plugins map[string]Plugin
	order   []string
}

// NewRegistry validates the supplied plugins and builds a registry.
// Catalog order is preserved for listings.
func NewRegistry(plugins []Plugin) (*Registry, error) {
	r := &Registry{
		plugins: make(map[string]Plugin, len(plugins)),
		order:   make([]string, 0, len(plugins)),
	}

	for i, p := range plugins {
		if err := validatePlugin(i, p); err != nil {
			return nil, err
		}
		if _, exists := r.plugins[p.ID]; exists {
			return nil, forgeerrors.NewValidationError(fmt.Sprintf("plugins[%d].id", i), fmt.Sprintf("duplicate plugin id %q", p.ID), nil)
		}
		r.plugins[p.ID] = p.clone()
		r.order = append(r.order, p.ID)
	}

	return r, nil
}

func validatePlugin(index int, p Plugin) error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		field := fmt.Sprintf("plugins[%d].%s", index, strings.TrimPrefix(first.Namespace(), "Plugin."))
		return forgeerrors.NewValidationError(field, fmt.Sprintf("failed %q check for plugin %q", first.Tag(), p.ID), err)
	}
	return forgeerrors.NewValidationError(fmt.Sprintf("plugins[%d]", index), err.Error(), err)
}

// Lookup returns the plugin registered under id. The boolean is false for unknown ids.
func (r *Registry) Lookup(id string) (Plugin, bool) {
	p, ok := r.plugins[id]
	if !ok {
		return Plugin{}, false
	}
	return p.clone(), true
}

// IDs returns all registered ids sorted alphabetically.
func (r *Registry) IDs() []string {
	ids := slices.Clone(r.order)
	sort.Strings(ids)
	return ids
}

// List returns every plugin in catalog order.
func (r *Registry) List() []Plugin {
	return r.collect(func(Plugin) bool { return true })
}

// Search matches the query case-insensitively against id, name and description.
func (r *Registry) Search(query string) []Plugin {
	q := strings.ToLower(strings.TrimSpace(query))
	return r.collect(func(p Plugin) bool {
		return strings.Contains(p.ID, q) ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

// ByCategory returns the plugins in the given category.
func (r *Registry) ByCategory(c Category) []Plugin {
	return r.collect(func(p Plugin) bool { return p.Category == c })
}

// Popular returns the highlighted plugins that exist in the registry.
func (r *Registry) Popular() []Plugin {
	return r.collect(func(p Plugin) bool { return slices.Contains(popularIDs, p.ID) })
}

func (r *Registry) collect(keep func(Plugin) bool) []Plugin {
	out := make([]Plugin, 0)
	for _, id := range r.order {
		p := r.plugins[id]
		if keep(p) {
			out = append(out, p.clone())
		}
	}
	return out
}
