package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

// Catalog is an immutable, validated set of templates plus a category index.
type Catalog struct {
	order      []string
	byID       map[string]Template
	categories map[string][]string
}

// NewCatalog validates templates and the category index. Every id referenced by a
// category must name a template in the catalog.
func NewCatalog(templates []Template, categories map[string][]string) (*Catalog, error) {
	c := &Catalog{
		byID:       make(map[string]Template, len(templates)),
		categories: make(map[string][]string, len(categories)),
	}

	for i, t := range templates {
		if err := validatorInstance().Struct(t); err != nil {
			return nil, convertValidationError(i, err)
		}
		if _, exists := c.byID[t.ID]; exists {
			return nil, forgeerrors.NewValidationError(fmt.Sprintf("templates[%d].id", i), fmt.Sprintf("duplicate template id %q", t.ID), nil)
		}
		c.byID[t.ID] = t.clone()
		c.order = append(c.order, t.ID)
	}

	for name, ids := range categories {
		for _, id := range ids {
			if _, ok := c.byID[id]; !ok {
				return nil, forgeerrors.NewValidationError("categories."+name, fmt.Sprintf("references unknown template %q", id), nil)
			}
		}
		c.categories[name] = append([]string(nil), ids...)
	}

	return c, nil
}

func convertValidationError(index int, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fmt.Sprintf("templates[%d].%s", index, strings.ToLower(ve.Field()))
		return forgeerrors.NewValidationError(field, fmt.Sprintf("failed validation for tag '%s'", ve.Tag()), err)
	}
	return forgeerrors.NewValidationError(fmt.Sprintf("templates[%d]", index), err.Error(), err)
}

// Get returns the template with id.
func (c *Catalog) Get(id string) (Template, bool) {
	t, ok := c.byID[id]
	if !ok {
		return Template{}, false
	}
	return t.clone(), true
}

// IDs returns template ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := append([]string(nil), c.order...)
	sort.Strings(ids)
	return ids
}

// List returns every template in catalog order.
func (c *Catalog) List() []Template {
	return c.collect(func(Template) bool { return true })
}

// Featured returns templates marked as featured.
func (c *Catalog) Featured() []Template {
	return c.collect(func(t Template) bool { return t.Featured })
}

// BattleTested returns templates marked as battle tested.
func (c *Catalog) BattleTested() []Template {
	return c.collect(func(t Template) bool { return t.BattleTested })
}

// Categories returns the category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the templates indexed under category, in catalog order.
// An unknown category yields nil.
func (c *Catalog) ByCategory(category string) []Template {
	ids, ok := c.categories[strings.ToLower(category)]
	if !ok {
		return nil
	}
	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}
	return c.collect(func(t Template) bool {
		_, ok := member[t.ID]
		return ok
	})
}

// ByTag returns templates carrying tag.
func (c *Catalog) ByTag(tag string) []Template {
	return c.collect(func(t Template) bool { return t.HasTag(tag) })
}

// Search matches query case-insensitively against name and description, and
// as a substring of any tag.
func (c *Catalog) Search(query string) []Template {
	q := strings.ToLower(strings.TrimSpace(query))
	return c.collect(func(t Template) bool {
		if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Description), q) {
			return true
		}
		for _, tag := range t.Tags {
			if strings.Contains(tag, q) {
				return true
			}
		}
		return false
	})
}

func (c *Catalog) collect(keep func(Template) bool) []Template {
	var out []Template
	for _, id := range c.order {
		t := c.byID[id]
		if keep(t) {
			out = append(out, t.clone())
		}
	}
	return out
}
