package sqltmpl

import (
	"slices"
	"sort"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/smasher164/xid"
	"golang.org/x/exp/maps"
)

// Bindings holds the values substituted into a template: an ordered list
// addressed by {} and {n}, and a set of named values addressed by {name}.
// The zero value is ready to use.
type Bindings struct {
	positional []any
	named      map[string]any
}

// Add appends positional values.
func (b *Bindings) Add(values ...any) *Bindings {
	b.positional = append(b.positional, values...)
	return b
}

// At returns the positional value at index i.
func (b *Bindings) At(i int) (any, bool) {
	if b == nil || i < 0 || i >= len(b.positional) {
		return nil, false
	}
	return b.positional[i], true
}

// Len returns the number of positional values.
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	return len(b.positional)
}

// Set binds name to v. Names follow identifier rules: a letter or '_'
// followed by letters, digits and '_' (Unicode XID).
func (b *Bindings) Set(name string, v any) error {
	if !validName(name) {
		return &TemplateError{Name: name, Err: ErrInvalidName}
	}
	if b.named == nil {
		b.named = make(map[string]any)
	}
	b.named[name] = v
	return nil
}

// Lookup returns the value bound to name.
func (b *Bindings) Lookup(name string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.named[name]
	return v, ok
}

// Names returns the bound names in sorted order.
func (b *Bindings) Names() []string {
	if b == nil || len(b.named) == 0 {
		return nil
	}
	keys := maps.Keys(b.named)
	slices.Sort(keys)
	return keys
}

// suggest returns the bound name closest to name, or "".
func (b *Bindings) suggest(name string) string {
	names := b.Names()
	if len(names) == 0 || name == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if r != '_' && !xid.Start(r) {
				return false
			}
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return true
}
