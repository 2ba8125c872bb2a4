// Package catalog assembles the message kinds compiled into the binary.
//
// Each family lives in its own file guarded by a build tag, so a family can be
// left out entirely:
//
//	go build -tags iso20022_nocamt,iso20022_noadmi ./...
//
// Dispatch then covers the remaining families plus the Unknown sentinel.
package catalog

import (
	"fmt"
	"sort"

	iso "github.com/open-payments/iso20022"
)

// families is filled by the per-family init functions and never changes
// afterwards.
var families = map[string]func() []iso.Kind{}

func register(name string, kinds func() []iso.Kind) { families[name] = kinds }

// Families returns the compiled-in family names, sorted.
func Families() []string {
	out := make([]string, 0, len(families))
	for name := range families {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Kinds returns the kinds of the named families, or of every compiled-in
// family when names is empty.
func Kinds(names ...string) ([]iso.Kind, error) {
	if len(names) == 0 {
		names = Families()
	}
	var out []iso.Kind
	for _, name := range names {
		kinds, ok := families[name]
		if !ok {
			return nil, fmt.Errorf("catalog: family %q is not compiled in", name)
		}
		out = append(out, kinds()...)
	}
	return out, nil
}

// NewRegistry builds a registry over the named families (all when empty).
func NewRegistry(names ...string) (*iso.Registry, error) {
	kinds, err := Kinds(names...)
	if err != nil {
		return nil, err
	}
	return iso.NewRegistry(kinds...)
}

// Registry returns a registry over every compiled-in family.
func Registry() *iso.Registry {
	kinds, _ := Kinds()
	return iso.MustRegistry(kinds...)
}
