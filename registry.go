package iso20022

import (
	"fmt"
	"sort"
)

// Kind describes one message kind a Registry can decode.
type Kind struct {
	ID   string // message definition identifier, e.g. camt.060.001.05
	Root string // root element below Document, e.g. AcctRptgReq
	// New returns a pointer to an empty message ready for decoding.
	New func() Message
}

// Family returns the business area of the kind (pacs, camt, ...).
func (k Kind) Family() string {
	for i := 0; i < len(k.ID); i++ {
		if k.ID[i] == '.' {
			return k.ID[:i]
		}
	}
	return k.ID
}

// Registry resolves message kinds by identifier or root element. It is
// immutable once built and safe for concurrent use.
type Registry struct {
	byID   map[string]Kind
	byRoot map[string][]Kind
	ids    []string
}

// NewRegistry builds a registry. Duplicate identifiers and incomplete kinds
// are rejected.
func NewRegistry(kinds ...Kind) (*Registry, error) {
	r := &Registry{
		byID:   make(map[string]Kind, len(kinds)),
		byRoot: make(map[string][]Kind, len(kinds)),
	}
	for _, k := range kinds {
		if k.ID == "" || k.Root == "" || k.New == nil {
			return nil, fmt.Errorf("iso20022: incomplete kind %q", k.ID)
		}
		if _, dup := r.byID[k.ID]; dup {
			return nil, fmt.Errorf("iso20022: duplicate kind %q", k.ID)
		}
		r.byID[k.ID] = k
		r.byRoot[k.Root] = append(r.byRoot[k.Root], k)
		r.ids = append(r.ids, k.ID)
	}
	sort.Strings(r.ids)
	return r, nil
}

// MustRegistry is NewRegistry that panics on error.
func MustRegistry(kinds ...Kind) *Registry {
	r, err := NewRegistry(kinds...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds a kind by message definition identifier.
func (r *Registry) Lookup(id string) (Kind, bool) {
	k, ok := r.byID[id]
	return k, ok
}

// LookupRoot finds a kind by root element. It fails when several compiled-in
// versions share the root (for example FIToFIPmtStsRpt).
func (r *Registry) LookupRoot(root string) (Kind, bool) {
	ks := r.byRoot[root]
	if len(ks) != 1 {
		return Kind{}, false
	}
	return ks[0], true
}

// Resolve picks the kind for a namespace and root element pair. The namespace
// wins; the root element is used when the namespace is absent or foreign.
func (r *Registry) Resolve(namespace, root string) (Kind, bool) {
	if id, ok := MessageIDFromNamespace(namespace); ok {
		if k, ok := r.byID[id]; ok && (root == "" || k.Root == root) {
			return k, true
		}
		return Kind{}, false
	}
	return r.LookupRoot(root)
}

// Kinds returns all kinds sorted by identifier.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of kinds.
func (r *Registry) Len() int { return len(r.ids) }
