package modules

import (
	"strconv"
	"strings"
)

// Ref points at one location inside a nested configuration map.
type Ref struct {
	root   map[string]any
	parent any
	key    string
	err    error
}

// AssignByPath walks root along the dot-separated path and returns a
// reference to the leaf. Missing intermediate maps are created. The walk
// stops at the first empty segment; an empty path refers to root itself.
// Lists can be indexed but never grown.
func AssignByPath(root map[string]any, path string) *Ref {
	ref := &Ref{root: root}

	var keys []string
	for key := range strings.SplitSeq(path, ".") {
		if key == "" {
			break
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ref
	}

	var container any = root
	for _, key := range keys[:len(keys)-1] {
		next, err := descend(container, key)
		if err != nil {
			ref.err = err
			return ref
		}
		container = next
	}

	ref.parent = container
	ref.key = keys[len(keys)-1]
	return ref
}

// Get returns the value at the reference.
func (r *Ref) Get() (any, bool) {
	if r.err != nil {
		return nil, false
	}

	switch p := r.parent.(type) {
	case nil:
		return r.root, r.root != nil
	case map[string]any:
		v, ok := p[r.key]
		return v, ok
	case []any:
		i, ok := index(p, r.key)
		if !ok {
			return nil, false
		}
		return p[i], true
	}
	return nil, false
}

// Set stores v at the reference.
func (r *Ref) Set(v any) error {
	if r.err != nil {
		return r.err
	}

	switch p := r.parent.(type) {
	case nil:
		return ErrAssignRoot
	case map[string]any:
		p[r.key] = v
		return nil
	case []any:
		i, ok := index(p, r.key)
		if !ok {
			return ErrIndexOutOfRange
		}
		p[i] = v
		return nil
	}
	return ErrNotContainer
}

func descend(container any, key string) (any, error) {
	switch c := container.(type) {
	case map[string]any:
		if c == nil {
			return nil, ErrNotContainer
		}
		v, ok := c[key]
		if !ok || v == nil {
			next := map[string]any{}
			c[key] = next
			return next, nil
		}
		return asContainer(v)
	case []any:
		i, ok := index(c, key)
		if !ok {
			return nil, ErrIndexOutOfRange
		}
		if c[i] == nil {
			next := map[string]any{}
			c[i] = next
			return next, nil
		}
		return asContainer(c[i])
	}
	return nil, ErrNotContainer
}

func asContainer(v any) (any, error) {
	switch v.(type) {
	case map[string]any, []any:
		return v, nil
	}
	return nil, ErrNotContainer
}

func index(list []any, key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(list) {
		return 0, false
	}
	return i, true
}
