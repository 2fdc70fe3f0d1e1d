// Package variant resolves discriminated unions in the configuration tree.
//
// A union field can hold one of several concrete node types. In YAML the
// concrete type is named by a "model_type" tag inside the mapping; each union
// owns a Registry mapping tags to decoders. Resolution happens once, at the
// deserialization boundary: after that the tree holds concrete typed values
// and no code ever re-inspects tags.
package variant

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownModelType is wrapped by resolution errors for unregistered tags.
var ErrUnknownModelType = errors.New("unknown model_type")

// Validator is implemented by nodes that check their own fields. Resolve
// calls it right after decoding so invalid nodes never enter the tree.
type Validator interface {
	Validate() error
}

// Registry maps model_type tags to decoders producing values of the union
// interface type T.
type Registry[T any] struct {
	union      string
	mu         sync.RWMutex
	decoders   map[string]func(*yaml.Node) (T, error)
	defaultTag string
}

// New creates a registry for the named union. The name appears in
// resolution error messages.
func New[T any](union string) *Registry[T] {
	return &Registry[T]{
		union:    union,
		decoders: make(map[string]func(*yaml.Node) (T, error)),
	}
}

// Register adds a concrete type under the given tag. The wrap function
// lifts the decoded concrete value into the union type; it is typically the
// identity (`func(c CONCRETE) UNION { return c }`). Tags are matched
// case-insensitively.
func Register[T any, C any](r *Registry[T], tag string, wrap func(C) T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[strings.ToLower(tag)] = func(node *yaml.Node) (T, error) {
		var c C
		if err := node.Decode(&c); err != nil {
			var zero T
			return zero, fmt.Errorf("%s[%s]: %w", r.union, tag, err)
		}
		v := wrap(c)
		if validator, ok := any(v).(Validator); ok {
			if err := validator.Validate(); err != nil {
				var zero T
				return zero, fmt.Errorf("%s[%s]: %w", r.union, tag, err)
			}
		}
		return v, nil
	}
}

// SetDefault names the tag assumed when a mapping carries no model_type.
func (r *Registry[T]) SetDefault(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultTag = strings.ToLower(tag)
}

// Tags returns the registered tags, sorted, for error messages and
// introspection commands.
func (r *Registry[T]) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.decoders))
	for tag := range r.decoders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Resolve decodes a YAML mapping into the concrete type named by its
// model_type tag and validates the result.
func (r *Registry[T]) Resolve(node *yaml.Node) (T, error) {
	var zero T
	var probe struct {
		ModelType string `yaml:"model_type"`
	}
	if err := node.Decode(&probe); err != nil {
		return zero, fmt.Errorf("%s: %w", r.union, err)
	}
	tag := strings.ToLower(probe.ModelType)

	r.mu.RLock()
	if tag == "" {
		tag = r.defaultTag
	}
	decode, ok := r.decoders[tag]
	r.mu.RUnlock()

	if tag == "" {
		return zero, fmt.Errorf("%s: missing model_type, expected one of %s",
			r.union, strings.Join(r.Tags(), ", "))
	}
	if !ok {
		return zero, fmt.Errorf("%s: %w %q, expected one of %s",
			r.union, ErrUnknownModelType, probe.ModelType, strings.Join(r.Tags(), ", "))
	}
	return decode(node)
}
