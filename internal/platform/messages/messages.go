// Package messages resolves client-facing message templates. The default
// catalog is embedded from messages.yaml and parsed with koanf so that keys
// use the same dotted form as the service configuration:
//
//	catalog := messages.MustDefault()
//	catalog.Message("exception.not_found", 42)
//
// Templates use positional placeholders ({0}, {1}, ...). Unknown keys resolve
// to the key itself so a missing translation never hides the failure.
package messages

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.MessageResolver = (*Catalog)(nil)

//go:embed messages.yaml
var defaultCatalog []byte

// Catalog is an immutable set of message templates keyed by dotted names.
// Safe for concurrent use.
type Catalog struct {
	templates map[string]string
}

// Load parses a YAML message catalog.
func Load(data []byte) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing message catalog: %w", err)
	}

	templates := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		templates[key] = k.String(key)
	}
	return &Catalog{templates: templates}, nil
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

// MustDefault is like Default but panics if the embedded catalog is invalid.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Message resolves key and substitutes positional arguments.
func (c *Catalog) Message(key string, args ...any) string {
	tmpl, ok := c.templates[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
