// Package basespec parses textual base specifications given on the command
// line or in config files.
//
// A spec is one of:
//
//	16          an integer base
//	hex         a named base (see Presets) or a base defined in the config file
//	a,b,c       a comma separated list of symbols
//	foo bar baz a white space separated list of symbols
package basespec

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/capitalone/bases"
)

// ErrUnknownBase is returned for a spec that names no known base.
var ErrUnknownBase = errors.New("unknown base")

// Named is a base with a name.
type Named struct {
	Name   string
	Base   bases.Base
	Custom bool
}

// Presets are the built-in named bases. Aliases map to the same Base.
var Presets = map[string]bases.Base{
	"binary":  bases.Binary,
	"bin":     bases.Binary,
	"octal":   bases.MustBase(8),
	"oct":     bases.MustBase(8),
	"decimal": bases.Decimal,
	"dec":     bases.Decimal,
	"hex":     bases.Hex,
	"b62":     bases.B62,
	"base62":  bases.B62,
	"b64":     bases.B64,
	"base64":  bases.B64,
}

// canonical lists one name per preset, in display order.
var canonical = []string{"binary", "octal", "decimal", "hex", "b62", "b64"}

// Resolver resolves specs against the presets and a set of custom bases.
type Resolver struct {
	custom map[string]bases.Base
}

// NewResolver builds a Resolver from custom bases given as symbol lists.
// Custom names shadow presets.
func NewResolver(custom map[string][]string) (*Resolver, error) {
	r := &Resolver{custom: make(map[string]bases.Base, len(custom))}
	for name, symbols := range custom {
		b, err := bases.NewBase(symbols)
		if err != nil {
			return nil, fmt.Errorf("custom base %q: %w", name, err)
		}
		r.custom[name] = b
	}
	return r, nil
}

// Parse returns the base described by spec.
func (r *Resolver) Parse(spec string) (bases.Base, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return bases.Base{}, fmt.Errorf("%w: empty spec", ErrUnknownBase)
	}

	if n, err := strconv.Atoi(s); err == nil {
		return bases.NewBase(n)
	}
	if b, ok := r.custom[s]; ok {
		return b, nil
	}
	if b, ok := Presets[strings.ToLower(s)]; ok {
		return b, nil
	}

	switch {
	case strings.Contains(s, ","):
		symbols := strings.Split(s, ",")
		for i := range symbols {
			symbols[i] = strings.TrimSpace(symbols[i])
		}
		return bases.NewBase(symbols)
	case strings.IndexFunc(s, unicode.IsSpace) >= 0:
		return bases.NewBase(strings.Fields(s))
	}

	return bases.Base{}, fmt.Errorf("%w: %q", ErrUnknownBase, spec)
}

// Names returns the presets followed by the custom bases sorted by name.
func (r *Resolver) Names() []Named {
	ret := make([]Named, 0, len(canonical)+len(r.custom))
	for _, name := range canonical {
		ret = append(ret, Named{Name: name, Base: Presets[name]})
	}

	names := make([]string, 0, len(r.custom))
	for name := range r.custom {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		ret = append(ret, Named{Name: name, Base: r.custom[name], Custom: true})
	}
	return ret
}
