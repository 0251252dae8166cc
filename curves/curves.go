// Package curves is the read-only registry of curves that key agreement can
// run on. Each entry pairs a [curve.Curve] with the prime fields built from
// its parameters: the base field GF(P) for coordinate validation and the
// scalar field GF(N) for private scalars.
//
// The registry is populated at package initialization and never changes.
package curves

import (
	"fmt"
	"sort"

	"github.com/f3rmion/kex/curve"
	"github.com/f3rmion/kex/curve/bn254"
	"github.com/f3rmion/kex/curve/koblitz"
	"github.com/f3rmion/kex/curve/nist"
	"github.com/f3rmion/kex/field"
)

// Entry is a registered curve together with its fields.
type Entry struct {
	Curve       curve.Curve
	BaseField   *field.Field
	ScalarField *field.Field
}

// Name returns the curve name.
func (e *Entry) Name() string {
	return e.Curve.Params().Name
}

var registry = build(
	nist.P256(),
	nist.P384(),
	nist.P521(),
	koblitz.Secp256k1(),
	bn254.G1(),
)

var aliases = map[string]string{
	"secp256r1":  "P-256",
	"prime256v1": "P-256",
	"secp384r1":  "P-384",
	"secp521r1":  "P-521",
	"alt_bn128":  "bn254",
}

func build(cs ...curve.Curve) map[string]*Entry {
	m := make(map[string]*Entry, len(cs))
	for _, c := range cs {
		e, err := newEntry(c)
		if err != nil {
			panic(err)
		}
		m[e.Name()] = e
	}
	return m
}

func newEntry(c curve.Curve) (*Entry, error) {
	params := c.Params()
	base, err := field.New(params.P)
	if err != nil {
		return nil, fmt.Errorf("curves: %s base field: %w", params.Name, err)
	}
	scalar, err := field.New(params.N)
	if err != nil {
		return nil, fmt.Errorf("curves: %s scalar field: %w", params.Name, err)
	}
	return &Entry{Curve: c, BaseField: base, ScalarField: scalar}, nil
}

// Lookup returns the entry registered under name or one of its aliases
// (secp256r1, prime256v1, alt_bn128, ...).
func Lookup(name string) (*Entry, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	e, ok := registry[name]
	return e, ok
}

// For returns the entry for c. It matches on the curve name and then checks
// that the parameters agree, so a foreign curve reusing a registered name is
// not accepted.
func For(c curve.Curve) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	params := c.Params()
	e, ok := registry[params.Name]
	if !ok {
		return nil, false
	}
	known := e.Curve.Params()
	if known.P.Cmp(params.P) != 0 || known.N.Cmp(params.N) != 0 ||
		known.Gx.Cmp(params.Gx) != 0 || known.Gy.Cmp(params.Gy) != 0 {
		return nil, false
	}
	return e, true
}

// Names returns the canonical names of all registered curves, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
