package field

import (
	"math/big"
)

// Inverter computes multiplicative inverses for one modulus. Implementations
// are stateless and safe for concurrent use.
type Inverter interface {
	// Name identifies the strategy, e.g. "fermat" or "p256-base".
	Name() string
	// Invert returns x^-1. x must be non-zero.
	Invert(x Value) Element
}

// Fermat is the generic strategy: x^-1 = x^(p-2) by Fermat's little theorem,
// evaluated with [Element.Pow]. It is correct for every odd prime modulus.
var Fermat Inverter = fermat{}

type fermat struct{}

func (fermat) Name() string { return "fermat" }

func (fermat) Invert(x Value) Element {
	return fixedOf(x).Pow(x.Field().pm2)
}

// chainInverter raises x to p-2 with a fixed addition chain derived for one
// modulus.
type chainInverter struct {
	name    string
	modulus *big.Int
	chain   func(x Element) *MutableElement
}

func (c *chainInverter) Name() string { return c.name }

func (c *chainInverter) Invert(x Value) Element {
	if x.Field().p.Cmp(c.modulus) != 0 {
		panic("field: " + c.name + " inverter used with a different modulus")
	}
	return c.chain(fixedOf(x)).freeze()
}

// specialized maps a modulus, as lowercase hex, to its addition-chain
// inverter. It is filled during package initialization and only read
// afterwards.
var specialized = func() map[string]Inverter {
	m := make(map[string]Inverter)
	for _, c := range []*chainInverter{
		{name: "p256-base", modulus: p256Base, chain: invertP256Base},
		{name: "p256-order", modulus: p256Order, chain: invertP256Order},
		{name: "secp256k1-base", modulus: secp256k1Base, chain: invertSecp256k1Base},
		{name: "secp256k1-order", modulus: secp256k1Order, chain: invertSecp256k1Order},
	} {
		m[c.modulus.Text(16)] = c
	}
	return m
}()

// LookupInverter returns the specialized inverter registered for p, if any.
func LookupInverter(p *big.Int) (Inverter, bool) {
	inv, ok := specialized[p.Text(16)]
	return inv, ok
}

// InverterFor returns the specialized inverter for p, or [Fermat] when none
// is registered.
func InverterFor(p *big.Int) Inverter {
	if inv, ok := LookupInverter(p); ok {
		return inv
	}
	return Fermat
}
