package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/f3rmion/kex/curves"
	"github.com/f3rmion/kex/ecdh"
	"github.com/f3rmion/kex/eckey"
	"github.com/f3rmion/kex/field"
	"github.com/f3rmion/kex/kdf"
)

var (
	privateFlag = &cli.StringFlag{
		Name:     "private",
		Usage:    "private scalar, hex",
		Required: true,
		EnvVars:  []string{"ECDHTOOL_PRIVATE"},
	}
	peerFlag = &cli.StringFlag{
		Name:     "peer",
		Usage:    "peer public key, uncompressed SEC 1 hex",
		Required: true,
	}
	kdfFlag = &cli.StringFlag{
		Name:  "kdf",
		Usage: "key derivation: none, sha256, blake2b or hkdf",
		Value: "none",
	}
	infoFlag = &cli.StringFlag{
		Name:  "info",
		Usage: "context string passed to the key derivation",
	}
	lengthFlag = &cli.IntFlag{
		Name:  "length",
		Usage: "derived key length in bytes",
		Value: 32,
	}
	iterationsFlag = &cli.IntFlag{
		Name:  "n",
		Usage: "inversions per strategy",
		Value: 1000,
	}

	curvesCommand = &cli.Command{
		Name:   "curves",
		Usage:  "List supported curves and their inversion strategies",
		Action: listCurves,
	}
	keygenCommand = &cli.Command{
		Name:   "keygen",
		Usage:  "Generate a key pair",
		Flags:  []cli.Flag{curveFlag},
		Action: keygen,
	}
	agreeCommand = &cli.Command{
		Name:   "agree",
		Usage:  "Print the little-endian shared secret, or a key derived from it",
		Flags:  []cli.Flag{curveFlag, privateFlag, peerFlag, kdfFlag, infoFlag, lengthFlag},
		Action: agree,
	}
	benchInverseCommand = &cli.Command{
		Name:   "bench-inverse",
		Usage:  "Time Fermat inversion against the registered strategy",
		Flags:  []cli.Flag{curveFlag, iterationsFlag},
		Action: benchInverse,
	}
)

func lookupCurve(ctx *cli.Context) (*curves.Entry, error) {
	name := ctx.String(curveFlag.Name)
	e, ok := curves.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown curve %q (have %s)", name, strings.Join(curves.Names(), ", "))
	}
	return e, nil
}

func listCurves(ctx *cli.Context) error {
	w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBITS\tBASE INVERTER\tSCALAR INVERTER")
	for _, name := range curves.Names() {
		e, _ := curves.Lookup(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, e.BaseField.SizeInBits(),
			e.BaseField.Inverter().Name(), e.ScalarField.Inverter().Name())
	}
	return w.Flush()
}

func keygen(ctx *cli.Context) error {
	e, err := lookupCurve(ctx)
	if err != nil {
		return err
	}
	k, err := eckey.GenerateKey(e.Curve, rand.Reader)
	if err != nil {
		return err
	}
	size := e.ScalarField.ByteLen()
	fmt.Fprintf(ctx.App.Writer, "private: %x\n", k.D.FillBytes(make([]byte, size)))
	fmt.Fprintf(ctx.App.Writer, "public:  %x\n", k.PublicKey.Bytes())
	return nil
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return b, nil
}

func agree(ctx *cli.Context) error {
	e, err := lookupCurve(ctx)
	if err != nil {
		return err
	}
	d, err := decodeHex("private key", ctx.String(privateFlag.Name))
	if err != nil {
		return err
	}
	priv, err := eckey.NewPrivateKey(e.Curve, new(big.Int).SetBytes(d))
	if err != nil {
		return err
	}
	p, err := decodeHex("peer key", ctx.String(peerFlag.Name))
	if err != nil {
		return err
	}
	pub, err := eckey.ParsePublicKey(e.Curve, p)
	if err != nil {
		return err
	}

	ka := ecdh.New()
	if err := ka.Init(priv); err != nil {
		return err
	}
	if err := ka.DoPhase(pub, true); err != nil {
		return err
	}
	secret, err := ka.GenerateSecret()
	if err != nil {
		return err
	}

	name := ctx.String(kdfFlag.Name)
	if name == "none" {
		fmt.Fprintf(ctx.App.Writer, "%x\n", secret)
		return nil
	}
	deriver, err := kdf.ByName(name)
	if err != nil {
		return err
	}
	key, err := deriver.Derive(secret, []byte(ctx.String(infoFlag.Name)), ctx.Int(lengthFlag.Name))
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%x\n", key)
	return nil
}

func benchInverse(ctx *cli.Context) error {
	e, err := lookupCurve(ctx)
	if err != nil {
		return err
	}
	n := ctx.Int(iterationsFlag.Name)
	if n <= 0 {
		return errors.New("n must be positive")
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tSTRATEGY\tPER OP")
	for _, f := range []struct {
		label string
		f     *field.Field
	}{
		{"base", e.BaseField},
		{"scalar", e.ScalarField},
	} {
		inputs, err := randomElements(f.f, n)
		if err != nil {
			return err
		}
		strategies := []field.Inverter{field.Fermat}
		if inv := f.f.Inverter(); inv.Name() != field.Fermat.Name() {
			strategies = append(strategies, inv)
		}
		for _, s := range strategies {
			fmt.Fprintf(w, "%s\t%s\t%v\n", f.label, s.Name(), timeInverter(s, inputs))
		}
	}
	return w.Flush()
}

func randomElements(f *field.Field, n int) ([]field.Element, error) {
	out := make([]field.Element, n)
	buf := make([]byte, f.ByteLen()+8)
	for i := range out {
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		out[i] = f.FromBytes(buf)
	}
	return out, nil
}

func timeInverter(inv field.Inverter, inputs []field.Element) time.Duration {
	start := time.Now()
	for _, x := range inputs {
		inv.Invert(x)
	}
	return time.Since(start) / time.Duration(len(inputs))
}
