package signature

import (
	"context"
	"fmt"
	"strings"
)

const (
	signatureEntry = "descramble_signature"
	nEntry         = "descramble_n_param"
)

// Program holds the descramble functions of one player bundle.
type Program struct {
	Identity string

	// SignatureTimestamp is sent with player requests. It is 0 when the
	// bundle does not declare one.
	SignatureTimestamp int

	script Script
}

// Compile extracts the descramble functions from bundle and compiles them
// with host.
func Compile(identity string, bundle []byte, host ScriptHost) (*Program, error) {
	src := string(bundle)

	sigFn, helperName, ok := extractSignatureFunction(src)
	if !ok {
		return nil, &PatternError{Pattern: PatternSignatureFunction, Identity: identity}
	}
	helper, ok := extractHelperObject(src, helperName)
	if !ok {
		return nil, &PatternError{Pattern: PatternHelperObject, Identity: identity}
	}
	nFn, missing := extractNFunction(src)
	if missing != "" {
		return nil, &PatternError{Pattern: missing, Identity: identity}
	}

	var b strings.Builder
	b.WriteString(helper)
	b.WriteString("\nvar " + signatureEntry + "=" + sigFn + ";")
	b.WriteString("\nvar " + nEntry + "=" + nFn + ";\n")

	script, err := host.Compile("player-"+identity, b.String())
	if err != nil {
		return nil, err
	}
	return &Program{
		Identity:           identity,
		SignatureTimestamp: extractTimestamp(src),
		script:             script,
	}, nil
}

// DescrambleSignature returns the usable signature for a scrambled one.
func (p *Program) DescrambleSignature(ctx context.Context, sig string) (string, error) {
	return p.script.Invoke(ctx, signatureEntry, sig)
}

// DescrambleN returns the throttling-free value of the n query parameter.
func (p *Program) DescrambleN(ctx context.Context, n string) (string, error) {
	out, err := p.script.Invoke(ctx, nEntry, n)
	if err != nil {
		return "", err
	}
	// The n function reports its own failures as a value.
	if strings.HasPrefix(out, "enhanced_except_") {
		return "", fmt.Errorf("%w: n function failed for %q", ErrDescramble, n)
	}
	return out, nil
}
