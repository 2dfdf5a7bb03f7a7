package signature

import (
	"context"
	"fmt"
	"net/url"

	"ytkit/innertube"
)

// ResolvedFormat is a format whose URL can be fetched directly.
type ResolvedFormat struct {
	innertube.Format
	// URL is the resolved URL. It shadows Format.URL.
	URL string `json:"url"`
}

// Apply resolves the URL of f with p. The signature cipher, when present,
// is descrambled into its target parameter, and the n parameter of the
// result is replaced in place.
func Apply(ctx context.Context, f innertube.Format, p *Program) (ResolvedFormat, error) {
	raw := f.URL
	if c := f.CipherString(); c != "" {
		cipher, err := innertube.ParseCipher(c)
		if err != nil {
			return ResolvedFormat{}, fmt.Errorf("itag %d: parse cipher: %w", f.Itag, err)
		}
		if cipher.URL == "" {
			return ResolvedFormat{}, fmt.Errorf("itag %d: %w", f.Itag, ErrNoURL)
		}
		u, err := url.Parse(cipher.URL)
		if err != nil {
			return ResolvedFormat{}, fmt.Errorf("itag %d: %w", f.Itag, err)
		}
		sig, err := p.DescrambleSignature(ctx, cipher.Signature)
		if err != nil {
			return ResolvedFormat{}, fmt.Errorf("itag %d: descramble signature: %w", f.Itag, err)
		}
		q := u.Query()
		q.Set(cipher.Param, sig)
		u.RawQuery = q.Encode()
		raw = u.String()
	}
	if raw == "" {
		return ResolvedFormat{}, fmt.Errorf("itag %d: %w", f.Itag, ErrNoURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ResolvedFormat{}, fmt.Errorf("itag %d: %w", f.Itag, err)
	}
	q := u.Query()
	if n := q.Get("n"); n != "" {
		out, err := p.DescrambleN(ctx, n)
		if err != nil {
			return ResolvedFormat{}, fmt.Errorf("itag %d: descramble n: %w", f.Itag, err)
		}
		q.Set("n", out)
		u.RawQuery = q.Encode()
	}
	return ResolvedFormat{Format: f, URL: u.String()}, nil
}

// ApplyAll resolves every format, stopping at the first failure.
func ApplyAll(ctx context.Context, formats []innertube.Format, p *Program) ([]ResolvedFormat, error) {
	out := make([]ResolvedFormat, 0, len(formats))
	for _, f := range formats {
		r, err := Apply(ctx, f, p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
