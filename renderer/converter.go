// Package renderer normalizes the renderer fragments of innertube responses
// into a closed set of typed containers.
//
// Every wire node maps to exactly one Container. Known variants are
// projected field by field; unknown variants are kept as CategoryUnknown
// with their raw payload; a node that fails to convert becomes a
// CategoryException container without affecting its siblings. Wrapper
// variants are spliced into their parent list and pure ad shells are
// dropped by ConvertAll.
package renderer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ytkit/innertube"
	"ytkit/locale"
)

var errMissingComment = errors.New("comment thread has no comment")

// Converter converts wire nodes using one locale parser. It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	parser locale.Parser
	log    *zap.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used to report exceptions and unknown variants.
func WithLogger(log *zap.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

// NewConverter creates a converter that parses text with parser.
func NewConverter(parser locale.Parser, opts ...Option) *Converter {
	c := &Converter{parser: parser, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parser returns the locale parser of the converter.
func (c *Converter) Parser() locale.Parser {
	return c.parser
}

// handler projects one variant. It returns a container rather than a shape
// so that wrappers can hand back their child's container.
type handler func(c *Converter, n innertube.Node) (Container, error)

// handlers is the dispatch table, filled by init functions of the files
// that define each family of variants.
var handlers = map[string]handler{}

func register(h handler, variants ...string) {
	for _, v := range variants {
		if _, dup := handlers[v]; dup {
			panic("renderer: duplicate handler for " + v)
		}
		handlers[v] = h
	}
}

// Known reports whether variant has a dedicated handler.
func Known(variant string) bool {
	_, ok := handlers[variant]
	return ok
}

// KnownVariants returns the number of variants with a handler.
func KnownVariants() int {
	return len(handlers)
}

// Convert normalizes one node. It never fails: conversion errors and
// panics become CategoryException containers.
func (c *Converter) Convert(n innertube.Node) (out Container) {
	defer func() {
		if r := recover(); r != nil {
			out = c.exception(n.Kind, fmt.Errorf("panic: %v", r))
		}
	}()

	h, ok := handlers[n.Kind]
	if !ok {
		c.log.Debug("unknown renderer variant", zap.String("variant", n.Kind))
		return Container{
			Category:        CategoryUnknown,
			OriginalVariant: n.Kind,
			Data:            Unknown{Raw: n.Raw},
		}
	}

	ct, err := h(c, n)
	if err != nil {
		return c.exception(n.Kind, err)
	}
	return ct
}

// ConvertAll normalizes a list of nodes in order. Wrapper variants are
// replaced by their children and ad shells are dropped; every other node
// yields exactly one container.
func (c *Converter) ConvertAll(nodes []innertube.Node) []Container {
	out := make([]Container, 0, len(nodes))
	for _, n := range nodes {
		out = c.appendNode(out, n)
	}
	return out
}

func (c *Converter) appendNode(out []Container, n innertube.Node) []Container {
	if adShells[n.Kind] {
		return out
	}
	if _, ok := wrappers[n.Kind]; ok {
		children, err := unwrap(n)
		if err != nil {
			return append(out, c.exception(n.Kind, err))
		}
		for _, child := range children {
			out = c.appendNode(out, child)
		}
		return out
	}
	return append(out, c.Convert(n))
}

func (c *Converter) exception(variant string, err error) Container {
	c.log.Warn("renderer conversion failed",
		zap.String("variant", variant),
		zap.Error(err))
	return newContainer(variant, Exception{Message: err.Error(), Variant: variant})
}

// convertOne converts an optional child node.
func (c *Converter) convertOne(n *innertube.Node) *Container {
	if n == nil || n.IsZero() {
		return nil
	}
	ct := c.Convert(*n)
	return &ct
}

// decode is the common first step of every projection.
func decode[T any](n innertube.Node) (*T, error) {
	var v T
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}
