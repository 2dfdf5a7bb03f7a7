package innertube

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Node is one renderer fragment of a response. On the wire it is an object
// with a single meaningful key naming the variant ("videoRenderer",
// "shelfRenderer", ...) whose value is the variant payload.
//
// Kind is empty when the fragment carries no variant key, or is not an
// object at all; Raw then holds the fragment as received.
type Node struct {
	Kind string
	Raw  json.RawMessage
}

// bookkeeping keys that sit next to the variant key and never select it.
var metaKeys = map[string]bool{
	"trackingParams":      true,
	"clickTrackingParams": true,
	"loggingDirectives":   true,
	"commandMetadata":     true,
}

// UnmarshalJSON selects the variant key. Non-object input is kept as an
// unset node instead of failing the enclosing response.
func (n *Node) UnmarshalJSON(data []byte) error {
	*n = Node{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		n.Raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		n.Raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if !metaKeys[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		n.Raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}
	sort.Strings(keys)
	n.Kind = keys[0]
	n.Raw = fields[keys[0]]
	return nil
}

// MarshalJSON writes the node back in its wire shape.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.Kind == "" {
		if len(n.Raw) == 0 {
			return []byte("null"), nil
		}
		return n.Raw, nil
	}
	return json.Marshal(map[string]json.RawMessage{n.Kind: n.Raw})
}

// IsZero reports whether the node carries neither a variant nor a payload.
func (n Node) IsZero() bool {
	return n.Kind == "" && len(n.Raw) == 0
}

// Decode unmarshals the variant payload into v.
func (n Node) Decode(v any) error {
	if len(n.Raw) == 0 {
		return fmt.Errorf("decode %s: empty payload", n.Kind)
	}
	if err := json.Unmarshal(n.Raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", n.Kind, err)
	}
	return nil
}

// NewNode builds a node of the given kind from a payload value.
func NewNode(kind string, payload any) (Node, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Node{}, fmt.Errorf("encode %s: %w", kind, err)
	}
	return Node{Kind: kind, Raw: raw}, nil
}

// ParseNodes decodes a JSON array of renderer fragments.
func ParseNodes(data []byte) ([]Node, error) {
	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("decode nodes: %w", err)
	}
	return nodes, nil
}
