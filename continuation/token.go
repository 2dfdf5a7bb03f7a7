package continuation

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the browse continuation envelope.
const (
	fieldBrowse   protowire.Number = 80226972
	fieldBrowseID protowire.Number = 2
	fieldParams   protowire.Number = 3
	fieldListID   protowire.Number = 35

	fieldPageCount protowire.Number = 1
	fieldPosition  protowire.Number = 15
	fieldOffset    protowire.Number = 1

	positionPrefix = "PT:"
	pageSize       = 100
)

// PackOffset builds the playlist continuation token the server would issue
// for the page starting at offset. A channel id is mapped to its uploads
// playlist.
func PackOffset(listID string, offset int) (Token, error) {
	if offset < 0 {
		return Token{}, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	if listID == "" {
		return Token{}, fmt.Errorf("%w: empty playlist id", ErrInvalidToken)
	}
	if strings.HasPrefix(listID, "UC") {
		listID = "UU" + strings.TrimPrefix(listID, "UC")
	}

	pos := protowire.AppendTag(nil, fieldOffset, protowire.VarintType)
	pos = protowire.AppendVarint(pos, uint64(offset))

	params := protowire.AppendTag(nil, fieldPageCount, protowire.VarintType)
	params = protowire.AppendVarint(params, uint64(offset/pageSize))
	params = protowire.AppendTag(params, fieldPosition, protowire.BytesType)
	params = protowire.AppendString(params, positionPrefix+base64.RawURLEncoding.EncodeToString(pos))

	var inner []byte
	inner = protowire.AppendTag(inner, fieldBrowseID, protowire.BytesType)
	inner = protowire.AppendString(inner, "VL"+listID)
	inner = protowire.AppendTag(inner, fieldParams, protowire.BytesType)
	inner = protowire.AppendString(inner, encode(params))
	inner = protowire.AppendTag(inner, fieldListID, protowire.BytesType)
	inner = protowire.AppendString(inner, listID)

	outer := protowire.AppendTag(nil, fieldBrowse, protowire.BytesType)
	outer = protowire.AppendBytes(outer, inner)

	return Token{Family: FamilyPlaylist, Value: encode(outer), Synthesized: true}, nil
}

// BrowseToken is the decoded envelope of a browse family continuation.
type BrowseToken struct {
	BrowseID string
	Params   string
	ListID   string
}

// DecodeBrowse decodes a browse or playlist continuation. Server tokens
// decode too, but only the envelope fields are interpreted.
func DecodeBrowse(token string) (*BrowseToken, error) {
	raw, err := decode(token)
	if err != nil {
		return nil, err
	}
	outer, err := parseMessage(raw)
	if err != nil {
		return nil, err
	}
	body, ok := outer.bytes[fieldBrowse]
	if !ok {
		return nil, fmt.Errorf("%w: no browse envelope", ErrInvalidToken)
	}
	inner, err := parseMessage(body)
	if err != nil {
		return nil, err
	}

	bt := &BrowseToken{
		BrowseID: string(inner.bytes[fieldBrowseID]),
		Params:   string(inner.bytes[fieldParams]),
		ListID:   string(inner.bytes[fieldListID]),
	}
	if bt.ListID == "" {
		bt.ListID = strings.TrimPrefix(bt.BrowseID, "VL")
	}
	return bt, nil
}

// Offset returns the playlist position encoded in the params, if any.
func (b *BrowseToken) Offset() (int, error) {
	raw, err := decode(b.Params)
	if err != nil {
		return 0, err
	}
	params, err := parseMessage(raw)
	if err != nil {
		return 0, err
	}
	pos, ok := params.bytes[fieldPosition]
	if !ok || !strings.HasPrefix(string(pos), positionPrefix) {
		return 0, fmt.Errorf("%w: no playlist position", ErrInvalidToken)
	}
	posRaw, err := decode(strings.TrimPrefix(string(pos), positionPrefix))
	if err != nil {
		return 0, err
	}
	msg, err := parseMessage(posRaw)
	if err != nil {
		return 0, err
	}
	offset, ok := msg.varints[fieldOffset]
	if !ok {
		return 0, fmt.Errorf("%w: no offset", ErrInvalidToken)
	}
	return int(offset), nil
}

// encode produces the padded URL-safe alphabet, form escaped, as the
// server does.
func encode(b []byte) string {
	return url.QueryEscape(base64.URLEncoding.EncodeToString(b))
}

// decode accepts padded or unpadded, escaped or raw URL-safe base64 and
// the standard alphabet.
func decode(s string) ([]byte, error) {
	if strings.Contains(s, "%") {
		if unescaped, err := url.QueryUnescape(s); err == nil {
			s = unescaped
		}
	}
	s = strings.NewReplacer("+", "-", "/", "_").Replace(strings.TrimSpace(s))
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return b, nil
}

// message holds the scalar and length-delimited fields of one protobuf
// message. Repeated fields keep their last value.
type message struct {
	bytes   map[protowire.Number][]byte
	varints map[protowire.Number]uint64
}

func parseMessage(b []byte) (message, error) {
	m := message{
		bytes:   map[protowire.Number][]byte{},
		varints: map[protowire.Number]uint64{},
	}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return m, fmt.Errorf("%w: %w", ErrInvalidToken, protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return m, fmt.Errorf("%w: %w", ErrInvalidToken, protowire.ParseError(n))
			}
			m.bytes[num] = v
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return m, fmt.Errorf("%w: %w", ErrInvalidToken, protowire.ParseError(n))
			}
			m.varints[num] = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return m, fmt.Errorf("%w: %w", ErrInvalidToken, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return m, nil
}
