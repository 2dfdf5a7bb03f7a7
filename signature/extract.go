package signature

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Pattern names reported in PatternError.
const (
	PatternSignatureFunction = "signature function"
	PatternHelperObject      = "signature helper object"
	PatternNFunction         = "n function"
	PatternNFunctionArray    = "n function array"
)

const (
	jsIdent      = `[a-zA-Z0-9_$]+`
	matchTimeout = 5 * time.Second
)

func compile(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.None)
	re.MatchTimeout = matchTimeout
	return re
}

var (
	// signatureFuncRe matches the split, transform, join function over any
	// parameter name. Every step must call into the same helper object.
	signatureFuncRe = compile(`function(?:\s+` + jsIdent + `)?\((?<p>` + jsIdent + `)\)\{` +
		`\k<p>=\k<p>\.split\(""\);` +
		`(?:\k<p>=)?(?<obj>` + jsIdent + `)\.` + jsIdent + `\(\k<p>,\d+\);` +
		`(?:(?:\k<p>=)?\k<obj>\.` + jsIdent + `\(\k<p>,\d+\);)*` +
		`return \k<p>\.join\(""\)\}`)

	// nCallRe matches the call site that rewrites the n query parameter,
	// optionally through an array of function references.
	nCallRe = compile(`\.get\("n"\)\)&&\(` + jsIdent + `=(?<name>` + jsIdent + `)(?:\[(?<idx>\d+)\])?\(` + jsIdent + `\)`)

	// typeofGuardRe matches the early return that makes the n function a
	// no-op outside the full player.
	typeofGuardRe = compile(`;\s*if\s*\(\s*typeof\s+` + jsIdent + `\s*===?\s*(?:"undefined"|'undefined')\s*\)\s*return\s+` + jsIdent + `;`)

	timestampRe = compile(`(?:signatureTimestamp|sts)\s*:\s*(?<sts>\d{5})`)
)

var errUnbalanced = errors.New("unbalanced braces")

// group returns the named group of m, or "" when it did not participate.
func group(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// extractSignatureFunction returns the descramble function expression and
// the name of the helper object it calls.
func extractSignatureFunction(src string) (fn, helper string, ok bool) {
	m, err := signatureFuncRe.FindStringMatch(src)
	if err != nil || m == nil {
		return "", "", false
	}
	return m.String(), group(m, "obj"), true
}

// extractHelperObject returns the object literal named name as a
// declaration statement.
func extractHelperObject(src, name string) (string, bool) {
	re := compile(`(?:var\s+|[;,\n]\s*)` + regexp2.Escape(name) + `\s*=\s*\{`)
	m, err := re.FindStringMatch(src)
	if err != nil || m == nil {
		return "", false
	}
	open := m.Index + m.Length - 1
	end, err := closingBrace(src, open)
	if err != nil {
		return "", false
	}
	return "var " + name + "=" + src[open:end+1] + ";", true
}

// extractNFunction returns the n descramble function expression with its
// typeof guard removed. The pattern name of the first failed lookup is
// returned when it cannot be found.
func extractNFunction(src string) (string, string) {
	m, err := nCallRe.FindStringMatch(src)
	if err != nil || m == nil {
		return "", PatternNFunction
	}
	name := group(m, "name")

	if idx := group(m, "idx"); idx != "" {
		resolved, ok := resolveArray(src, name, idx)
		if !ok {
			return "", PatternNFunctionArray
		}
		name = resolved
	}

	fn, ok := extractFunction(src, name)
	if !ok {
		return "", PatternNFunction
	}
	stripped, err := typeofGuardRe.Replace(fn, ";", -1, -1)
	if err != nil {
		return fn, ""
	}
	return stripped, ""
}

// resolveArray returns the element idx of the array literal named name.
func resolveArray(src, name, idx string) (string, bool) {
	re := compile(`var\s+` + regexp2.Escape(name) + `\s*=\s*\[(?<list>[^\]]+)\]`)
	m, err := re.FindStringMatch(src)
	if err != nil || m == nil {
		return "", false
	}
	i, err := strconv.Atoi(idx)
	if err != nil {
		return "", false
	}
	items := strings.Split(group(m, "list"), ",")
	if i < 0 || i >= len(items) {
		return "", false
	}
	return strings.TrimSpace(items[i]), true
}

// extractFunction returns the function named name, declared either as an
// assignment or as a function statement, as an expression.
func extractFunction(src, name string) (string, bool) {
	quoted := regexp2.Escape(name)
	re := compile(`(?:^|[;,\s])` + quoted + `\s*=\s*function\s*\(|function\s+` + quoted + `\s*\(`)
	m, err := re.FindStringMatch(src)
	if err != nil || m == nil {
		return "", false
	}
	start := m.Index + strings.Index(m.String(), "function")
	open := strings.IndexByte(src[start:], '{')
	if open < 0 {
		return "", false
	}
	end, err := closingBrace(src, start+open)
	if err != nil {
		return "", false
	}
	return src[start : end+1], true
}

// extractTimestamp returns the signature timestamp of the bundle, or 0.
func extractTimestamp(src string) int {
	m, err := timestampRe.FindStringMatch(src)
	if err != nil || m == nil {
		return 0
	}
	n, _ := strconv.Atoi(group(m, "sts"))
	return n
}

// closingBrace returns the index of the brace closing the one at open,
// skipping string literals.
func closingBrace(src string, open int) (int, error) {
	depth := 0
	var quote byte
	for i := open; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, errUnbalanced
}
