// Package template expands commit message templates against positional arguments.
//
// A template is plain text with two kinds of tokens:
//
//	$N   the N-th argument (N is a single digit, 1-9)
//	$N+  the N-th argument and every argument after it, joined by spaces
//
// Any other "$" is literal text.
package template

import (
	"strings"
)

// Kind distinguishes literal text from argument references
type Kind int

const (
	// Literal is plain text copied to the output
	Literal Kind = iota
	// Positional references one argument ($N) or the rest of the arguments ($N+)
	Positional
)

// Token is a single element of a parsed template
type Token struct {
	Kind  Kind
	Text  string // literal text, or the raw token for positional tokens
	Index int    // 1-based argument index
	Rest  bool
}

// key identifies the value a positional token resolves to
type key struct {
	index int
	rest  bool
}

func (t Token) key() key {
	return key{index: t.Index, rest: t.Rest}
}

// Template is a tokenized commit message template
type Template struct {
	raw    string
	tokens []Token
}

// Parse tokenizes a template in a single left-to-right pass
func Parse(raw string) *Template {
	var tokens []Token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] != '$' || i+1 >= len(raw) || raw[i+1] < '1' || raw[i+1] > '9' {
			lit.WriteByte(raw[i])
			continue
		}

		flush()
		tok := Token{Kind: Positional, Index: int(raw[i+1] - '0')}
		end := i + 2
		if end < len(raw) && raw[end] == '+' {
			tok.Rest = true
			end++
		}
		tok.Text = raw[i:end]
		tokens = append(tokens, tok)
		i = end - 1
	}
	flush()

	return &Template{raw: raw, tokens: tokens}
}

// String returns the raw template
func (t *Template) String() string {
	return t.raw
}

// Tokens returns the parsed token stream
func (t *Template) Tokens() []Token {
	return t.tokens
}

// positionals returns the distinct positional tokens in order of first appearance
func (t *Template) positionals() []Token {
	seen := make(map[key]bool)
	var result []Token
	for _, tok := range t.tokens {
		if tok.Kind != Positional || seen[tok.key()] {
			continue
		}
		seen[tok.key()] = true
		result = append(result, tok)
	}
	return result
}
