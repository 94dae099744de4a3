package template

import (
	"slices"
	"strings"

	"glitter.dev/glitter/internal/config"
	glittererrors "glitter.dev/glitter/internal/errors"
)

// Expander substitutes arguments into templates
type Expander struct {
	// Rules customize individual arguments. The first rule for an index wins.
	Rules []config.ArgumentRule
	// Warn receives non-fatal problems such as an unknown case name. May be nil.
	Warn func(format string, args ...interface{})
}

// NewExpander creates an Expander for the configured rules
func NewExpander(rules []config.ArgumentRule, warn func(format string, args ...interface{})) *Expander {
	return &Expander{Rules: rules, Warn: warn}
}

// Expand parses raw and expands it against args
func (e *Expander) Expand(raw string, args []string) (string, error) {
	return e.ExpandTemplate(Parse(raw), args)
}

// ExpandTemplate resolves every positional token of tmpl against args.
// Tokens are resolved in order of first appearance so the first problem in the
// template is the one reported. Substituted values are never re-scanned.
func (e *Expander) ExpandTemplate(tmpl *Template, args []string) (string, error) {
	values := make(map[key]string)
	for _, tok := range tmpl.positionals() {
		value, err := e.resolve(tok, args)
		if err != nil {
			return "", err
		}
		values[tok.key()] = value
	}

	var b strings.Builder
	for _, tok := range tmpl.tokens {
		if tok.Kind == Literal {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(values[tok.key()])
	}
	return b.String(), nil
}

func (e *Expander) resolve(tok Token, args []string) (string, error) {
	idx := tok.Index - 1

	if tok.Rest {
		if idx >= len(args) {
			return "", glittererrors.NewMissingRestArgumentError(tok.Index)
		}
		return strings.Join(args[idx:], " "), nil
	}

	if idx >= len(args) {
		return "", glittererrors.NewMissingArgumentError(tok.Index)
	}

	value := args[idx]
	rule, ok := config.FindRule(e.Rules, tok.Index)
	if !ok {
		return value, nil
	}

	if rule.Case != "" {
		transformed, known := ApplyCase(rule.Case, value)
		if !known {
			e.warn("Found invalid case `%s`. Valid cases are %s", rule.Case, strings.Join(CaseNames, ", "))
		}
		value = transformed
	}

	if rule.TypeEnums != nil && !slices.Contains(rule.TypeEnums, value) {
		return "", glittererrors.NewInvalidEnumValueError(tok.Index, value, rule.TypeEnums)
	}

	return value, nil
}

func (e *Expander) warn(format string, args ...interface{}) {
	if e.Warn != nil {
		e.Warn(format, args...)
	}
}
