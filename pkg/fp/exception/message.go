package exception

import (
	"maps"
	"regexp"
)

// Tokens maps placeholder names to their rendered values.
type Tokens map[string]string

// Context holds diagnostics that are kept out of the rendered message.
type Context map[string]any

// tokenPattern matches {{name}} where name is word characters or '$'.
var tokenPattern = regexp.MustCompile(`\{\{([\w$]+)\}\}`)

// Message is an unrendered template with its tokens.
type Message struct {
	Template string `json:"template" yaml:"template"`
	Tokens   Tokens `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

func NewMessage(template string, tokens Tokens) Message {
	return Message{Template: template, Tokens: maps.Clone(tokens)}
}

// String renders the template. Every occurrence of a known placeholder is
// replaced; unknown placeholders are left verbatim.
func (m Message) String() string {
	if len(m.Tokens) == 0 {
		return m.Template
	}
	return tokenPattern.ReplaceAllStringFunc(m.Template, func(placeholder string) string {
		if v, ok := m.Tokens[placeholder[2:len(placeholder)-2]]; ok {
			return v
		}
		return placeholder
	})
}
