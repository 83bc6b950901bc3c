package defaultenc

import (
	"strings"

	"github.com/katalvlaran/abasp/errors"
)

// Style selects how non-fact rules are rendered.
type Style string

const (
	// StyleFormula renders rules as negated-conjunction formulas.
	StyleFormula Style = "formula"
	// StyleSchema renders rules as strictRule/default{n} schema facts.
	StyleSchema Style = "schema"
)

// ErrUnknownStyle indicates a style name other than formula or schema.
var ErrUnknownStyle = errors.New("defaultenc: unknown style")

// ParseStyle maps a case-insensitive name to a Style. The empty string
// selects StyleFormula.
func ParseStyle(name string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(name))) {
	case "", StyleFormula:
		return StyleFormula, nil
	case StyleSchema:
		return StyleSchema, nil
	default:
		return "", errors.Wrapf(ErrUnknownStyle, "ParseStyle: %q (supported: formula, schema)", name)
	}
}

// Option configures Encode.
type Option func(*options)

type options struct {
	style Style
}

// WithStyle selects the rule style. Panics on an unknown style.
func WithStyle(s Style) Option {
	if s != StyleFormula && s != StyleSchema {
		panic("defaultenc: WithStyle(unknown style)")
	}
	return func(o *options) { o.style = s }
}
