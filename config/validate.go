package config

import (
	"strings"

	"github.com/teranos/jcodemodel/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Format.TypeNames {
	case "", TypeNamesFull, TypeNamesSimple:
	default:
		return errors.WithHintf(
			errors.Newf("format.type_names must be %q or %q, got %q", TypeNamesFull, TypeNamesSimple, c.Format.TypeNames),
			"set format.type_names = %q in %s", TypeNamesFull, ProjectFile)
	}

	// Indentation must not break lines
	if strings.ContainsAny(c.Format.Indent, "\r\n") {
		return errors.Newf("format.indent must not contain line breaks, got %q", c.Format.Indent)
	}

	if c.Output.Encoding != "" && !strings.EqualFold(c.Output.Encoding, DefaultEncoding) {
		return errors.Newf("output.encoding %q not supported, only %s", c.Output.Encoding, DefaultEncoding)
	}

	// Watch debounce: 0 = no debounce, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
