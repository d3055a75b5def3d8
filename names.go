package hxlife

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// FormatName builds a custom element name. Names must contain a dash, so a
// prefix without one is namespaced under "x-". A non-zero suffix is appended.
func FormatName(prefix string, suffix int) string {
	if prefix == "" {
		prefix = "element"
	}
	if !strings.Contains(prefix, "-") {
		prefix = "x-" + prefix
	}
	if suffix != 0 {
		return prefix + "-" + strconv.Itoa(suffix)
	}
	return prefix
}

// GenerateName returns the first name derived from prefix that is not yet
// registered. Go-style prefixes are kebab-cased with acronyms kept whole:
// "HTMLButton" becomes "html-button".
func (reg *DefinitionRegistry) GenerateName(prefix string) string {
	prefix = strcase.ToKebab(prefix)
	for suffix := 0; ; suffix++ {
		name := FormatName(prefix, suffix)
		if _, taken := reg.Get(name); !taken {
			return name
		}
	}
}
