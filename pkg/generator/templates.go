package generator

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// hardcodedFallbacks covers levels with no template anywhere in the
// config, not even under the default family.
var hardcodedFallbacks = map[string]string{
	"INFO":    "Operation completed successfully in {service}",
	"WARNING": "Warning in {service}: Potential issue detected",
	"ERROR":   "Error in {service}: Operation failed",
	"DEBUG":   "Debug info from {service}: Processing data",
}

// messageTemplate picks a template for the given service and level:
// service-specific first, then the default family, then a hardcoded
// fallback.
func (g *Generator) messageTemplate(service, level string) string {
	if templates := g.cfg.ServiceMessages[service][level]; len(templates) > 0 {
		return templates[g.rng.Intn(len(templates))]
	}
	if templates := g.cfg.ServiceMessages["default"][level]; len(templates) > 0 {
		return templates[g.rng.Intn(len(templates))]
	}
	if tmpl, ok := hardcodedFallbacks[level]; ok {
		return tmpl
	}
	return fmt.Sprintf("[%s] Log message from %s", level, service)
}

// renderTemplate substitutes {placeholder} tokens from the context map.
// If any placeholder is unresolved the whole message falls back to an
// annotated literal; generation never fails on a bad template.
func renderTemplate(template, level string, ctx map[string]string) string {
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if _, ok := ctx[m[1]]; !ok {
			return fmt.Sprintf("[%s] %s (formatting error)", level, template)
		}
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(tok string) string {
		return ctx[strings.Trim(tok, "{}")]
	})
}
