package html

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-theme"
)

// themeContext is the template-facing projection of a renderer theme
// configuration. Field names follow the wire casing templates address.
type themeContext struct {
	Name          string            `json:"name"`
	Variant       string            `json:"variant,omitempty"`
	Tokens        map[string]string `json:"tokens,omitempty"`
	CSSVars       map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle  string            `json:"cssVarsStyle,omitempty"`
	StylesheetURL string            `json:"stylesheetURL,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) *themeContext {
	if cfg == nil {
		return nil
	}
	tc := &themeContext{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		Tokens:       copyStringMap(cfg.Tokens),
		CSSVars:      copyStringMap(cfg.CSSVars),
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		tc.StylesheetURL = cfg.AssetURL("html.stylesheet")
	}
	return tc
}

// cssVarsStyle renders custom properties as a :root block. Keys are
// sorted so repeated renders emit identical markup.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		fmt.Fprintf(&b, " %s: %s;", key, vars[key])
	}
	b.WriteString(" }")
	return b.String()
}

func copyStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
