package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig flattens a go-theme selection into the renderer-facing config.
// Variant values win over base manifest values; fallbacks fill partials the
// manifest leaves undefined. Tokens double as CSS custom properties under a
// "--" prefix.
func ThemeConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	manifest := selection.Manifest
	variant, hasVariant := manifest.Variants[selection.Variant]

	partials := make(map[string]string, len(fallbacks)+len(manifest.Templates))
	for key, value := range fallbacks {
		partials[key] = value
	}
	for key, value := range manifest.Templates {
		partials[key] = value
	}
	if hasVariant {
		for key, value := range variant.Templates {
			partials[key] = value
		}
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if hasVariant {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
	}
	cfg.AssetURL = themeAssetResolver(manifest, variant, hasVariant)
	return cfg
}

func themeAssetResolver(manifest *theme.Manifest, variant theme.Variant, hasVariant bool) func(string) string {
	return func(key string) string {
		if key == "" {
			return ""
		}

		file := ""
		if hasVariant {
			file = variant.Assets.Files[key]
		}
		if file == "" {
			file = manifest.Assets.Files[key]
		}
		if file == "" {
			return ""
		}

		prefix := manifest.Assets.Prefix
		if hasVariant && variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}
