package speakable

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale canonicalizes a locale identifier: trimmed, lowercased,
// underscores replaced with hyphens ("en_US" -> "en-us").
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}

// primaryCode reduces a specific locale to its base form ("en-us" -> "en").
func primaryCode(locale string) string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return ""
	}

	if tag, err := language.Parse(normalized); err == nil {
		base, confidence := tag.Base()
		if confidence != language.No {
			if value := base.String(); value != "" && value != "und" {
				return value
			}
		}
	}

	if idx := strings.Index(normalized, "-"); idx > 0 {
		return normalized[:idx]
	}
	return normalized
}

// localeParentChain walks a locale toward its base form, most specific
// first ("en-us" -> ["en"]).
func localeParentChain(locale string) []string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{normalized: {}}

	if tag, err := language.Parse(normalized); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := normalizeLocale(parent.String())
			if value == "" || value == "und" {
				break
			}
			if _, exists := seen[value]; exists {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
	}

	for current := normalized; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}
