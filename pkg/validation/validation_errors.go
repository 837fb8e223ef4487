package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "field.tag" to the message the editor form shows
// inline. Fields without an entry fall back to a generated message.
var fieldMessages = map[string]string{
	"name.required":        "Name is required.",
	"name.min":             "Name must be at least 2 characters.",
	"description.required": "Description is required.",
	"description.min":      "Description must be at least 10 characters.",
	"slug.required":        "Slug is required.",
	"slug.min":             "Slug must be at least 3 characters.",
	"slug.max":             "Slug must be at most 50 characters.",
	"slug.slug":            "Slug can only contain lowercase letters, numbers, hyphens, and underscores.",
	"theme.required":       "Theme is required.",
	"theme.oneof":          "Theme must be one of: minimal, gradient, dark.",
}

// Fields converts a validator error into a field-keyed map of
// human-readable messages. Returns nil if err is not a validation error.
func Fields(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Field() + "." + fe.Tag()
		if msg, ok := fieldMessages[key]; ok {
			fields[fe.Field()] = msg
			continue
		}
		fields[fe.Field()] = fmt.Sprintf("%s failed on the %s rule.", fe.Field(), fe.Tag())
	}
	return fields
}

// CheckSocialLinks validates a platform -> URL map: every key must be a
// known platform and every non-empty value an absolute URL. Violations are
// keyed "social_links.<platform>" so the form can highlight the exact row.
func CheckSocialLinks(links map[string]string, knownPlatforms []string) map[string]string {
	known := make(map[string]bool, len(knownPlatforms))
	for _, p := range knownPlatforms {
		known[p] = true
	}

	fields := make(map[string]string)
	for platform, link := range links {
		if !known[platform] {
			fields["social_links."+platform] = fmt.Sprintf(
				"Unknown platform %q. Supported platforms: %s.", platform, strings.Join(sorted(knownPlatforms), ", "))
			continue
		}
		if link != "" && !IsAbsoluteURL(link) {
			fields["social_links."+platform] = "Link must be a valid URL."
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
