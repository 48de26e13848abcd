package inventory

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"cabtour/utils"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s and joins its alphanumeric runs with single hyphens.
func Slugify(s string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

type slugChecker func(ctx context.Context, slug, excludeID string) (bool, error)

// resolveSlug validates an explicit slug, or derives one from title and
// suffixes it until it is free.
func resolveSlug(ctx context.Context, exists slugChecker, explicit, title, excludeID string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		slug := Slugify(explicit)
		if slug == "" {
			return "", utils.Validation("slug", "slug must contain letters or digits")
		}
		taken, err := exists(ctx, slug, excludeID)
		if err != nil {
			return "", utils.Dependency("failed to check slug", err)
		}
		if taken {
			return "", utils.Conflict("duplicate_slug", "slug "+slug+" is already used")
		}
		return slug, nil
	}

	base := Slugify(title)
	if base == "" {
		return "", utils.Validation("title", "title must contain letters or digits")
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, slug, excludeID)
		if err != nil {
			return "", utils.Dependency("failed to check slug", err)
		}
		if !taken {
			return slug, nil
		}
		if i > 50 {
			return "", utils.Conflict("duplicate_slug", "could not derive a free slug from the title")
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
