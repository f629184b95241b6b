package domain

import (
	"fmt"
	"regexp"
)

// Section type vocabulary. The list is advisory: renderers may add types, so
// writes only enforce that no type repeats within one portfolio.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionContact    = "contact"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionCustom     = "custom"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateSlug enforces the public URL token rules: at least three
// characters, lowercase letters, digits and hyphens only.
func ValidateSlug(slug string) error {
	if len(slug) < 3 {
		return fmt.Errorf("%w: slug must be at least 3 characters", ErrValidation)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: slug can only contain lowercase letters, numbers, and hyphens", ErrValidation)
	}
	return nil
}

// ValidateSections rejects section lists where two entries share a type.
// Sections without a type are skipped rather than rejected.
func ValidateSections(sections []Section) error {
	seen := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		if s.Type == "" {
			continue
		}
		if _, dup := seen[s.Type]; dup {
			return fmt.Errorf("%w: duplicate section type found: %s", ErrValidation, s.Type)
		}
		seen[s.Type] = struct{}{}
	}
	return nil
}
