package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// TemplateKind identifies one of the templated fields of a configuration.
type TemplateKind string

const (
	TemplateCommit  TemplateKind = "commit"
	TemplateCompare TemplateKind = "compare"
	TemplateIssue   TemplateKind = "issue"
	TemplateUser    TemplateKind = "user"
	TemplateRelease TemplateKind = "release"
)

// ErrMissingValue is returned by Render when a placeholder has no value.
var ErrMissingValue = errors.New("missing template value")

// ErrUnknownTemplate is returned for a template kind that does not exist.
var ErrUnknownTemplate = errors.New("unknown template kind")

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z][A-Za-z0-9_]*)\s*\}\}`)

//nolint:gochecknoglobals // read-only lookup table
var templateFields = map[TemplateKind]string{
	TemplateCommit:  "commitUrlFormat",
	TemplateCompare: "compareUrlFormat",
	TemplateIssue:   "issueUrlFormat",
	TemplateUser:    "userUrlFormat",
	TemplateRelease: "releaseCommitMessageFormat",
}

//nolint:gochecknoglobals // read-only lookup table
var allowedPlaceholders = map[TemplateKind][]string{
	TemplateCommit:  {"host", "owner", "repository", "hash"},
	TemplateCompare: {"host", "owner", "repository", "previousTag", "currentTag"},
	TemplateIssue:   {"host", "owner", "repository", "id", "prefix"},
	TemplateUser:    {"host", "user"},
	TemplateRelease: {"currentTag"},
}

// TemplateKinds returns every template kind in a stable order.
func TemplateKinds() []TemplateKind {
	return []TemplateKind{TemplateCommit, TemplateCompare, TemplateIssue, TemplateUser, TemplateRelease}
}

// ParseTemplateKind converts a user supplied name into a TemplateKind.
func ParseTemplateKind(name string) (TemplateKind, error) {
	kind := TemplateKind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := templateFields[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return kind, nil
}

// Field returns the configuration key holding the template.
func (k TemplateKind) Field() string {
	return templateFields[k]
}

// Allowed returns the placeholders the template may reference.
func (k TemplateKind) Allowed() []string {
	return allowedPlaceholders[k]
}

// Template is a format string with {{name}} placeholders.
type Template struct {
	Kind   TemplateKind
	Format string
}

// Template returns the template configured for kind.
func (s *Settings) Template(kind TemplateKind) (Template, error) {
	var format string
	switch kind {
	case TemplateCommit:
		format = s.CommitURLFormat
	case TemplateCompare:
		format = s.CompareURLFormat
	case TemplateIssue:
		format = s.IssueURLFormat
	case TemplateUser:
		format = s.UserURLFormat
	case TemplateRelease:
		format = s.ReleaseCommitMessageFormat
	default:
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}
	return Template{Kind: kind, Format: format}, nil
}

// Placeholders returns the distinct placeholder names in order of first use.
func (t Template) Placeholders() []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(t.Format, -1) {
		if seen[match[1]] {
			continue
		}
		seen[match[1]] = true
		names = append(names, match[1])
	}
	return names
}

// Unknown returns the placeholders that are not allowed for the template kind.
func (t Template) Unknown() []string {
	allowed := make(map[string]bool)
	for _, name := range t.Kind.Allowed() {
		allowed[name] = true
	}

	var unknown []string
	for _, name := range t.Placeholders() {
		if !allowed[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Balanced reports whether every "{{" is part of a well-formed placeholder.
func (t Template) Balanced() bool {
	rest := placeholderPattern.ReplaceAllString(t.Format, "")
	return !strings.Contains(rest, "{{") && !strings.Contains(rest, "}}")
}

// Render substitutes every placeholder. Values for names the template does
// not use are ignored.
func (t Template) Render(values map[string]string) (string, error) {
	var missing []string
	out := placeholderPattern.ReplaceAllStringFunc(t.Format, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := values[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w for %s: %s", ErrMissingValue, t.Kind.Field(), strings.Join(missing, ", "))
	}
	return out, nil
}
