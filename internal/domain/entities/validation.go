package entities

import (
	"fmt"
	"strings"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// PlainTextType is the bump file type handled by the plain-text updater.
const PlainTextType = "plain-text"

// JSONType is the bump file type handled by the json updater.
const JSONType = "json"

// Issue is a single validation finding.
type Issue struct {
	Severity Severity
	Field    string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Field, i.Message)
}

func errorIssue(field, format string, args ...any) Issue {
	return Issue{Severity: SeverityError, Field: field, Message: fmt.Sprintf(format, args...)}
}

func warningIssue(field, format string, args ...any) Issue {
	return Issue{Severity: SeverityWarning, Field: field, Message: fmt.Sprintf(format, args...)}
}

func indexedField(name string, index int) string {
	return fmt.Sprintf("%s[%d]", name, index)
}

// HasErrors reports whether any issue is of error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the configuration shape: type tags, templates and the
// declaration of bump files. It does not touch the filesystem.
func (s *Settings) Validate() []Issue {
	var issues []Issue
	issues = append(issues, s.validateTypes()...)
	issues = append(issues, s.validateTemplates()...)
	issues = append(issues, validateFiles("bumpFiles", s.BumpFiles)...)
	issues = append(issues, validateFiles("packageFiles", s.PackageFiles)...)
	return issues
}

func (s *Settings) validateTypes() []Issue {
	var issues []Issue
	if len(s.Types) == 0 {
		issues = append(issues, warningIssue("types", "no commit types declared, every commit will be hidden"))
	}

	seen := make(map[string]int)
	for i, t := range s.Types {
		field := indexedField("types", i)
		tag := strings.TrimSpace(t.Type)
		if tag == "" {
			issues = append(issues, errorIssue(field, "type tag is empty"))
			continue
		}
		if first, dup := seen[strings.ToLower(tag)]; dup {
			issues = append(issues, errorIssue(field, "duplicate type tag %q (first declared at types[%d])", tag, first))
			continue
		}
		seen[strings.ToLower(tag)] = i

		if !t.Hidden && t.Section == "" {
			issues = append(issues, warningIssue(field, "type %q has no section, %q will be used", tag, tag))
		}
	}
	return issues
}

func (s *Settings) validateTemplates() []Issue {
	var issues []Issue
	for _, kind := range TemplateKinds() {
		tmpl, _ := s.Template(kind)
		field := kind.Field()
		if tmpl.Format == "" {
			issues = append(issues, errorIssue(field, "template is empty"))
			continue
		}
		if !tmpl.Balanced() {
			issues = append(issues, errorIssue(field, "unbalanced or malformed placeholder braces in %q", tmpl.Format))
		}
		for _, name := range tmpl.Unknown() {
			issues = append(issues, errorIssue(field, "unknown placeholder {{%s}}, allowed: %s",
				name, strings.Join(kind.Allowed(), ", ")))
		}
		if kind == TemplateRelease {
			continue
		}
		issues = append(issues, checkURLShape(field, tmpl.Format)...)
	}
	return issues
}

// checkURLShape warns about URL templates that cannot produce a usable link.
func checkURLShape(field, format string) []Issue {
	var issues []Issue

	rest := format
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+len("://"):]
	} else if !strings.HasPrefix(format, "{{host}}") {
		issues = append(issues, warningIssue(field, "template is neither an absolute URL nor starts with {{host}}"))
	}

	if strings.Contains(rest, "//") {
		issues = append(issues, warningIssue(field, "template contains an empty path segment: %q", format))
	}
	return issues
}

func validateFiles(name string, files []BumpFile) []Issue {
	var issues []Issue
	seen := make(map[string]bool)
	for i, f := range files {
		field := indexedField(name, i)
		if strings.TrimSpace(f.Filename) == "" {
			issues = append(issues, errorIssue(field, "filename is empty"))
			continue
		}
		if seen[f.Filename] {
			issues = append(issues, warningIssue(field, "file %q is listed more than once", f.Filename))
		}
		seen[f.Filename] = true

		if f.Updater != "" && f.Type != "" {
			issues = append(issues, errorIssue(field, "updater and type are mutually exclusive"))
		}
		if f.Type != "" && f.Type != PlainTextType && f.Type != JSONType {
			issues = append(issues, errorIssue(field, "unknown type %q, expected %q or %q", f.Type, PlainTextType, JSONType))
		}
	}
	return issues
}
