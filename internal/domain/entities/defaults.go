package entities

const (
	DefaultHeader                     = "# Changelog\n\n"
	DefaultCommitURLFormat            = "{{host}}/{{owner}}/{{repository}}/commit/{{hash}}"
	DefaultCompareURLFormat           = "{{host}}/{{owner}}/{{repository}}/compare/{{previousTag}}...{{currentTag}}"
	DefaultIssueURLFormat             = "{{host}}/{{owner}}/{{repository}}/issues/{{id}}"
	DefaultUserURLFormat              = "{{host}}/{{user}}"
	DefaultReleaseCommitMessageFormat = "chore(release): {{currentTag}}"
	DefaultIssuePrefix                = "#"
)

// DefaultTypes returns the commit types used when a configuration does not
// declare its own.
func DefaultTypes() []CommitType {
	return []CommitType{
		{Type: "feat", Section: "Features"},
		{Type: "fix", Section: "Bug Fixes"},
		{Type: "chore", Hidden: true},
		{Type: "docs", Hidden: true},
		{Type: "style", Hidden: true},
		{Type: "refactor", Hidden: true},
		{Type: "perf", Hidden: true},
		{Type: "test", Hidden: true},
	}
}

// DefaultSettings returns a fully populated configuration with every key
// set to its default value.
func DefaultSettings() *Settings {
	return &Settings{
		Header:                     DefaultHeader,
		Types:                      DefaultTypes(),
		CommitURLFormat:            DefaultCommitURLFormat,
		CompareURLFormat:           DefaultCompareURLFormat,
		IssueURLFormat:             DefaultIssueURLFormat,
		UserURLFormat:              DefaultUserURLFormat,
		ReleaseCommitMessageFormat: DefaultReleaseCommitMessageFormat,
		IssuePrefixes:              []string{DefaultIssuePrefix},
	}
}

// DefaultValues returns the defaults keyed by their configuration names,
// in the shape a key/value configuration loader expects.
func DefaultValues() map[string]any {
	types := make([]any, 0, len(DefaultTypes()))
	for _, t := range DefaultTypes() {
		entry := map[string]any{"type": t.Type}
		if t.Section != "" {
			entry["section"] = t.Section
		}
		if t.Hidden {
			entry["hidden"] = true
		}
		types = append(types, entry)
	}

	return map[string]any{
		"header":                     DefaultHeader,
		"types":                      types,
		"preMajor":                   false,
		"commitUrlFormat":            DefaultCommitURLFormat,
		"compareUrlFormat":           DefaultCompareURLFormat,
		"issueUrlFormat":             DefaultIssueURLFormat,
		"userUrlFormat":              DefaultUserURLFormat,
		"releaseCommitMessageFormat": DefaultReleaseCommitMessageFormat,
		"issuePrefixes":              []any{DefaultIssuePrefix},
	}
}

// ScalarKeys lists the configuration keys that can be overridden from a
// single environment variable.
func ScalarKeys() []string {
	return []string{
		"header",
		"preMajor",
		"commitUrlFormat",
		"compareUrlFormat",
		"issueUrlFormat",
		"userUrlFormat",
		"releaseCommitMessageFormat",
	}
}
