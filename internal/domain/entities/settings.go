package entities

import "strings"

// CommitType maps a conventional commit type tag to a changelog section.
type CommitType struct {
	Type    string `koanf:"type"    json:"type"              yaml:"type"`
	Section string `koanf:"section" json:"section,omitempty" yaml:"section,omitempty"`
	Hidden  bool   `koanf:"hidden"  json:"hidden,omitempty"  yaml:"hidden,omitempty"`
}

// SectionName returns the section the type is listed under.
// Types without an explicit section fall back to the type tag itself.
func (c CommitType) SectionName() string {
	if c.Section == "" {
		return c.Type
	}
	return c.Section
}

// BumpFile is a file that holds a copy of the project version.
// Either Updater or Type may be set, never both. When neither is set the
// updater is inferred from the file name.
type BumpFile struct {
	Filename string `koanf:"filename" json:"filename"          yaml:"filename"`
	Updater  string `koanf:"updater"  json:"updater,omitempty" yaml:"updater,omitempty"`
	Type     string `koanf:"type"     json:"type,omitempty"    yaml:"type,omitempty"`
}

// Settings is the typed form of a .versionrc file.
type Settings struct {
	Header                     string       `koanf:"header"                     json:"header"                     yaml:"header"`
	Types                      []CommitType `koanf:"types"                      json:"types"                      yaml:"types"`
	PreMajor                   bool         `koanf:"preMajor"                   json:"preMajor"                   yaml:"preMajor"`
	CommitURLFormat            string       `koanf:"commitUrlFormat"            json:"commitUrlFormat"            yaml:"commitUrlFormat"`
	CompareURLFormat           string       `koanf:"compareUrlFormat"           json:"compareUrlFormat"           yaml:"compareUrlFormat"`
	IssueURLFormat             string       `koanf:"issueUrlFormat"             json:"issueUrlFormat"             yaml:"issueUrlFormat"`
	UserURLFormat              string       `koanf:"userUrlFormat"              json:"userUrlFormat"              yaml:"userUrlFormat"`
	ReleaseCommitMessageFormat string       `koanf:"releaseCommitMessageFormat" json:"releaseCommitMessageFormat" yaml:"releaseCommitMessageFormat"`
	IssuePrefixes              []string     `koanf:"issuePrefixes"              json:"issuePrefixes"              yaml:"issuePrefixes"`
	BumpFiles                  []BumpFile   `koanf:"bumpFiles"                  json:"bumpFiles,omitempty"        yaml:"bumpFiles,omitempty"`
	PackageFiles               []BumpFile   `koanf:"packageFiles"               json:"packageFiles,omitempty"     yaml:"packageFiles,omitempty"`

	// Source is the file the settings were loaded from, empty for defaults.
	Source string `koanf:"-" json:"-" yaml:"-"`
}

// FindType returns the commit type registered under tag, ignoring case.
func (s *Settings) FindType(tag string) (CommitType, bool) {
	for _, t := range s.Types {
		if strings.EqualFold(strings.TrimSpace(t.Type), tag) {
			return t, true
		}
	}
	return CommitType{}, false
}

// VisibleSections returns the distinct section names of non-hidden types,
// in configuration order.
func (s *Settings) VisibleSections() []string {
	seen := make(map[string]bool)
	var sections []string
	for _, t := range s.Types {
		if t.Hidden {
			continue
		}
		name := t.SectionName()
		if seen[name] {
			continue
		}
		seen[name] = true
		sections = append(sections, name)
	}
	return sections
}

// Targets returns every bump and package file, each labelled with the
// configuration field it came from (e.g. "bumpFiles[1]").
func (s *Settings) Targets() []BumpTarget {
	targets := make([]BumpTarget, 0, len(s.BumpFiles)+len(s.PackageFiles))
	for i, f := range s.BumpFiles {
		targets = append(targets, BumpTarget{Field: indexedField("bumpFiles", i), File: f})
	}
	for i, f := range s.PackageFiles {
		targets = append(targets, BumpTarget{Field: indexedField("packageFiles", i), File: f})
	}
	return targets
}
