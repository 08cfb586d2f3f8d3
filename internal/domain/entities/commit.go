package entities

import (
	"regexp"
	"strings"
)

// BreakingSection is the section breaking changes are reported under,
// regardless of their type.
const BreakingSection = "BREAKING CHANGES"

var headerPattern = regexp.MustCompile(
	`^(?P<type>[A-Za-z0-9]+)(?:\((?P<scope>[^)]+)\))?(?P<breaking>!)?:\s+(?P<subject>.+)$`,
)

// CommitHeader is the parsed first line of a conventional commit.
type CommitHeader struct {
	Raw      string
	Type     string
	Scope    string
	Subject  string
	Breaking bool
}

// ParseCommitHeader parses "type(scope)!: subject". The type is lowercased.
// It returns false when the line is not a conventional commit header.
func ParseCommitHeader(line string) (CommitHeader, bool) {
	line = strings.TrimSpace(line)
	match := headerPattern.FindStringSubmatch(line)
	if match == nil {
		return CommitHeader{Raw: line}, false
	}

	return CommitHeader{
		Raw:      line,
		Type:     strings.ToLower(match[headerPattern.SubexpIndex("type")]),
		Scope:    match[headerPattern.SubexpIndex("scope")],
		Subject:  strings.TrimSpace(match[headerPattern.SubexpIndex("subject")]),
		Breaking: match[headerPattern.SubexpIndex("breaking")] == "!",
	}, true
}

// Classification places a commit header in the changelog.
type Classification struct {
	Header CommitHeader
	// Conventional is false when the header could not be parsed at all.
	Conventional bool
	// Known is false when the type is not declared in the configuration.
	Known   bool
	Section string
	Hidden  bool
}

// Classify resolves the section a commit header would be listed under.
// Unknown and non-conventional commits are hidden. Breaking changes are
// never hidden.
func (s *Settings) Classify(line string) Classification {
	header, ok := ParseCommitHeader(line)
	if !ok {
		return Classification{Header: header, Hidden: true}
	}

	result := Classification{Header: header, Conventional: true, Hidden: true}
	if commitType, found := s.FindType(header.Type); found {
		result.Known = true
		result.Section = commitType.SectionName()
		result.Hidden = commitType.Hidden
	}

	if header.Breaking {
		result.Section = BreakingSection
		result.Hidden = false
	}
	return result
}

// SectionGroup is an ordered set of commit headers sharing a section.
type SectionGroup struct {
	Section string
	Headers []CommitHeader
}

// GroupBySection classifies the given lines and groups the visible ones.
// Breaking changes come first, then sections in configuration order.
// Hidden headers are returned separately.
func (s *Settings) GroupBySection(lines []string) ([]SectionGroup, []Classification) {
	order := []string{BreakingSection}
	for _, section := range s.VisibleSections() {
		if section != BreakingSection {
			order = append(order, section)
		}
	}
	buckets := make(map[string][]CommitHeader)
	var hidden []Classification

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c := s.Classify(line)
		if c.Hidden {
			hidden = append(hidden, c)
			continue
		}
		buckets[c.Section] = append(buckets[c.Section], c.Header)
	}

	groups := make([]SectionGroup, 0, len(buckets))
	for _, section := range order {
		if headers, ok := buckets[section]; ok {
			groups = append(groups, SectionGroup{Section: section, Headers: headers})
		}
	}
	return groups, hidden
}
