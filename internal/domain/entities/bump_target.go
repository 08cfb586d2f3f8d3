package entities

import (
	"fmt"
	"sort"
	"strings"

	mastersemver "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// BumpTarget is a bump or package file together with what was read from it.
type BumpTarget struct {
	Field   string
	File    BumpFile
	Updater string
	Version string
	Err     error
}

// CheckReport is the outcome of checking a configuration against a working tree.
type CheckReport struct {
	Source  string
	Issues  []Issue
	Targets []BumpTarget
}

// HasErrors reports whether the check failed.
func (r *CheckReport) HasErrors() bool {
	return HasErrors(r.Issues)
}

// Counts returns the number of errors and warnings.
func (r *CheckReport) Counts() (int, int) {
	errs, warns := 0, 0
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warns++
		}
	}
	return errs, warns
}

// canonicalVersion prefixes a bare version with "v" so it can be compared
// with golang.org/x/mod/semver.
func canonicalVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// IsSemver reports whether version is a full MAJOR.MINOR.PATCH semantic
// version, with or without a leading "v". Shorthands such as "1.2" are
// rejected.
func IsSemver(version string) bool {
	if _, err := mastersemver.StrictNewVersion(strings.TrimPrefix(version, "v")); err != nil {
		return false
	}
	return semver.IsValid(canonicalVersion(version))
}

// CompareVersions orders two versions the way semver does.
func CompareVersions(a, b string) int {
	return semver.Compare(canonicalVersion(a), canonicalVersion(b))
}

// VersionIssues flags targets whose version is not semver and targets that
// disagree with each other.
func VersionIssues(targets []BumpTarget) []Issue {
	var issues []Issue
	versions := make(map[string][]string)
	for _, t := range targets {
		if t.Err != nil {
			continue
		}
		if !IsSemver(t.Version) {
			issues = append(issues, errorIssue(t.Field, "%s holds %q which is not a semantic version", t.File.Filename, t.Version))
			continue
		}
		key := semver.Canonical(canonicalVersion(t.Version))
		versions[key] = append(versions[key], t.File.Filename)
	}

	if len(versions) > 1 {
		keys := make([]string, 0, len(versions))
		for k := range versions {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return semver.Compare(keys[i], keys[j]) > 0 })

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s (%s)", strings.TrimPrefix(k, "v"), strings.Join(versions[k], ", ")))
		}
		issues = append(issues, errorIssue("bumpFiles", "version mismatch between files: %s", strings.Join(parts, "; ")))
	}
	return issues
}

// LatestTags returns the semver tags sorted from newest to oldest.
// Tags that are not semantic versions are dropped.
func LatestTags(tags []string) []string {
	valid := make([]string, 0, len(tags))
	for _, tag := range tags {
		if IsSemver(tag) {
			valid = append(valid, tag)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return CompareVersions(valid[i], valid[j]) > 0
	})
	return valid
}
