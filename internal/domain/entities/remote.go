package entities

import (
	"fmt"
	"net/url"
	"strings"
)

const azureDevOpsHost = "dev.azure.com"

// RemoteInfo holds the parts of a Git remote that URL templates refer to.
// Host includes the scheme, e.g. "https://github.com".
type RemoteInfo struct {
	Host       string
	Owner      string
	Repository string
}

// Values returns the remote as template values.
func (r RemoteInfo) Values() map[string]string {
	return map[string]string{
		"host":       r.Host,
		"owner":      r.Owner,
		"repository": r.Repository,
	}
}

// ParseRemoteURL extracts host, owner and repository from a Git remote URL.
// SCP-like SSH ("git@host:owner/repo.git"), ssh://, http(s):// and Azure
// DevOps URLs are understood. The host is always reported as https.
func ParseRemoteURL(rawURL string) (RemoteInfo, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
	cleaned = strings.TrimSuffix(cleaned, ".git")
	if cleaned == "" {
		return RemoteInfo{}, fmt.Errorf("empty git remote URL")
	}

	var hostname, pathPart string
	if !strings.Contains(cleaned, "://") {
		at := strings.Index(cleaned, "@")
		colon := strings.Index(cleaned, ":")
		if colon < 0 || colon < at {
			return RemoteInfo{}, fmt.Errorf("unsupported git remote URL: %s", rawURL)
		}
		hostname = cleaned[at+1 : colon]
		pathPart = cleaned[colon+1:]
	} else {
		parsed, err := url.Parse(cleaned)
		if err != nil {
			return RemoteInfo{}, fmt.Errorf("invalid git remote URL %q: %w", rawURL, err)
		}
		hostname = parsed.Hostname()
		pathPart = parsed.Path
	}

	hostname = strings.TrimPrefix(hostname, "ssh.")
	segments := splitPath(pathPart)

	if hostname == azureDevOpsHost {
		return parseAzureDevOpsPath(rawURL, segments)
	}

	if hostname == "" || len(segments) < 2 { //nolint:mnd // need owner + repo
		return RemoteInfo{}, fmt.Errorf("cannot extract owner/repository from URL: %s", rawURL)
	}

	// Nested groups (GitLab) keep every segment but the last as the owner.
	return RemoteInfo{
		Host:       "https://" + hostname,
		Owner:      strings.Join(segments[:len(segments)-1], "/"),
		Repository: segments[len(segments)-1],
	}, nil
}

func parseAzureDevOpsPath(rawURL string, segments []string) (RemoteInfo, error) {
	if len(segments) > 0 && segments[0] == "v3" {
		segments = segments[1:]
	}

	for i, s := range segments {
		if s == "_git" {
			segments = append(segments[:i:i], segments[i+1:]...)
			break
		}
	}

	if len(segments) != 3 { //nolint:mnd // org/project/repo
		return RemoteInfo{}, fmt.Errorf("invalid Azure DevOps URL: %s", rawURL)
	}

	return RemoteInfo{
		Host:       "https://" + azureDevOpsHost,
		Owner:      segments[0] + "/" + segments[1],
		Repository: segments[2],
	}, nil
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
