package giturl

import (
	"net/url"
	"strings"
)

// pathMetadata is the hierarchical naming derived from a locator's path.
// Optional levels are empty when the path does not carry them.
type pathMetadata struct {
	name         string
	owner        string
	subgroups    string
	organization string
	fullname     string
}

// segment splits the normalized path right-to-left and derives repository
// name, owner, organization and subgroup chain.
//
// Most git services use the path for metadata the same way:
//
//	github.com/accountname/reponame -> owner=accountname, name=reponame
//
// Deeper paths follow the gitlab subgroup / Azure DevOps organization shape,
// organization first. Two pinned provider behaviors live here on purpose:
// the single-segment self-owner fallback (owner == name) for explicit ssh
// locators, and Azure's _git literal parsing as the owner with the real
// project in subgroups. Callers are expected to handle those themselves.
func segment(scheme Scheme, normalized *url.URL, urlpath, raw string, skip int) (pathMetadata, error) {
	parts := splitReversed(urlpath)

	if skip < 0 {
		return pathMetadata{}, ErrUnexpectedFormat
	}
	if skip > 0 {
		// The skipped segments are the ones nearest the root.
		if skip >= len(parts) {
			return pathMetadata{}, ErrUnexpectedFormat
		}
		parts = parts[:len(parts)-skip]
	}
	if len(parts) == 0 {
		return pathMetadata{}, ErrUnexpectedFormat
	}

	// The suffix convention strips repeatedly: repo.git.git names repo.
	name := parts[0]
	for strings.HasSuffix(name, ".git") {
		name = strings.TrimSuffix(name, ".git")
	}

	// No metadata is assumed from a filepath.
	if scheme == SchemeFile {
		return pathMetadata{name: name, fullname: name}, nil
	}

	if normalized.Hostname() == "" {
		return pathMetadata{}, ErrUnsupportedHostFormat
	}

	if len(parts) > 2 {
		// Provider with an organization: the segment furthest from the repo
		// is the organization, the one right above the repo is the owner,
		// and anything between joins into the subgroup chain.
		organization := parts[len(parts)-1]
		middle := parts[1 : len(parts)-1]
		owner := middle[0]

		subgroupParts := make([]string, 0, len(middle)-1)
		for i := len(middle) - 1; i >= 1; i-- {
			subgroupParts = append(subgroupParts, middle[i])
		}
		subgroups := strings.Join(subgroupParts, "/")

		fullname := make([]string, 0, 4)
		fullname = append(fullname, organization)
		if subgroups != "" {
			fullname = append(fullname, subgroups)
		}
		fullname = append(fullname, owner, name)

		return pathMetadata{
			name:         name,
			owner:        owner,
			subgroups:    subgroups,
			organization: organization,
			fullname:     strings.Join(fullname, "/"),
		}, nil
	}

	// A bare two-segment scp form is only legal when the locator itself led
	// with ssh; anything shorter from another scheme is malformed.
	if !strings.HasPrefix(raw, "ssh") && len(parts) < 2 {
		return pathMetadata{}, ErrUnexpectedFormat
	}

	position := 1
	if len(parts) == 1 {
		position = 0
	}

	owner := parts[position]

	return pathMetadata{
		name:     name,
		owner:    owner,
		fullname: owner + "/" + name,
	}, nil
}

// splitReversed splits a path on '/', discards empty segments, and returns
// the result rightmost-first.
func splitReversed(urlpath string) []string {
	split := strings.Split(urlpath, "/")
	parts := make([]string, 0, len(split))
	for i := len(split) - 1; i >= 0; i-- {
		if split[i] != "" {
			parts = append(parts, split[i])
		}
	}
	return parts
}
