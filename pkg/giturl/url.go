// Package giturl parses the strings used to clone a git repository into a
// structured record. Input sanitizing and path segmentation happen here;
// percent-decoding and authority splitting are delegated to net/url.
package giturl

import (
	"net/url"
	"strconv"
	"strings"
)

// GitURL is the parsed form of a repository locator. Parsing sanitizes the
// input, leans on net/url for the authority and percent-decoding work, and
// layers on the path metadata conventions of the common git hosting services.
// A GitURL is produced atomically by one parse call and not mutated after.
type GitURL struct {
	// Host is the FQDN or IP of the repo; empty for file locators.
	Host string `yaml:"host,omitempty" json:"host,omitempty"`

	// Name is the repo name, with any trailing .git stripped.
	Name string `yaml:"name" json:"name"`

	// Owner is the account or project owning the repo, when one exists.
	Owner string `yaml:"owner,omitempty" json:"owner,omitempty"`

	// Subgroups is the '/'-joined chain of segments between organization and
	// owner, in original order, when any exist.
	Subgroups string `yaml:"subgroups,omitempty" json:"subgroups,omitempty"`

	// Organization is the top path segment when the path holds more than an
	// owner and a name.
	Organization string `yaml:"organization,omitempty" json:"organization,omitempty"`

	// Fullname joins organization, subgroups, owner and name.
	Fullname string `yaml:"fullname" json:"fullname"`

	// Scheme is the locator's connection scheme.
	Scheme Scheme `yaml:"scheme" json:"scheme"`

	// AuthUser is the authentication user embedded in the authority, if any.
	AuthUser string `yaml:"auth_user,omitempty" json:"auth_user,omitempty"`

	// AuthToken is the password component of the authority. It can appear in
	// http(s) locators; ssh-family locators never expose one.
	AuthToken string `yaml:"auth_token,omitempty" json:"auth_token,omitempty"`

	// Port is the non-default port the service is hosted on, 0 when unset.
	Port uint16 `yaml:"port,omitempty" json:"port,omitempty"`

	// Path is the repo path with respect to user + hostname.
	Path string `yaml:"path" json:"path"`

	// GitSuffix reports whether the locator used the .git suffix.
	GitSuffix bool `yaml:"git_suffix" json:"git_suffix"`

	// SchemePrefix reports whether the locator spelled its scheme explicitly.
	SchemePrefix bool `yaml:"scheme_prefix" json:"scheme_prefix"`

	// SkipPartCount is how many trailing path segments were ignored during
	// segmentation, retained so the parse can be re-derived.
	SkipPartCount int `yaml:"skip_part_count,omitempty" json:"skip_part_count,omitempty"`
}

// Parse parses a repository locator into a GitURL.
func Parse(raw string) (*GitURL, error) {
	return ParseWithSkip(raw, 0)
}

// ParseWithSkip parses a repository locator, ignoring skip trailing path
// segments during metadata segmentation. Providers whose paths embed a
// non-hierarchical literal segment (the v3 marker in Azure DevOps ssh
// locators) need skip=1 to line the remaining segments up.
func ParseWithSkip(raw string, skip int) (*GitURL, error) {
	// Normalize the locator so net/url can process ssh and file forms.
	normalized, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	scheme, err := SchemeFromString(normalized.Scheme)
	if err != nil {
		return nil, err
	}
	if normalized.Path == "" {
		return nil, ErrEmptyPath
	}

	// Normalized ssh urls can always have their first '/' removed; net/url
	// inserts exactly one when the rewrite joins host and path.
	urlpath := normalized.Path
	if scheme == SchemeSSH {
		urlpath = urlpath[1:]
		if urlpath == "" {
			return nil, ErrEmptyPath
		}
	}

	gitSuffix := strings.HasSuffix(urlpath, ".git")

	meta, err := segment(scheme, normalized, urlpath, raw, skip)
	if err != nil {
		return nil, err
	}

	port, err := parsePort(scheme, normalized)
	if err != nil {
		return nil, err
	}

	host := normalized.Hostname()
	path := urlpath
	if scheme == SchemeFile {
		// File locators carry no host; a relative path's first component
		// landed in the url host during normalization, so fold it back.
		path = host + urlpath
		host = ""
	}

	authToken := ""
	if token, ok := normalized.User.Password(); ok {
		authToken = token
	}

	return &GitURL{
		Host:          host,
		Name:          meta.name,
		Owner:         meta.owner,
		Subgroups:     meta.subgroups,
		Organization:  meta.organization,
		Fullname:      meta.fullname,
		Scheme:        scheme,
		AuthUser:      normalized.User.Username(),
		AuthToken:     authToken,
		Port:          port,
		Path:          path,
		GitSuffix:     gitSuffix,
		SchemePrefix:  strings.Contains(raw, "://") || strings.HasPrefix(raw, "git:"),
		SkipPartCount: skip,
	}, nil
}

// TrimAuth returns a copy of the GitURL with auth user and token cleared.
// Intended for non-destructive printing of locators that embed credentials.
func (g *GitURL) TrimAuth() *GitURL {
	trimmed := *g
	trimmed.AuthUser = ""
	trimmed.AuthToken = ""
	return &trimmed
}

// String reconstructs the printable locator from its components. The scheme
// prefix is emitted only when the source locator spelled one; ssh locators
// without a port print in scp form (host:path) to stay clone-compatible.
func (g *GitURL) String() string {
	var sb strings.Builder

	if g.SchemePrefix {
		sb.WriteString(g.Scheme.String())
		sb.WriteString("://")
	}

	switch g.Scheme {
	case SchemeSSH, SchemeGit, SchemeGitSSH:
		if g.AuthUser != "" {
			sb.WriteString(g.AuthUser)
			sb.WriteString("@")
		}
	case SchemeHTTP, SchemeHTTPS:
		switch {
		case g.AuthUser != "" && g.AuthToken != "":
			sb.WriteString(g.AuthUser)
			sb.WriteString(":")
			sb.WriteString(g.AuthToken)
			sb.WriteString("@")
		case g.AuthUser != "":
			sb.WriteString(g.AuthUser)
			sb.WriteString("@")
		case g.AuthToken != "":
			sb.WriteString(g.AuthToken)
			sb.WriteString("@")
		}
	}

	sb.WriteString(g.Host)

	if g.Port != 0 {
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(int(g.Port)))
	}

	switch g.Scheme {
	case SchemeSSH:
		if g.Port != 0 {
			sb.WriteString("/")
		} else {
			sb.WriteString(":")
		}
		sb.WriteString(g.Path)
	default:
		sb.WriteString(g.Path)
	}

	return sb.String()
}

// parsePort extracts the authority port, suppressing the defaults the url
// primitive owns for its well-known schemes (http 80, https 443, ftp 21).
func parsePort(scheme Scheme, u *url.URL) (uint16, error) {
	p := u.Port()
	if p == "" {
		return 0, nil
	}

	port, err := strconv.ParseUint(p, 10, 16)
	if err != nil {
		return 0, &ParseError{Err: err}
	}

	switch {
	case scheme == SchemeHTTP && port == 80:
		return 0, nil
	case scheme == SchemeHTTPS && port == 443:
		return 0, nil
	case scheme == SchemeFTP && port == 21:
		return 0, nil
	}

	return uint16(port), nil
}
