package giturl

import (
	"net/url"
	"strings"
)

// Normalize rewrites a raw repository locator into a form net/url can parse
// as an absolute URL. Three irregular input families get special handling:
// scp-style ssh shorthand (user@host:path), filesystem paths (POSIX and
// Windows separators), and the legacy short git:host/path notation.
func Normalize(raw string) (*url.URL, error) {
	if strings.ContainsRune(raw, '\x00') {
		return nil, ErrFoundNullBytes
	}

	// Remove a trailing slash before handing the string to net/url.
	trimmed := strings.TrimSuffix(raw, "/")

	// Normalize short git url notation: git:host/path.
	toParse := trimmed
	if strings.HasPrefix(trimmed, "git:") && !strings.HasPrefix(trimmed, "git://") {
		toParse = "git://" + strings.TrimPrefix(trimmed, "git:")
	}

	// net/url parses scheme-less strings as relative references (or rejects
	// scp-style ones outright), so the no-scheme case is decided up front:
	// either the ssh shorthand heuristic matches, or the input is treated as
	// a filesystem path.
	if !hasExplicitScheme(toParse) {
		if isSSHURL(trimmed) {
			return normalizeSSHURL(trimmed)
		}
		return normalizeFilePath(trimmed)
	}

	u, err := url.Parse(toParse)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	if _, serr := SchemeFromString(u.Scheme); serr != nil {
		// Catch the case when an ssh url is given without a user: the
		// host reads as a scheme, e.g. host.tld:path.
		ssh, nerr := normalizeSSHURL(trimmed)
		if nerr != nil {
			return nil, ErrSSHNormalizeFailedNoScheme
		}
		return ssh, nil
	}

	return u, nil
}

// normalizeSSHURL takes an ssh shorthand locator that separates the login
// info from the path with a ':' and rewrites it under an explicit ssh://
// scheme. A three-way split means the middle part is a port.
func normalizeSSHURL(raw string) (*url.URL, error) {
	parts := strings.Split(raw, ":")

	switch len(parts) {
	case 2:
		return Normalize("ssh://" + parts[0] + "/" + parts[1])
	case 3:
		return Normalize("ssh://" + parts[0] + ":" + parts[1] + "/" + parts[2])
	default:
		return nil, ErrUnsupportedSSHFormat
	}
}

// normalizeFilePath rewrites a filesystem path under a file:// scheme.
// Windows separators are converted first so the path splits the same way on
// every platform; for relative paths the first component lands in the url
// host, which the record builder folds back into the path.
func normalizeFilePath(filepath string) (*url.URL, error) {
	fp := strings.ReplaceAll(filepath, `\`, "/")

	u, err := Normalize("file://" + fp)
	if err != nil {
		return nil, ErrFileNormalizeFailedSchemeAdded
	}
	return u, nil
}

// hasExplicitScheme reports whether the string begins with a syntactically
// valid scheme followed by ':' (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )).
// This mirrors what net/url will accept as a scheme, so anything else is a
// relative reference needing the ssh/file disambiguation.
func hasExplicitScheme(s string) bool {
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' || r == '+' || r == '-' || r == '.':
			if i == 0 {
				return false
			}
		case r == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

// isSSHURL reports whether a scheme-less locator should be treated as ssh
// shorthand. Valid ssh locators for cloning have usernames, but one is not
// required here; a path separated by ':' is.
//
// Known quirk, kept for compatibility: without an '@' the rule only accepts
// a split into two empty halves, so a bare host:path whose host is not
// scheme-shaped (an IP address, say) classifies as a filesystem path and
// fails file normalization rather than parsing as ssh.
func isSSHURL(s string) bool {
	// No ':' means no path.
	colonPos := strings.Index(s, ":")
	if colonPos < 0 {
		return false
	}

	// With a username present, expect it before the path.
	if atPos := strings.Index(s, "@"); atPos >= 0 {
		if colonPos < atPos {
			return false
		}

		// Make sure a single username was provided, and not just '@'.
		parts := strings.Split(s, "@")
		return len(parts) == 2 || parts[0] == ""
	}

	parts := strings.Split(s, ":")
	return len(parts) == 2 && parts[0] == "" && parts[1] == ""
}
