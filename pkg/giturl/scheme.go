package giturl

// Scheme identifies the connection protocol of a repository locator.
// The set is closed; every scheme-dependent branch in this package
// switches over it so a new scheme forces each call site to be revisited.
type Scheme string

const (
	// SchemeFile represents the file:// url scheme.
	SchemeFile Scheme = "file"
	// SchemeFTP represents the ftp:// url scheme.
	SchemeFTP Scheme = "ftp"
	// SchemeFTPS represents the ftps:// url scheme.
	SchemeFTPS Scheme = "ftps"
	// SchemeGit represents the git:// url scheme.
	SchemeGit Scheme = "git"
	// SchemeGitSSH represents the git+ssh:// url scheme.
	SchemeGitSSH Scheme = "git+ssh"
	// SchemeHTTP represents the http:// url scheme.
	SchemeHTTP Scheme = "http"
	// SchemeHTTPS represents the https:// url scheme.
	SchemeHTTPS Scheme = "https"
	// SchemeSSH represents the ssh:// url scheme.
	SchemeSSH Scheme = "ssh"
	// SchemeUnspecified represents the absence of a url scheme.
	SchemeUnspecified Scheme = "unspecified"
)

// String returns the canonical lowercase spelling of the scheme.
func (s Scheme) String() string {
	return string(s)
}

// SchemeFromString maps a scheme string to its Scheme value. Matching is
// exact and case-sensitive; anything outside the closed set returns an
// UnsupportedSchemeError.
func SchemeFromString(s string) (Scheme, error) {
	switch s {
	case "file":
		return SchemeFile, nil
	case "ftp":
		return SchemeFTP, nil
	case "ftps":
		return SchemeFTPS, nil
	case "git":
		return SchemeGit, nil
	case "git+ssh":
		return SchemeGitSSH, nil
	case "http":
		return SchemeHTTP, nil
	case "https":
		return SchemeHTTPS, nil
	case "ssh":
		return SchemeSSH, nil
	case "unspecified":
		return SchemeUnspecified, nil
	default:
		return SchemeUnspecified, &UnsupportedSchemeError{Scheme: s}
	}
}
