package giturl

import (
	"errors"
	"fmt"
)

// The parse pipeline surfaces failures from a closed set of reasons. The
// flag-only reasons are package sentinels; the two reasons that carry data
// (the underlying net/url failure and an unrecognized scheme string) are
// typed errors below.
var (
	// ErrSSHNormalizeFailedNoScheme is returned when no url scheme was found
	// and the input could not be normalized as an ssh url.
	ErrSSHNormalizeFailedNoScheme = errors.New("giturl: no url scheme was found, then failed to normalize as ssh url")

	// ErrSSHNormalizeFailedSchemeAdded is returned when normalization fails
	// even after an ssh:// scheme was added.
	ErrSSHNormalizeFailedSchemeAdded = errors.New("giturl: no url scheme was found, then failed to normalize as ssh url after adding 'ssh://'")

	// ErrSSHNormalizeFailedSchemeAddedWithPorts is returned when a ported ssh
	// rewrite fails to normalize.
	ErrSSHNormalizeFailedSchemeAddedWithPorts = errors.New("giturl: failed to normalize as ssh url after adding 'ssh://'")

	// ErrFileNormalizeFailedNoScheme is returned when no url scheme was found
	// and the input could not be normalized as a file url.
	ErrFileNormalizeFailedNoScheme = errors.New("giturl: no url scheme was found, then failed to normalize as file url")

	// ErrFileNormalizeFailedSchemeAdded is returned when normalization fails
	// even after a file:// scheme was added.
	ErrFileNormalizeFailedSchemeAdded = errors.New("giturl: no url scheme was found, then failed to normalize as file url after adding 'file://'")

	// ErrUnexpectedFormat is returned when a locator's path does not carry the
	// segments the segmentation rules require.
	ErrUnexpectedFormat = errors.New("giturl: git url not in expected format")

	// ErrUnexpectedScheme is returned for a host using an unexpected scheme.
	ErrUnexpectedScheme = errors.New("giturl: git url for host using unexpected scheme")

	// ErrUnsupportedHostFormat is returned when a network locator resolves to
	// no usable host.
	ErrUnsupportedHostFormat = errors.New("giturl: host from url cannot be str or does not exist")

	// ErrUnsupportedSSHFormat is returned when an scp-style locator does not
	// split into host/path or host/port/path.
	ErrUnsupportedSSHFormat = errors.New("giturl: git url not in expected format for ssh")

	// ErrEmptyPath is returned when the normalized url has no path component.
	ErrEmptyPath = errors.New("giturl: normalized url has no path")

	// ErrFoundNullBytes is returned when the input contains a null byte.
	ErrFoundNullBytes = errors.New("giturl: found null bytes within input url before parsing")
)

// ParseError wraps a failure reported by the underlying net/url parser.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("giturl: error from url parser: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedSchemeError is returned when a locator carries a scheme outside
// the closed Scheme set.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("giturl: scheme unsupported: %s", e.Scheme)
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsUnsupportedScheme returns true if the error is an UnsupportedSchemeError.
func IsUnsupportedScheme(err error) bool {
	var schemeErr *UnsupportedSchemeError
	return errors.As(err, &schemeErr)
}

// GetUnsupportedScheme extracts the scheme string from an UnsupportedSchemeError.
func GetUnsupportedScheme(err error) (string, bool) {
	var schemeErr *UnsupportedSchemeError
	if errors.As(err, &schemeErr) {
		return schemeErr.Scheme, true
	}
	return "", false
}
