package giturl

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantScheme string
		wantHost   string
		wantPath   string
	}{
		{
			name:       "explicit https untouched",
			input:      "https://github.com/owner/name.git",
			wantScheme: "https",
			wantHost:   "github.com",
			wantPath:   "/owner/name.git",
		},
		{
			name:       "scp shorthand rewritten",
			input:      "git@github.com:user/repo.git",
			wantScheme: "ssh",
			wantHost:   "github.com",
			wantPath:   "/user/repo.git",
		},
		{
			name:       "scp shorthand with port",
			input:      "git@host.tld:2222:user/repo.git",
			wantScheme: "ssh",
			wantHost:   "host.tld",
			wantPath:   "/user/repo.git",
		},
		{
			name:       "userless host reads as scheme",
			input:      "host.tld:user/repo.git",
			wantScheme: "ssh",
			wantHost:   "host.tld",
			wantPath:   "/user/repo.git",
		},
		{
			name:       "short git notation",
			input:      "git:github.com/owner/name.git",
			wantScheme: "git",
			wantHost:   "github.com",
			wantPath:   "/owner/name.git",
		},
		{
			name:       "relative path",
			input:      "../project-name.git",
			wantScheme: "file",
			wantHost:   "..",
			wantPath:   "/project-name.git",
		},
		{
			name:       "absolute path",
			input:      "/path/to/project-name.git",
			wantScheme: "file",
			wantHost:   "",
			wantPath:   "/path/to/project-name.git",
		},
		{
			name:       "windows separators converted",
			input:      "..\\project-name.git",
			wantScheme: "file",
			wantHost:   "..",
			wantPath:   "/project-name.git",
		},
		{
			name:       "trailing slash removed",
			input:      "https://github.com/owner/name.git/",
			wantScheme: "https",
			wantHost:   "github.com",
			wantPath:   "/owner/name.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) returned error: %v", tt.input, err)
			}
			if u.Scheme != tt.wantScheme {
				t.Errorf("scheme = %q, want %q", u.Scheme, tt.wantScheme)
			}
			if u.Hostname() != tt.wantHost {
				t.Errorf("host = %q, want %q", u.Hostname(), tt.wantHost)
			}
			if u.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", u.Path, tt.wantPath)
			}
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "null byte",
			input:   "git@github.com:user/\x00repo.git",
			wantErr: ErrFoundNullBytes,
		},
		{
			name:    "too many colons in shorthand",
			input:   "git@host.tld:1:2:user/repo.git",
			wantErr: ErrUnsupportedSSHFormat,
		},
		{
			// The '@'-less branch of the heuristic refuses host:path, and the
			// colon then breaks file normalization. Pinned quirk.
			name:    "bare ip host path",
			input:   "127.0.0.1:user/repo.git",
			wantErr: ErrFileNormalizeFailedSchemeAdded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Normalize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestIsSSHURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"git@github.com:user/repo.git", true},
		{"@github.com:user/repo.git", true},
		{"git@host.tld:2222:user/repo.git", true},
		{"user@extra@host.tld:path", false},
		{"github.com/user/repo", false},
		{"../relative/path", false},
		{"path:with@late-at", false},
		// Quirk: a bare host:path without '@' is not shorthand.
		{"host.tld:user/repo.git", false},
		{":", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := isSSHURL(tt.input); got != tt.want {
				t.Errorf("isSSHURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasExplicitScheme(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://github.com/owner/name", true},
		{"git+ssh://host/path", true},
		{"host.tld:path", true},
		{"c:\\project-name.git", true},
		{"git@github.com:user/repo.git", false},
		{"192.168.0.1:path", false},
		{"/absolute/path", false},
		{"../relative/path", false},
		{":missing", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := hasExplicitScheme(tt.input); got != tt.want {
				t.Errorf("hasExplicitScheme(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
