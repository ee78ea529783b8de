package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/giturl/pkg/giturl"
)

func TestDefaultRulesAzureDevops(t *testing.T) {
	got, err := Default().Parse("git@ssh.dev.azure.com:v3/CompanyName/ProjectName/RepoName")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := &giturl.GitURL{
		Host:          "ssh.dev.azure.com",
		Name:          "RepoName",
		Owner:         "ProjectName",
		Organization:  "CompanyName",
		Fullname:      "CompanyName/ProjectName/RepoName",
		Scheme:        giturl.SchemeSSH,
		AuthUser:      "git",
		Path:          "v3/CompanyName/ProjectName/RepoName",
		SkipPartCount: 1,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestRulesNoMatchFallsThrough(t *testing.T) {
	got, err := Default().Parse("git@github.com:user/repo.git")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if got.SkipPartCount != 0 {
		t.Errorf("SkipPartCount = %d, want 0 for unmatched host", got.SkipPartCount)
	}
	if got.Fullname != "user/repo" {
		t.Errorf("Fullname = %q, want %q", got.Fullname, "user/repo")
	}
}

func TestMatch(t *testing.T) {
	rules := &Rules{Rules: []Rule{
		{Host: "ssh.dev.azure.com", SkipParts: 1},
		{Host: "git.internal.example.com", SkipParts: 2},
	}}

	tests := []struct {
		host string
		want int
	}{
		{"ssh.dev.azure.com", 1},
		{"SSH.DEV.AZURE.COM", 1},
		{"git.internal.example.com", 2},
		{"github.com", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := rules.Match(tt.host); got != tt.want {
			t.Errorf("Match(%q) = %d, want %d", tt.host, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := `rules:
  - host: ssh.dev.azure.com
    skip_parts: 1
  - host: git.internal.example.com
    skip_parts: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	rules, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := &Rules{Rules: []Rule{
		{Host: "ssh.dev.azure.com", SkipParts: 1},
		{Host: "git.internal.example.com", SkipParts: 2},
	}}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !IsLoadError(err) {
		t.Errorf("Load of missing file = %v, want LoadError", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: {not: [valid"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); !IsParseError(err) {
		t.Errorf("Load of malformed YAML = %v, want ParseError", err)
	}
}
