package version

import "testing"

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if BuildTime == "" || GitCommit == "" {
		t.Error("build info should be initialized")
	}
}

func TestString(t *testing.T) {
	origVersion, origCommit, origTime := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = origVersion, origCommit, origTime })

	Version, GitCommit = "v1.0.0", "unknown"
	if got := String(); got != "barrelgen v1.0.0" {
		t.Errorf("String() = %q", got)
	}

	GitCommit, BuildTime = "abc123", "2026-01-02"
	if got := String(); got != "barrelgen v1.0.0 (abc123, built 2026-01-02)" {
		t.Errorf("String() = %q", got)
	}
}
