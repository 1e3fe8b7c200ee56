package version

import "testing"

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild })

	Version, Commit, BuildTime = "v0.3.0", "0123456789abcdef", "2024-01-01T00:00:00Z"
	want := "v0.3.0 (commit: 0123456, built: 2024-01-01T00:00:00Z)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	Commit = "abc"
	if got := shortCommit(); got != "abc" {
		t.Errorf("shortCommit() = %q, want %q", got, "abc")
	}
}
