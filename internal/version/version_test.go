package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	Version = "1.0.0"
	Commit = "abc123def456"
	Date = "2026-01-01T12:00:00Z"
	defer func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	}()

	info := GetInfo()

	if info.Version != "1.0.0" {
		t.Errorf("GetInfo().Version = %v, want 1.0.0", info.Version)
	}
	if info.Commit != "abc123def456" {
		t.Errorf("GetInfo().Commit = %v, want abc123def456", info.Commit)
	}
	if info.Date != "2026-01-01T12:00:00Z" {
		t.Errorf("GetInfo().Date = %v, want 2026-01-01T12:00:00Z", info.Date)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GetInfo().GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("GetInfo().Platform = %v, want %v", info.Platform, want)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want []string
	}{
		{
			name: "full version info",
			info: Info{
				Version:   "1.0.0",
				Commit:    "abc123def456",
				Date:      "2026-01-01T12:00:00Z",
				GoVersion: "go1.24.6",
				Platform:  "linux/amd64",
			},
			want: []string{"homewhisper", "1.0.0", "abc123de", "2026-01-01T12:00:00Z", "go1.24.6", "linux/amd64"},
		},
		{
			name: "short commit hash",
			info: Info{Version: "dev", Commit: "abc", Date: "unknown", GoVersion: "go1.24.6", Platform: "darwin/arm64"},
			want: []string{"homewhisper dev (abc)", "darwin/arm64"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.info.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Info.String() = %q, should contain %q", got, want)
				}
			}
		})
	}
}

func TestInfoShort(t *testing.T) {
	info := Info{Version: "2.3.4", Commit: "abcdef"}
	if got := info.Short(); got != "2.3.4" {
		t.Errorf("Info.Short() = %q, want 2.3.4", got)
	}
}
