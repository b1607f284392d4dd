package tui

import (
	"testing"
)

func TestIsInteractive(t *testing.T) {
	// The result depends on how tests are run; it must not panic.
	_ = IsInteractive()
}

func TestInCI(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    bool
	}{
		{name: "GitHub Actions", envVars: map[string]string{"GITHUB_ACTIONS": "true"}, want: true},
		{name: "GitLab CI", envVars: map[string]string{"GITLAB_CI": "true"}, want: true},
		{name: "Jenkins", envVars: map[string]string{"JENKINS_URL": "http://jenkins.local"}, want: true},
		{name: "Generic CI", envVars: map[string]string{"CI": "true"}, want: true},
		{name: "none", envVars: map[string]string{}, want: false},
	}

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS", "CIRCLECI", "BUILDKITE"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range ciVars {
				t.Setenv(v, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			if got := inCI(); got != tt.want {
				t.Errorf("inCI() = %v, want %v", got, tt.want)
			}
			if tt.want && ShouldPrompt() {
				t.Error("ShouldPrompt() should be false in CI")
			}
		})
	}
}
