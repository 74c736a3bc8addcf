package health

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const healthyPackage = `{
  "name": "app",
  "scripts": {"dev": "next dev", "test": "vitest"},
  "dependencies": {"next": "^14.1.0", "react": "^18.2.0", "react-dom": "^18.2.0"}
}`

func find(t *testing.T, r Report, name string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %s not found", name)
	return Check{}
}

func TestRunPerfectProject(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/app/package.json", []byte(healthyPackage), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/app/tsconfig.json", []byte("{}"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/app/.env.local", []byte("STRIPE_SECRET_KEY=sk_test_123\n"), 0o600))

	report := Run(fs, "/app", Options{})
	require.Equal(t, 4, report.Total)
	require.Equal(t, 4, report.Score)
	require.True(t, report.Perfect())
	require.Empty(t, report.Fixable())
}

func TestRunEmptyDirectory(t *testing.T) {
	t.Parallel()

	report := Run(afero.NewMemMapFs(), "/app", Options{})
	require.Zero(t, report.Score)
	require.False(t, report.Perfect())

	require.Equal(t, "No tsconfig.json found", find(t, report, "TypeScript").Message)
	require.Equal(t, "Could not check test configuration", find(t, report, "Tests").Message)
	require.Equal(t, "No .env.local file found", find(t, report, "Environment").Message)
	require.Equal(t, StatusWarn, find(t, report, "Framework").Status)
}

func TestEnvironmentFlagsPlaceholders(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := "\nSTRIPE_SECRET_KEY=# Your Stripe secret key\nNEXT_PUBLIC_URL=http://localhost:3000\nEMPTY=\n"
	require.NoError(t, afero.WriteFile(fs, "/app/.env.local", []byte(content), 0o600))

	check := find(t, Run(fs, "/app", Options{}), "Environment")
	require.Equal(t, StatusWarn, check.Status)
	require.Equal(t, ".env.local is missing values for EMPTY, STRIPE_SECRET_KEY", check.Message)
	require.NotEmpty(t, check.Fix)
}

func TestEnvironmentCustomFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/app/.env", []byte("A=1\n"), 0o600))

	check := find(t, Run(fs, "/app", Options{EnvFile: ".env"}), "Environment")
	require.Equal(t, StatusPass, check.Status)
	require.Equal(t, ".env exists", check.Message)
}

func TestTestsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pkg     string
		status  Status
		message string
	}{
		{"script present", `{"scripts":{"test":"jest"}}`, StatusPass, "Test script configured"},
		{"script missing", `{"scripts":{"dev":"next dev"}}`, StatusWarn, "No test script found"},
		{"invalid json", `{"scripts":`, StatusWarn, "Could not check test configuration"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/app/package.json", []byte(tt.pkg), 0o644))

			check := find(t, Run(fs, "/app", Options{}), "Tests")
			require.Equal(t, tt.status, check.Status)
			require.Equal(t, tt.message, check.Message)
		})
	}
}

func TestFrameworkCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		deps    string
		status  Status
		message string
		fix     string
	}{
		{"current", `{"next":"^14.0.0","react":"^18.2.0"}`, StatusPass, "Framework versions are current", ""},
		{"old next", `{"next":"^13.4.2","react":"^18.2.0"}`, StatusWarn, "next ^13.4.2 is below 14.0.0", "npm install next@latest"},
		{"old both", `{"next":"~12.3","react":"17.0.2"}`, StatusWarn, "next ~12.3 is below 14.0.0; react 17.0.2 is below 18.0.0", "npm install next@latest react@latest"},
		{"latest tag", `{"next":"latest"}`, StatusPass, "Framework versions are current", ""},
		{"garbage range", `{"react":"not-a-version"}`, StatusWarn, `react has an unrecognised range "not-a-version"`, ""},
		{"untracked only", `{"vue":"^3.0.0"}`, StatusPass, "No tracked frameworks declared", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			pkg := `{"dependencies":` + tt.deps + `}`
			require.NoError(t, afero.WriteFile(fs, "/app/package.json", []byte(pkg), 0o644))

			check := find(t, Run(fs, "/app", Options{}), "Framework")
			require.Equal(t, tt.status, check.Status)
			require.Equal(t, tt.message, check.Message)
			require.Equal(t, tt.fix, check.Fix)
		})
	}
}
