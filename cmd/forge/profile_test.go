package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/createforge/internal/prompt"
)

func TestProfileCommand_ShowDefaults(t *testing.T) {
	app := newTestApp(t)

	out, err := executeCommand(app.AppContext, "profile")
	require.NoError(t, err)
	require.Contains(t, out, "Your Profile")
	require.Contains(t, out, "Name: Not set")
	require.Contains(t, out, "Projects created: 0")
	require.Contains(t, out, "(not set)")
	require.Contains(t, out, "(none)")
}

func TestProfileCommand_ShowStoredValues(t *testing.T) {
	app := newTestApp(t)
	store := app.ProfileStore()
	require.NoError(t, store.SetName("Ada"))
	require.NoError(t, store.AddRecentTemplate("ai-rag"))
	require.NoError(t, store.RecordFirstSuccess())

	out, err := executeCommand(app.AppContext, "profile")
	require.NoError(t, err)
	require.Contains(t, out, "Name: Ada")
	require.Contains(t, out, "• ai-rag")
	require.Contains(t, out, "First success: 2025-10-03")
}

func TestProfileCommand_ShowRejectsCorruptFile(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, afero.WriteFile(app.Fs, testProfilePath, []byte("profile: ["), 0o600))

	_, err := executeCommand(app.AppContext, "profile")
	require.ErrorContains(t, err, "show profile")
}

func TestProfileCommand_Edit(t *testing.T) {
	app := newTestApp(t)
	app.Interactive = true
	app.prompter.texts = []string{"Grace"}
	app.prompter.multis = [][]string{{"nextjs", "stripe"}}
	app.prompter.selects = []string{"airbnb"}

	out, err := executeCommand(app.AppContext, "profile", "--edit")
	require.NoError(t, err)
	require.Contains(t, out, "Profile updated!")

	doc := loadProfile(t, app)
	require.Equal(t, "Grace", doc.Profile.Name)
	require.Equal(t, []string{"nextjs", "stripe"}, doc.Profile.FavoriteStack)
	require.Equal(t, "airbnb", doc.Profile.CodeStyle)
}

func TestProfileCommand_EditCancelled(t *testing.T) {
	app := newTestApp(t)
	app.Interactive = true
	app.prompter.err = prompt.ErrCancelled

	out, err := executeCommand(app.AppContext, "profile", "--edit")
	require.NoError(t, err)
	require.Contains(t, out, "Cancelled")

	exists, err := afero.Exists(app.Fs, testProfilePath)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestProfileCommand_EditNeedsTerminal(t *testing.T) {
	app := newTestApp(t)

	_, err := executeCommand(app.AppContext, "profile", "--edit")
	require.ErrorContains(t, err, "interactive terminal")
}
