package profile

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

const profilePath = "/home/dev/.createforge/profile.yaml"

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), profilePath, nil)
	doc, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Defaults(), doc)
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := NewStore(fs, profilePath, nil)

	doc := Defaults()
	doc.Profile.Name = "Sam"
	doc.Profile.CodeStyle = "airbnb"
	doc.Profile.FavoriteStack = []string{"nextjs", "stripe"}
	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, doc, loaded)

	exists, err := afero.Exists(fs, profilePath+".tmp")
	require.NoError(t, err)
	require.False(t, exists)

	raw, err := afero.ReadFile(fs, profilePath)
	require.NoError(t, err)
	require.Contains(t, string(raw), "code_style: airbnb")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, profilePath, []byte("profile:\n  name: [x\n"), 0o600))

	_, err := NewStore(fs, profilePath, nil).Load()
	var parseErr *forgeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, profilePath, parseErr.Path)
}

func TestSetCodeStyleValidates(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), profilePath, nil)
	require.NoError(t, store.SetCodeStyle("google"))

	err := store.SetCodeStyle("tabs-only")
	var ve *forgeerrors.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Field, "CodeStyle")

	doc, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "google", doc.Profile.CodeStyle)
}

func TestRecordProjectCreated(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	store := NewStore(afero.NewMemMapFs(), profilePath, fixedClock(ts))

	require.NoError(t, store.RecordProjectCreated())
	require.NoError(t, store.RecordProjectCreated())

	doc, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 2, doc.Stats.ProjectsCreated)
	require.NotNil(t, doc.Stats.LastUsed)
	require.True(t, ts.Equal(*doc.Stats.LastUsed))
}

func TestRecordFirstSuccessOnlyOnce(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, NewStore(fs, profilePath, fixedClock(first)).RecordFirstSuccess())
	require.NoError(t, NewStore(fs, profilePath, fixedClock(first.Add(48*time.Hour))).RecordFirstSuccess())

	doc, err := NewStore(fs, profilePath, nil).Load()
	require.NoError(t, err)
	require.True(t, first.Equal(*doc.Stats.FirstSuccess))
}

func TestAddRecentTemplate(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), profilePath, nil)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "c"} {
		require.NoError(t, store.AddRecentTemplate(id))
	}

	doc, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"c", "f", "e", "d", "b"}, doc.Templates.Recent)
}

func TestPushRecent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		recent []string
		id     string
		want   []string
	}{
		{"empty", nil, "saas", []string{"saas"}},
		{"moves existing to front", []string{"a", "saas", "b"}, "saas", []string{"saas", "a", "b"}},
		{"caps length", []string{"a", "b", "c", "d", "e"}, "f", []string{"f", "a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, PushRecent(tt.recent, tt.id))
		})
	}
}

func TestSetNameAndFavoriteStack(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), profilePath, nil)
	require.NoError(t, store.SetName("Robin"))
	stack := []string{"nextjs", "supabase"}
	require.NoError(t, store.SetFavoriteStack(stack))
	stack[0] = "mutated"

	doc, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "Robin", doc.Profile.Name)
	require.Equal(t, []string{"nextjs", "supabase"}, doc.Profile.FavoriteStack)
}
