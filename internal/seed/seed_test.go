//nolint:goconst // test cases intentionally repeat strings for readability
package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/portrait/internal/profile"
	"github.com/llehouerou/portrait/internal/state"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSeed(t, `
[[profile]]
name = "Ada Lovelace"
username = "@ada"
online = true
photos = ["photos/ada.jpg", "/abs/ada2.png"]
links = ["https://example.org/engines"]

[[profile.files]]
name = "notes.pdf"
size = "2.5 MB"

[[profile.files]]
name = "raw.bin"
size = 1024

[[profile]]
kind = "channel"
name = "Difference Engine Club"
subscribers = 42
last_seen = "2026-03-01T10:00:00Z"
latest_post = "Meeting moved to Thursday"
posted_at = "2026-03-02T09:00:00Z"
`)

	subjects, err := Load(path)
	require.NoError(t, err)
	require.Len(t, subjects, 2)

	ada := subjects[0]
	assert.Equal(t, profile.User, ada.Kind)
	assert.Equal(t, "ada", ada.Username)
	assert.True(t, ada.Online)
	assert.Equal(t, []string{
		filepath.Join(filepath.Dir(path), "photos", "ada.jpg"),
		"/abs/ada2.png",
	}, ada.Photos)
	assert.Equal(t, []string{"https://example.org/engines"}, ada.Links)
	require.Len(t, ada.Files, 2)
	assert.Equal(t, uint64(2_500_000), ada.Files[0].Size)
	assert.Equal(t, uint64(1024), ada.Files[1].Size)

	club := subjects[1]
	assert.Equal(t, profile.Channel, club.Kind)
	assert.Equal(t, 42, club.Subscribers)
	assert.True(t, club.LastSeen.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Meeting moved to Thursday", club.LatestPost)
	assert.True(t, club.PostedAt.Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[[profile]]\nusername = \"ghost\"\n"},
		{"unknown kind", "[[profile]]\nname = \"R2\"\nkind = \"droid\"\n"},
		{"bad size", "[[profile]]\nname = \"A\"\n[[profile.files]]\nname = \"x\"\nsize = \"lots\"\n"},
		{"invalid toml", "[[profile]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeSeed(t, tt.content)); err == nil {
				t.Errorf("Load() expected error for %s", tt.name)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"a.jpg", filepath.Join("/seed", "a.jpg")},
		{"/x/a.jpg", "/x/a.jpg"},
		{"~/a.jpg", filepath.Join(home, "a.jpg")},
	}
	for _, tt := range tests {
		if got := resolvePath("/seed", tt.in); got != tt.want {
			t.Errorf("resolvePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImport_UpdatesByUsername(t *testing.T) {
	st, err := state.OpenPath(":memory:")
	require.NoError(t, err)
	defer st.Close()

	n, err := Import(st, []profile.Subject{
		{Name: "Ada", Username: "ada"},
		{Name: "Grace", Username: "grace"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Import(st, []profile.Subject{{Name: "Ada Lovelace", Username: "ada", Photos: []string{"/p/a.jpg"}}})
	require.NoError(t, err)

	all, err := st.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ada, err := st.FindProfile("ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", ada.Name)
	assert.Equal(t, []string{"/p/a.jpg"}, ada.Photos)
}

func TestImport_StopsOnError(t *testing.T) {
	st, err := state.OpenPath(":memory:")
	require.NoError(t, err)
	defer st.Close()

	n, err := Import(st, []profile.Subject{{Name: "Ada"}, {Name: ""}, {Name: "Grace"}})
	require.Error(t, err)
	assert.Equal(t, 1, n)
}
