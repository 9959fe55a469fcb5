package kdbx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobischo/gokeepasslib/v3"

	"github.com/iudanet/onepif2kdbx/internal/target"
)

const testPassword = "correct horse battery staple"

func openDatabase(t *testing.T, path, password string) *gokeepasslib.Database {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)
	require.NoError(t, gokeepasslib.NewDecoder(f).Decode(db))
	require.NoError(t, db.UnlockProtectedEntries())
	return db
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		password string
		wantErr  bool
	}{
		{name: "ok", path: "out.kdbx", password: testPassword},
		{name: "empty path", path: "", password: testPassword, wantErr: true},
		{name: "empty password", path: "out.kdbx", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Create(tt.path, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, RootGroupName, c.Root().Name())
			assert.Equal(t, tt.path, c.Path())
		})
	}
}

func TestContainer_Groups(t *testing.T) {
	c, err := Create("out.kdbx", testPassword)
	require.NoError(t, err)

	logins, err := c.AddGroup(c.Root(), "Logins")
	require.NoError(t, err)
	_, err = c.AddGroup(logins, "Nested")
	require.NoError(t, err)

	g, ok := c.FindGroupByName("Logins")
	require.True(t, ok)
	assert.Same(t, logins, g)

	g, ok = c.FindGroupByName("Nested")
	require.True(t, ok)
	assert.Equal(t, "Nested", g.Name())

	_, ok = c.FindGroupByName("Missing")
	assert.False(t, ok)

	_, err = c.AddGroup(c.Root(), "")
	assert.ErrorIs(t, err, target.ErrEmptyGroupName)
}

func TestContainer_ForeignGroup(t *testing.T) {
	a, err := Create("a.kdbx", testPassword)
	require.NoError(t, err)
	b, err := Create("b.kdbx", testPassword)
	require.NoError(t, err)

	_, err = a.AddGroup(b.Root(), "Logins")
	assert.ErrorIs(t, err, target.ErrForeignGroup)

	_, err = a.AddEntry(b.Root(), "title")
	assert.ErrorIs(t, err, target.ErrForeignGroup)

	_, err = a.AddEntry(&target.GroupHandleMock{NameFunc: func() string { return "x" }}, "title")
	assert.ErrorIs(t, err, target.ErrForeignGroup)
}

func TestContainer_NotCreated(t *testing.T) {
	var c Container

	_, err := c.AddGroup(nil, "x")
	assert.ErrorIs(t, err, target.ErrNotCreated)
	_, err = c.AddEntry(nil, "x")
	assert.ErrorIs(t, err, target.ErrNotCreated)
	assert.ErrorIs(t, c.Save(), target.ErrNotCreated)

	_, ok := c.FindGroupByName("Root")
	assert.False(t, ok)
}

func TestContainer_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.kdbx")

	c, err := Create(path, testPassword)
	require.NoError(t, err)

	logins, err := c.AddGroup(c.Root(), "Logins")
	require.NoError(t, err)

	created := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	modified := time.Date(2023, 6, 7, 8, 9, 10, 0, time.UTC)

	e, err := c.AddEntry(logins, "GitHub")
	require.NoError(t, err)
	e.SetUUID("6BE4B3B86D2F4F6C8F1E0A2B3C4D5E6F")
	e.SetUsername("octocat")
	e.SetURL("https://github.com/login")
	e.SetNotes("work account")
	e.SetTags([]string{"work", "dev"})
	e.SetIcon(1)
	e.SetCreatedAt(created)
	e.SetCustomProperty("KP2A_URL", "https://gist.github.com/", false)
	e.SetCustomProperty("otp", "otpauth://totp/Sample:username?secret=ABC", true)

	// история: два старых пароля, затем текущий
	e.SetModifiedAt(time.Unix(1000, 0))
	e.SetPassword("p1")
	e.SnapshotHistory()
	e.SetModifiedAt(time.Unix(2000, 0))
	e.SetPassword("p2")
	e.SnapshotHistory()
	e.SetPassword("curr")
	e.SetModifiedAt(modified)

	require.NoError(t, c.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	db := openDatabase(t, path, testPassword)
	require.Len(t, db.Content.Root.Groups, 1)
	root := db.Content.Root.Groups[0]
	assert.Equal(t, RootGroupName, root.Name)
	require.Len(t, root.Groups, 1)
	assert.Equal(t, "Logins", root.Groups[0].Name)
	require.Len(t, root.Groups[0].Entries, 1)

	got := root.Groups[0].Entries[0]
	assert.Equal(t, "GitHub", got.GetTitle())
	assert.Equal(t, "octocat", got.GetContent("UserName"))
	assert.Equal(t, "curr", got.GetPassword())
	assert.Equal(t, "https://github.com/login", got.GetContent("URL"))
	assert.Equal(t, "work account", got.GetContent("Notes"))
	assert.Equal(t, "https://gist.github.com/", got.GetContent("KP2A_URL"))
	assert.Equal(t, "otpauth://totp/Sample:username?secret=ABC", got.GetContent("otp"))
	assert.Equal(t, "work;dev", got.Tags)
	assert.Equal(t, int64(1), got.IconID)
	assert.Equal(t, "6be4b3b8-6d2f-4f6c-8f1e-0a2b3c4d5e6f", uuid.UUID(got.UUID).String())
	assert.True(t, created.Equal(got.Times.CreationTime.Time))
	assert.True(t, modified.Equal(got.Times.LastModificationTime.Time))

	require.Len(t, got.Histories, 1)
	hist := got.Histories[0].Entries
	require.Len(t, hist, 2)
	assert.Equal(t, "p1", hist[0].GetPassword())
	assert.Equal(t, int64(1000), hist[0].Times.LastModificationTime.Time.Unix())
	assert.Equal(t, "p2", hist[1].GetPassword())
	assert.Equal(t, int64(2000), hist[1].Times.LastModificationTime.Time.Unix())
}

func TestContainer_SaveTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.kdbx")

	c, err := Create(path, testPassword)
	require.NoError(t, err)
	e, err := c.AddEntry(c.Root(), "wifi")
	require.NoError(t, err)
	e.SetPassword("old")
	e.SnapshotHistory()
	e.SetPassword("secret")
	e.SetCustomProperty("otp", "otpauth://totp/x?secret=ABC", true)

	require.NoError(t, c.Save())
	require.NoError(t, c.Save())

	// после второго сохранения добавленное поле тоже читается
	e.SetCustomProperty("TimeOtp-Secret-Base32", "ABC", true)
	require.NoError(t, c.Save())

	db := openDatabase(t, path, testPassword)
	got := db.Content.Root.Groups[0].Entries[0]
	assert.Equal(t, "secret", got.GetPassword())
	assert.Equal(t, "otpauth://totp/x?secret=ABC", got.GetContent("otp"))
	assert.Equal(t, "ABC", got.GetContent("TimeOtp-Secret-Base32"))
	require.Len(t, got.Histories, 1)
	require.Len(t, got.Histories[0].Entries, 1)
	assert.Equal(t, "old", got.Histories[0].Entries[0].GetPassword())
}

func TestContainer_SaveWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.kdbx")

	c, err := Create(path, testPassword)
	require.NoError(t, err)
	require.NoError(t, c.Save())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials("wrong password")
	assert.Error(t, gokeepasslib.NewDecoder(f).Decode(db))
}

func TestContainer_SaveMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.kdbx")

	c, err := Create(path, testPassword)
	require.NoError(t, err)
	assert.Error(t, c.Save())
}

func TestEntry_SetUUIDInvalid(t *testing.T) {
	e := newEntry("x")
	before := e.e.UUID
	e.SetUUID("not-a-uuid")
	assert.Equal(t, before, e.e.UUID)
}

func TestEntry_SetValueReplaces(t *testing.T) {
	e := newEntry("x")
	e.SetCustomProperty("a", "1", false)
	e.SetCustomProperty("a", "2", true)

	n := 0
	for _, v := range e.e.Values {
		if v.Key == "a" {
			n++
			assert.Equal(t, "2", v.Value.Content)
			assert.True(t, v.Value.Protected.Bool)
		}
	}
	assert.Equal(t, 1, n)
}
