package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/symdex"
	"github.com/fwojciec/symdex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Staged Preview Publishing
// Every run stages previews in a temp directory and moves them into the
// preview directory on commit, leaving everything else there untouched.

func openStore(t *testing.T, base string, policy symdex.CollisionPolicy) *fs.PreviewStore {
	t.Helper()
	store := fs.NewPreviewStore(base, "symbols", policy)
	require.NoError(t, store.Open())
	return store
}

func TestPreviewStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given an open store
	base := t.TempDir()
	store := openStore(t, base, symdex.CollisionOverwrite)
	defer store.Abort()

	// When I save a preview
	name, err := store.Save(context.Background(), &symdex.Preview{Slug: "armor", Content: []byte("<svg/>")})

	// Then it is staged under its slug
	require.NoError(t, err)
	assert.Equal(t, "armor.svg", name)
	_, err = os.Stat(filepath.Join(base, "symbols.tmp", "armor.svg"))
	require.NoError(t, err, "file should exist in temp directory")

	// And the final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "symbols"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestPreviewStore_CommitKeepsExistingFiles(t *testing.T) {
	t.Parallel()

	// Given a preview directory with an older preview, a user file and a
	// preview that will be regenerated
	base := t.TempDir()
	dir := filepath.Join(base, "symbols")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old_symbol.svg"), []byte("old"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("mine"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "armor.svg"), []byte("previous"), 0644))

	// When a new run saves and commits
	store := openStore(t, base, symdex.CollisionOverwrite)
	_, err := store.Save(context.Background(), &symdex.Preview{Slug: "armor", Content: []byte("<svg/>")})
	require.NoError(t, err)
	require.NoError(t, store.Commit())

	// Then the regenerated preview is overwritten
	content, err := os.ReadFile(filepath.Join(dir, "armor.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))

	// And the other files survive unchanged
	content, err = os.ReadFile(filepath.Join(dir, "old_symbol.svg"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
	content, err = os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(content))

	// And the temp directory is gone
	_, err = os.Stat(filepath.Join(base, "symbols.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestPreviewStore_CommitCreatesPreviewDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := openStore(t, base, symdex.CollisionOverwrite)
	_, err := store.Save(context.Background(), &symdex.Preview{Slug: "armor", Content: []byte("<svg/>")})
	require.NoError(t, err)

	require.NoError(t, store.Commit())

	assert.FileExists(t, filepath.Join(base, "symbols", "armor.svg"))
}

func TestPreviewStore_AbortKeepsPreviousPreviews(t *testing.T) {
	t.Parallel()

	// Given existing previews
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "symbols"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "symbols", "armor.svg"), []byte("old"), 0644))

	// When a run saves then aborts
	store := openStore(t, base, symdex.CollisionOverwrite)
	_, err := store.Save(context.Background(), &symdex.Preview{Slug: "armor", Content: []byte("new")})
	require.NoError(t, err)
	require.NoError(t, store.Abort())

	// Then the previous preview is untouched
	content, err := os.ReadFile(filepath.Join(base, "symbols", "armor.svg"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	// And the temp directory is cleaned up
	_, err = os.Stat(filepath.Join(base, "symbols.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")
}

func TestPreviewStore_OpenClearsStaleStaging(t *testing.T) {
	t.Parallel()

	// Given an interrupted run left staged files
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "symbols.tmp"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "symbols.tmp", "leftover.svg"), []byte("x"), 0644))

	// When a new run opens and commits
	store := openStore(t, base, symdex.CollisionOverwrite)
	require.NoError(t, store.Commit())

	// Then the leftover is not published
	_, err := os.Stat(filepath.Join(base, "symbols", "leftover.svg"))
	assert.True(t, os.IsNotExist(err))
}

func TestPreviewStore_OpenFailsWhileLocked(t *testing.T) {
	t.Parallel()

	// Given one indexer holds the location
	base := t.TempDir()
	first := openStore(t, base, symdex.CollisionOverwrite)

	// When a second indexer opens it
	second := fs.NewPreviewStore(base, "symbols", symdex.CollisionOverwrite)
	err := second.Open()

	// Then it is refused
	require.Error(t, err)
	assert.Equal(t, symdex.ECONFLICT, symdex.ErrorCode(err))

	// And succeeds once the first releases it
	require.NoError(t, first.Abort())
	require.NoError(t, second.Open())
	require.NoError(t, second.Abort())
}

func TestPreviewStore_SaveRequiresOpen(t *testing.T) {
	t.Parallel()

	store := fs.NewPreviewStore(t.TempDir(), "symbols", symdex.CollisionOverwrite)

	_, err := store.Save(context.Background(), &symdex.Preview{Slug: "armor"})

	require.Error(t, err)
	assert.Equal(t, symdex.EINVALID, symdex.ErrorCode(err))
}

func TestPreviewStore_CollisionPolicies(t *testing.T) {
	t.Parallel()

	previews := []*symdex.Preview{
		{Slug: "tank", Index: 0, Content: []byte("<svg>a</svg>")},
		{Slug: "tank", Index: 1, Content: []byte("<svg>b</svg>")},
		{Slug: "tank", Index: 2, Content: []byte("<svg>c</svg>")},
		{Slug: "", Index: 3, Content: []byte("<svg>d</svg>")},
	}

	saveAll := func(t *testing.T, policy symdex.CollisionPolicy) (string, []string) {
		t.Helper()
		base := t.TempDir()
		store := openStore(t, base, policy)
		var names []string
		for _, p := range previews {
			name, err := store.Save(context.Background(), p)
			require.NoError(t, err)
			names = append(names, name)
		}
		require.NoError(t, store.Commit())
		return filepath.Join(base, "symbols"), names
	}

	t.Run("overwrite reuses the slug name", func(t *testing.T) {
		t.Parallel()

		dir, names := saveAll(t, symdex.CollisionOverwrite)

		assert.Equal(t, []string{"tank.svg", "tank.svg", "tank.svg", "symbol_3.svg"}, names)
		content, err := os.ReadFile(filepath.Join(dir, "tank.svg"))
		require.NoError(t, err)
		assert.Equal(t, "<svg>c</svg>", string(content), "last writer wins")
	})

	t.Run("suffix numbers repeated names", func(t *testing.T) {
		t.Parallel()

		dir, names := saveAll(t, symdex.CollisionSuffix)

		assert.Equal(t, []string{"tank.svg", "tank_2.svg", "tank_3.svg", "symbol_3.svg"}, names)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 4)
	})

	t.Run("hash appends a content hash to repeated names", func(t *testing.T) {
		t.Parallel()

		dir, names := saveAll(t, symdex.CollisionHash)

		assert.Equal(t, "tank.svg", names[0])
		assert.Regexp(t, `^tank_[0-9a-f]{8}\.svg$`, names[1])
		assert.Regexp(t, `^tank_[0-9a-f]{8}\.svg$`, names[2])
		assert.NotEqual(t, names[1], names[2])
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 4)
	})
}
