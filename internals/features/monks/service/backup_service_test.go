package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "monges_backend/internals/databases"
	"monges_backend/internals/features/monks/model"
)

type fakePicker struct {
	save, open string
	err        error
	suggested  string
}

func (p *fakePicker) SavePath(_ context.Context, suggested string) (string, error) {
	p.suggested = suggested
	return p.save, p.err
}

func (p *fakePicker) OpenPath(context.Context) (string, error) {
	return p.open, p.err
}

func seed(t *testing.T, s *Store, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := s.Create(context.Background(), model.Monk{Nome: model.StrPtr(n)})
		require.NoError(t, err)
	}
}

func names(t *testing.T, s *Store) []string {
	t.Helper()
	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(all))
	for i := range all {
		out = append(out, all[i].Name())
	}
	return out
}

func TestBackup_ThenRestore(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	ctx := context.Background()

	seed(t, s, "Agostinho", "Bento")

	dest := filepath.Join(t.TempDir(), "backup.db")
	n, err := b.BackupTo(ctx, dest)
	require.NoError(t, err)
	assert.Positive(t, n)

	// backup adalah file SQLite biasa yang bisa dibuka sendiri
	other := NewStore(nil)
	require.NoError(t, other.Connect(dest))
	assert.Equal(t, []string{"Agostinho", "Bento"}, names(t, other))
	require.NoError(t, other.Close())

	seed(t, s, "Caetano")
	require.Len(t, names(t, s), 3)

	rev := s.Revision()
	_, err = b.RestoreFrom(ctx, dest)
	require.NoError(t, err)
	assert.Greater(t, s.Revision(), rev)
	assert.Equal(t, []string{"Agostinho", "Bento"}, names(t, s))

	_, err = os.Stat(s.Path() + ".prev")
	assert.True(t, os.IsNotExist(err))

	// store tetap bisa ditulis setelah restore
	seed(t, s, "Domingos")
	assert.Len(t, names(t, s), 3)
}

func TestRestore_CopyFailsLeavesFileUntouched(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	ctx := context.Background()

	seed(t, s, "Agostinho")
	dest := filepath.Join(t.TempDir(), "backup.db")
	_, err := b.BackupTo(ctx, dest)
	require.NoError(t, err)
	seed(t, s, "Bento")

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	rev := s.Revision()

	orig := copyFile
	copyFile = func(dst io.Writer, src io.Reader) (int64, error) {
		n, _ := io.CopyN(dst, src, 100)
		return n, errors.New("disk full")
	}
	t.Cleanup(func() { copyFile = orig })

	_, err = b.RestoreFrom(ctx, dest)
	require.ErrorIs(t, err, ErrStorage)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, rev, s.Revision())
	assert.Equal(t, []string{"Agostinho", "Bento"}, names(t, s))

	// tidak ada file sementara tertinggal
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}

func TestRestore_RejectsNonDatabase(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	seed(t, s, "Agostinho")

	bad := filepath.Join(t.TempDir(), "bad.db")
	require.NoError(t, os.WriteFile(bad, []byte("nome;livros\nx;y\n"), 0o600))

	_, err := b.RestoreFrom(context.Background(), bad)
	require.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, []string{"Agostinho"}, names(t, s))
}

func TestRestore_MissingSource(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	seed(t, s, "Agostinho")

	_, err := b.RestoreFrom(context.Background(), filepath.Join(t.TempDir(), "nope.db"))
	require.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, []string{"Agostinho"}, names(t, s))
}

func TestBackupRestore_Cancelled(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	b.now = func() time.Time { return time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC) }
	seed(t, s, "Agostinho")
	rev := s.Revision()

	p := &fakePicker{}
	_, err := b.Backup(context.Background(), p)
	assert.ErrorIs(t, err, ErrUserCancelled)
	assert.Equal(t, "backup_monges_2025-03-09.db", p.suggested)

	_, err = b.Restore(context.Background(), p)
	assert.ErrorIs(t, err, ErrUserCancelled)

	assert.Equal(t, rev, s.Revision())
	assert.Equal(t, []string{"Agostinho"}, names(t, s))
}

func TestBackup_ViaPicker(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	seed(t, s, "Agostinho")

	dest := filepath.Join(t.TempDir(), "b.db")
	_, err := b.Backup(context.Background(), &fakePicker{save: dest})
	require.NoError(t, err)

	_, err = b.Restore(context.Background(), &fakePicker{open: dest})
	require.NoError(t, err)
	assert.Equal(t, []string{"Agostinho"}, names(t, s))
}

func TestBackup_RejectsLiveFile(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	seed(t, s, "Agostinho")

	_, err := b.BackupTo(context.Background(), s.Path())
	require.ErrorIs(t, err, ErrStorage)
	_, err = b.RestoreFrom(context.Background(), s.Path())
	require.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, []string{"Agostinho"}, names(t, s))
}

// failNextOpen membuat pemanggilan openConn berikutnya gagal, sesudahnya normal lagi.
func failNextOpen(t *testing.T) *int {
	t.Helper()
	orig := openConn
	calls := 0
	openConn = func(c *database.Conn, path string) error {
		calls++
		if calls == 1 {
			return errors.New("reconnect refused")
		}
		return orig(c, path)
	}
	t.Cleanup(func() { openConn = orig })
	return &calls
}

func TestRestore_ReconnectFailsRollsBack(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	ctx := context.Background()

	seed(t, s, "Agostinho")
	dest := filepath.Join(t.TempDir(), "backup.db")
	_, err := b.BackupTo(ctx, dest)
	require.NoError(t, err)
	seed(t, s, "Bento")

	require.NoError(t, s.conn.Checkpoint())
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	calls := failNextOpen(t)

	_, err = b.RestoreFrom(ctx, dest)
	require.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "reconnect refused")
	assert.Equal(t, 2, *calls)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"Agostinho", "Bento"}, names(t, s))

	_, err = os.Stat(s.Path() + ".prev")
	assert.True(t, os.IsNotExist(err))

	// handle hasil rollback tetap bisa ditulis
	seed(t, s, "Caetano")
	assert.Len(t, names(t, s), 3)
}

func TestRestore_LiveFileMissingKeepsOriginalCause(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	ctx := context.Background()

	seed(t, s, "Agostinho")
	dest := filepath.Join(t.TempDir(), "backup.db")
	_, err := b.BackupTo(ctx, dest)
	require.NoError(t, err)

	require.NoError(t, os.Remove(s.Path()))
	removeSidecars(s.Path())
	failNextOpen(t)

	_, err = b.RestoreFrom(ctx, dest)
	require.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "reconnect refused")
	assert.NotContains(t, err.Error(), "rollback")

	_, err = os.Stat(s.Path() + ".prev")
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, s.Ping(ctx))
}

func TestRestore_LiveFileMissing(t *testing.T) {
	s := newTestStore(t)
	b := NewBackupService(s)
	ctx := context.Background()

	seed(t, s, "Agostinho")
	dest := filepath.Join(t.TempDir(), "backup.db")
	_, err := b.BackupTo(ctx, dest)
	require.NoError(t, err)

	require.NoError(t, os.Remove(s.Path()))
	removeSidecars(s.Path())

	_, err = b.RestoreFrom(ctx, dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"Agostinho"}, names(t, s))
}
