package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// PathPicker meminta path ke user (dialog, prompt terminal, body request).
// Path kosong / ErrUserCancelled = user membatalkan.
type PathPicker interface {
	SavePath(ctx context.Context, suggestedName string) (string, error)
	OpenPath(ctx context.Context) (string, error)
}

// header 16 byte setiap file SQLite
var sqliteMagic = []byte("SQLite format 3\x00")

// copyFile bisa diganti di test untuk mensimulasikan gagal di tengah salin.
var copyFile = func(dst io.Writer, src io.Reader) (int64, error) {
	return io.Copy(dst, src)
}

type BackupService struct {
	store *Store
	now   func() time.Time
}

func NewBackupService(store *Store) *BackupService {
	return &BackupService{store: store, now: time.Now}
}

func SuggestedBackupName(now time.Time) string {
	return fmt.Sprintf("backup_monges_%s.db", now.Format("2006-01-02"))
}

// =======================
// Backup
// =======================

// Backup meminta tujuan lewat picker lalu menyalin file. Batal → ErrUserCancelled.
func (b *BackupService) Backup(ctx context.Context, picker PathPicker) (int64, error) {
	dest, err := picker.SavePath(ctx, SuggestedBackupName(b.now()))
	if err != nil {
		return 0, err
	}
	if dest == "" {
		return 0, ErrUserCancelled
	}
	return b.BackupTo(ctx, dest)
}

// BackupTo menyalin file DB aktif byte-per-byte ke dest.
// WAL di-checkpoint dulu supaya file utama berisi semua commit.
func (b *BackupService) BackupTo(ctx context.Context, dest string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if same, _ := sameFile(dest, s.conn.Path()); same {
		return 0, storageErr("backup", errors.New("destination is the live database file"))
	}
	if err := s.conn.Checkpoint(); err != nil {
		return 0, storageErr("backup checkpoint", err)
	}

	n, err := copyToTemp(s.conn.Path(), filepath.Dir(dest), filepath.Base(dest), func(tmp string) error {
		return os.Rename(tmp, dest)
	})
	if err != nil {
		return 0, storageErr("backup", err)
	}
	log.Printf("[INFO] backup %s → %s (%d bytes)", s.conn.Path(), dest, n)
	return n, nil
}

// =======================
// Restore
// =======================

// Restore meminta file sumber lewat picker lalu mengganti file DB.
func (b *BackupService) Restore(ctx context.Context, picker PathPicker) (int64, error) {
	src, err := picker.OpenPath(ctx)
	if err != nil {
		return 0, err
	}
	if src == "" {
		return 0, ErrUserCancelled
	}
	return b.RestoreFrom(ctx, src)
}

// RestoreFrom mengganti file DB dengan salinan src, lalu reconnect.
// Urutan:
//  1. salin src ke file sementara di folder yang sama (file DB belum disentuh)
//  2. cek header SQLite
//  3. tutup handle, geser file lama ke .prev, rename file sementara jadi file DB
//  4. reconnect; kalau gagal, kembalikan .prev dan reconnect ke file lama
//
// Sukses hanya dikembalikan setelah salin + reconnect selesai.
func (b *BackupService) RestoreFrom(ctx context.Context, src string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.conn.Path()
	if target == "" {
		return 0, storageErr("restore", errors.New("store has no backing file"))
	}
	if same, _ := sameFile(src, target); same {
		return 0, storageErr("restore", errors.New("source is the live database file"))
	}

	var staged string
	n, err := copyToTemp(src, filepath.Dir(target), filepath.Base(target), func(tmp string) error {
		if err := checkSQLiteHeader(tmp); err != nil {
			return err
		}
		staged = tmp
		return nil
	})
	if err != nil {
		return 0, storageErr("restore", err)
	}
	defer func() {
		if staged != "" {
			_ = os.Remove(staged)
		}
	}()

	if err := s.conn.Close(); err != nil {
		return 0, storageErr("restore release", err)
	}
	// WAL/SHM lama milik file lama, jangan sampai diterapkan ke file baru
	removeSidecars(target)

	prev := target + ".prev"
	_ = os.Remove(prev)
	if err := os.Rename(target, prev); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return 0, b.rollback(target, "", storageErr("restore swap", err))
		}
		// file lama sudah hilang: tidak ada .prev untuk dikembalikan
		prev = ""
	}
	if err := os.Rename(staged, target); err != nil {
		return 0, b.rollback(target, prev, storageErr("restore swap", err))
	}
	staged = ""

	if err := s.connectLocked(target); err != nil {
		removeSidecars(target)
		return 0, b.rollback(target, prev, err)
	}
	if prev != "" {
		_ = os.Remove(prev)
	}

	log.Printf("[INFO] restore %s → %s (%d bytes)", src, target, n)
	return n, nil
}

// rollback mengembalikan file lama (kalau sudah digeser) dan membuka lagi handle-nya.
func (b *BackupService) rollback(target, prev string, cause error) error {
	s := b.store
	if prev != "" {
		if err := os.Rename(prev, target); err != nil {
			log.Printf("[ERROR] restore rollback rename: %v", err)
			return errors.Join(cause, storageErr("restore rollback", err))
		}
	}
	if err := s.connectLocked(target); err != nil {
		log.Printf("[ERROR] restore rollback reconnect: %v", err)
		return errors.Join(cause, err)
	}
	return cause
}

// =======================
// helpers
// =======================

// copyToTemp menyalin src ke file sementara di dir, fsync, lalu menyerahkan path-nya ke done.
// Kalau salin atau done gagal, file sementara dihapus.
func copyToTemp(src, dir, base string, done func(tmp string) error) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return 0, err
	}
	tmp := out.Name()
	ok := false
	defer func() {
		if !ok {
			_ = os.Remove(tmp)
		}
	}()

	n, err := copyFile(out, in)
	if err != nil {
		_ = out.Close()
		return n, err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return n, err
	}
	if err := out.Close(); err != nil {
		return n, err
	}
	if err := done(tmp); err != nil {
		return n, err
	}
	ok = true
	return n, nil
}

func checkSQLiteHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, len(sqliteMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return fmt.Errorf("%s: not a database file", path)
	}
	if !bytes.Equal(head, sqliteMagic) {
		return fmt.Errorf("%s: not a database file", path)
	}
	return nil
}

func removeSidecars(path string) {
	for _, suffix := range []string{"-wal", "-shm"} {
		_ = os.Remove(path + suffix)
	}
}

func sameFile(a, b string) (bool, error) {
	sa, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(sa, sb), nil
}
