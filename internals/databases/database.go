package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var ErrNotConnected = errors.New("database: not connected")

// Conn memegang satu-satunya handle ke file SQLite.
// Handle mentah tidak pernah keluar; akses lewat With / Exec.
type Conn struct {
	db     *gorm.DB
	path   string
	logger gormLogger.Interface
}

func NewConn(logger gormLogger.Interface) *Conn {
	return &Conn{logger: logger}
}

// Open membuka (atau membuka ulang) file di path.
// Handle lama selalu ditutup dulu, jadi tidak pernah ada dua handle hidup.
func (c *Conn) Open(path string) error {
	if err := c.Close(); err != nil {
		return err
	}

	log.Printf("🔌 Koneksi ke SQLite: %s", path)

	cfg := &gorm.Config{}
	if c.logger != nil {
		cfg.Logger = c.logger
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	tunePool(sqlDB)

	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("pragma journal_mode: %w", err)
	}
	if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("pragma busy_timeout: %w", err)
	}

	c.db = db
	c.path = path
	log.Println("✅ DB connected.")
	return nil
}

// satu koneksi saja: file harus bisa dilepas penuh saat restore
func tunePool(sqlDB interface {
	SetMaxOpenConns(int)
	SetMaxIdleConns(int)
	SetConnMaxIdleTime(time.Duration)
	SetConnMaxLifetime(time.Duration)
}) {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxIdleTime(0)
	sqlDB.SetConnMaxLifetime(0)
}

// Close melepas handle. Aman dipanggil berkali-kali.
func (c *Conn) Close() error {
	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	c.db = nil
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	log.Printf("🔒 DB closed: %s", c.path)
	return nil
}

func (c *Conn) IsOpen() bool { return c.db != nil }

// Path file terakhir yang dibuka.
func (c *Conn) Path() string { return c.path }

// With menjalankan fn dengan handle aktif.
func (c *Conn) With(fn func(db *gorm.DB) error) error {
	if c.db == nil {
		return ErrNotConnected
	}
	return fn(c.db)
}

// Checkpoint memindahkan isi WAL ke file utama, supaya file utama bisa disalin apa adanya.
func (c *Conn) Checkpoint() error {
	return c.With(func(db *gorm.DB) error {
		return db.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error
	})
}

func (c *Conn) Ping() error {
	if c.db == nil {
		return ErrNotConnected
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
