package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "monges_backend/internals/databases"
	"monges_backend/internals/features/monks/model"
)

// openConn bisa diganti di test untuk mensimulasikan reconnect gagal.
var openConn = func(c *database.Conn, path string) error {
	return c.Open(path)
}

// Store adalah sumber kebenaran record. Pemilik tunggal handle file DB.
type Store struct {
	mu   sync.RWMutex
	conn *database.Conn
	rev  atomic.Uint64

	newID func() string
}

func NewStore(logger gormLogger.Interface) *Store {
	return &Store{
		conn:  database.NewConn(logger),
		newID: uuid.NewString,
	}
}

// =======================
// Lifecycle
// =======================

// Connect membuka (atau membuka ulang) file di path dan memastikan tabel ada.
func (s *Store) Connect(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked(path)
}

func (s *Store) connectLocked(path string) error {
	if err := openConn(s.conn, path); err != nil {
		return storageErr("connect", err)
	}
	if err := s.conn.With(func(db *gorm.DB) error {
		return db.Exec(model.CreateTableSQL()).Error
	}); err != nil {
		_ = s.conn.Close()
		return storageErr("init table", err)
	}
	s.rev.Add(1)
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.Close(); err != nil {
		return storageErr("close", err)
	}
	return nil
}

func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn.Path()
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.conn.Ping(); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

// Revision naik setiap ada tulis atau reconnect.
// Consumer yang menyimpan salinan record membandingkan nilai ini untuk tahu datanya basi.
func (s *Store) Revision() uint64 { return s.rev.Load() }

// =======================
// CRUD
// =======================

// Create menyimpan record baru. id & created_at dari input diabaikan.
func (s *Store) Create(ctx context.Context, in model.Monk) (string, error) {
	m := in
	m.ID = s.newID()
	m.CreatedAt = nil
	if err := prepare(&m); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	err := s.conn.With(func(db *gorm.DB) error {
		return db.WithContext(ctx).Create(&m).Error
	})
	if err != nil {
		return "", storageErr("create", err)
	}
	s.rev.Add(1)
	return m.ID, nil
}

// GetAll mengembalikan semua record urut nama (ASC).
func (s *Store) GetAll(ctx context.Context) ([]model.Monk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []model.Monk
	err := s.conn.With(func(db *gorm.DB) error {
		return db.WithContext(ctx).Order(model.FieldNome + " ASC").Find(&rows).Error
	})
	if err != nil {
		return nil, storageErr("get all", err)
	}
	for i := range rows {
		model.Normalize(&rows[i])
	}
	return rows, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (model.Monk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m model.Monk
	err := s.conn.With(func(db *gorm.DB) error {
		return db.WithContext(ctx).Where(model.FieldID+" = ?", id).First(&m).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Monk{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return model.Monk{}, storageErr("get", err)
	}
	model.Normalize(&m)
	return m, nil
}

// Update mengganti SEMUA field (kecuali id & created_at). Field yang tidak dikirim kembali ke default.
func (s *Store) Update(ctx context.Context, in model.Monk) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	m := in
	if err := prepare(&m); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var notFound bool
	err := s.conn.With(func(db *gorm.DB) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var n int64
			if err := tx.Model(&model.Monk{}).Where(model.FieldID+" = ?", m.ID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				notFound = true
				return nil
			}
			return tx.Model(&model.Monk{}).
				Where(model.FieldID+" = ?", m.ID).
				Updates(assignments(&m)).Error
		})
	})
	if err != nil {
		return storageErr("update", err)
	}
	if notFound {
		return fmt.Errorf("%w: %s", ErrNotFound, m.ID)
	}
	s.rev.Add(1)
	return nil
}

// Delete hard delete. id yang tidak ada bukan error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var affected int64
	err := s.conn.With(func(db *gorm.DB) error {
		res := db.WithContext(ctx).Where(model.FieldID+" = ?", id).Delete(&model.Monk{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return storageErr("delete", err)
	}
	if affected > 0 {
		s.rev.Add(1)
	}
	return nil
}

// =======================
// helpers
// =======================

// prepare: normalisasi + validasi nama. Dipakai create & update.
func prepare(m *model.Monk) error {
	model.Normalize(m)
	if strings.TrimSpace(m.Name()) == "" {
		return fmt.Errorf("%w: nome is required", ErrValidation)
	}
	return nil
}

// assignments: kolom → nilai untuk UPDATE, dibangun dari schema (nil ikut ditulis sebagai NULL).
func assignments(m *model.Monk) map[string]any {
	out := make(map[string]any, len(model.Fields()))
	for _, f := range model.Fields() {
		switch f.Kind {
		case model.KindScalar:
			if v := f.Scalar(m); v != nil {
				out[f.Key] = *v
			} else {
				out[f.Key] = nil
			}
		case model.KindMulti:
			out[f.Key] = model.EncodeList(f.List(m))
		}
	}
	return out
}
