package monks

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"monges_backend/internals/features/monks/dto"
	"monges_backend/internals/features/monks/service"
)

var validateSeed = validator.New()

type Result struct {
	Inserted int
	Skipped  int
	Failed   int
}

// SeedMonksFromJSON membaca array record (bentuk sama dengan body POST /api/monks).
// Nama yang sudah ada (case-insensitive) dilewati, jadi aman dijalankan ulang.
func SeedMonksFromJSON(ctx context.Context, store *service.Store, filePath string) (Result, error) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", filePath, err)
	}

	var rows []dto.MonkRequest
	if err := sonic.Unmarshal(file, &rows); err != nil {
		return Result{}, fmt.Errorf("decode %s: %w", filePath, err)
	}

	existing, err := store.GetAll(ctx)
	if err != nil {
		return Result{}, err
	}
	seen := make(map[string]bool, len(existing)+len(rows))
	for _, m := range existing {
		seen[nameKey(m.Name())] = true
	}

	var res Result
	for i, r := range rows {
		if err := validateSeed.Struct(&r); err != nil {
			log.Printf("❌ Baris %d tidak valid: %v", i, err)
			res.Failed++
			continue
		}
		key := nameKey(r.Nome)
		if seen[key] {
			log.Printf("ℹ️ %s sudah ada, lewati...", r.Nome)
			res.Skipped++
			continue
		}

		if _, err := store.Create(ctx, r.ToModel()); err != nil {
			log.Printf("❌ Gagal insert %s: %v", r.Nome, err)
			res.Failed++
			continue
		}
		seen[key] = true
		res.Inserted++
	}

	log.Printf("✅ Seed selesai: %d baru, %d dilewati, %d gagal", res.Inserted, res.Skipped, res.Failed)
	return res, nil
}

func nameKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
