package monks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monges_backend/internals/features/monks/model"
	"monges_backend/internals/features/monks/service"
)

func newStore(t *testing.T) *service.Store {
	t.Helper()
	s := service.NewStore(nil)
	require.NoError(t, s.Connect(filepath.Join(t.TempDir(), "monges.db")))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestSeedMonksFromJSON(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	_, err := s.Create(ctx, model.Monk{Nome: model.StrPtr("Bento")})
	require.NoError(t, err)

	p := writeJSON(t, `[
		{"nome": "Amaro", "pais_nascimento": "Portugal", "livros": ["Regra"]},
		{"nome": " bento "},
		{"nome": ""},
		{"nome": "Amaro"}
	]`)

	res, err := SeedMonksFromJSON(ctx, s, p)
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: 1, Skipped: 2, Failed: 1}, res)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Amaro", all[0].Name())
	assert.Equal(t, model.StringList{"Regra"}, all[0].Livros)

	// jalankan ulang: tidak ada yang baru
	res, err = SeedMonksFromJSON(ctx, s, p)
	require.NoError(t, err)
	assert.Zero(t, res.Inserted)
}

func TestSeedMonksBadFile(t *testing.T) {
	s := newStore(t)

	_, err := SeedMonksFromJSON(context.Background(), s, filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)

	_, err = SeedMonksFromJSON(context.Background(), s, writeJSON(t, `{"nome": "not an array"}`))
	require.Error(t, err)
}
