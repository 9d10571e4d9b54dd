package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monges_backend/internals/features/monks/model"
)

func monk(name string, opts ...func(*model.Monk)) model.Monk {
	m := model.Monk{Nome: model.StrPtr(name)}
	for _, o := range opts {
		o(&m)
	}
	model.Normalize(&m)
	return m
}

func city(c string) func(*model.Monk) {
	return func(m *model.Monk) { m.CidadeNascimento = model.StrPtr(c) }
}

func country(c string) func(*model.Monk) {
	return func(m *model.Monk) { m.PaisNascimento = model.StrPtr(c) }
}

func occupations(o ...string) func(*model.Monk) {
	return func(m *model.Monk) { m.OcupacaoOficio = o }
}

func namesOf(ms []model.Monk) []string {
	out := make([]string, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].Name())
	}
	return out
}

func fixtures() []model.Monk {
	return []model.Monk{
		monk("Agostinho", city("Braga"), country("Portugal"), occupations("Prior", "Mestre")),
		monk("Bento", city("Lisboa"), country("Portugal")),
		monk("Caetano", city("Salvador"), country("Brasil"), occupations("Abade")),
		monk("Domingos de Braga"),
	}
}

func TestFilter_EmptyTermAndNoPredicates(t *testing.T) {
	recs := fixtures()
	assert.Len(t, Filter(recs, "", nil), len(recs))
	assert.Len(t, Filter(recs, "", Predicates{"pais_nascimento": ""}), len(recs))
}

func TestFilter_TermMatchesNameOrCity(t *testing.T) {
	recs := fixtures()
	assert.Equal(t, []string{"Agostinho", "Domingos de Braga"}, namesOf(Filter(recs, "BRAGA", nil)))
	assert.Equal(t, []string{"Bento"}, namesOf(Filter(recs, "bent", nil)))
	// país tidak termasuk pencarian bebas
	assert.Empty(t, Filter(recs, "portugal", nil))
}

func TestFilter_ScalarPredicateSubstringAndNullFails(t *testing.T) {
	recs := fixtures()
	got := Filter(recs, "", Predicates{"pais_nascimento": "port"})
	assert.Equal(t, []string{"Agostinho", "Bento"}, namesOf(got))

	// Domingos tanpa cidade: predicate aktif → gagal
	got = Filter(recs, "", Predicates{"cidade_nascimento": "a"})
	assert.Equal(t, []string{"Agostinho", "Bento", "Caetano"}, namesOf(got))
}

func TestFilter_MultiPredicateIsExactMembership(t *testing.T) {
	recs := fixtures()
	assert.Equal(t, []string{"Agostinho"}, namesOf(Filter(recs, "", Predicates{"ocupacao_oficio": "Prior"})))
	assert.Empty(t, Filter(recs, "", Predicates{"ocupacao_oficio": "Pri"}))
	assert.Empty(t, Filter(recs, "", Predicates{"ocupacao_oficio": "prior"}))
}

func TestFilter_TermAndPredicatesAreANDed(t *testing.T) {
	recs := fixtures()
	// cocok term "braga" tapi gagal predicate país=Brasil
	got := Filter(recs, "braga", Predicates{"pais_nascimento": "Brasil"})
	assert.Empty(t, got)

	got = Filter(recs, "", Predicates{"pais_nascimento": "Portugal", "ocupacao_oficio": "Mestre"})
	assert.Equal(t, []string{"Agostinho"}, namesOf(got))
}

func TestFilter_UnknownFieldNeverMatches(t *testing.T) {
	assert.Empty(t, Filter(fixtures(), "", Predicates{"titulo": "x"}))
}

func TestMatches(t *testing.T) {
	m := monk("Agostinho", city("Braga"), occupations("Prior"))
	assert.True(t, Matches(&m, "agos", Predicates{"ocupacao_oficio": "Prior"}))
	assert.False(t, Matches(&m, "agos", Predicates{"ocupacao_oficio": "Mestre"}))
}

func TestOptions(t *testing.T) {
	recs := fixtures()
	assert.Equal(t, []string{"Brasil", "Portugal"}, Options(recs, "pais_nascimento"))

	occ := Options(recs, "ocupacao_oficio")
	assert.Contains(t, occ, "Vogal")
	assert.Contains(t, occ, "Prior")
	assert.IsIncreasing(t, occ)

	assert.Empty(t, Options(recs, "unknown"))
}

func TestView_ResetsPageOnChange(t *testing.T) {
	v := NewView()
	v.SetPage(3)
	require.Equal(t, 3, v.Page())

	v.SetTerm("ag")
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetTerm("ag")
	assert.Equal(t, 2, v.Page(), "same term keeps page")

	v.SetFilter("pais_nascimento", "Portugal")
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetFilter("pais_nascimento", "")
	assert.Equal(t, 1, v.Page())
	assert.Empty(t, v.Predicates())

	v.SetFilter("pais_nascimento", "Brasil")
	v.SetPage(5)
	v.ClearFilters()
	assert.Equal(t, 1, v.Page())
}

func TestView_Apply(t *testing.T) {
	var recs []model.Monk
	for i := 0; i < 23; i++ {
		recs = append(recs, monk(fmt.Sprintf("M%02d", i), country("Portugal")))
	}
	recs = append(recs, monk("X", country("Brasil")))

	v := NewView()
	v.SetFilter("pais_nascimento", "Portugal")
	v.SetPage(3)

	res := v.Apply(recs, 10)
	assert.Len(t, res.Filtered, 23)
	assert.Len(t, res.Page, 3)
	assert.Equal(t, 3, res.Meta.TotalPages)
	assert.Equal(t, 3, res.Meta.Count)

	v.SetPage(4)
	res = v.Apply(recs, 10)
	assert.Empty(t, res.Page)
	assert.Len(t, res.Filtered, 23)
}
