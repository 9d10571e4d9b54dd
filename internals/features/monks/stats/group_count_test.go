package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monges_backend/internals/features/monks/model"
)

func rec(country string, occ ...string) model.Monk {
	m := model.Monk{Nome: model.StrPtr("x"), PaisNascimento: model.StrPtr(country), OcupacaoOficio: occ}
	model.Normalize(&m)
	return m
}

func TestGroupCount_Scalar(t *testing.T) {
	recs := []model.Monk{
		rec("Portugal"), rec("Brasil"), rec("Portugal"), rec(""), rec("Espanha"), rec("Brasil"), rec("Portugal"),
	}
	got, err := GroupCount(recs, model.FieldPais)
	require.NoError(t, err)
	assert.Equal(t, []Bucket{
		{"Portugal", 3},
		{"Brasil", 2},
		{Unspecified, 1},
		{"Espanha", 1},
	}, got)
	assert.Equal(t, len(recs), Sum(got))
}

func TestGroupCount_MultiEmptyListCountsOnce(t *testing.T) {
	recs := []model.Monk{
		rec("", "Prior", "Mestre"),
		rec(""),
		rec("", "Prior"),
	}
	got, err := GroupCount(recs, model.FieldOcupacao)
	require.NoError(t, err)
	assert.Equal(t, []Bucket{
		{"Prior", 2},
		{"Mestre", 1},
		{Unspecified, 1},
	}, got)
}

func TestGroupCount_EmptyAndUnknown(t *testing.T) {
	got, err := GroupCount(nil, model.FieldPais)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = GroupCount(nil, "titulo")
	assert.Error(t, err)
}

func TestTopN_FoldsOnlyBeyondNPlusOne(t *testing.T) {
	b := []Bucket{{"a", 5}, {"b", 4}, {"c", 3}, {"d", 2}, {"e", 1}}

	// 5 label, n=4 → n+1 label, tidak dilipat
	assert.Equal(t, b, TopN(b, 4))

	got := TopN(b, 3)
	assert.Equal(t, []Bucket{{"a", 5}, {"b", 4}, {"c", 3}, {Other, 3}}, got)

	got = TopN(b, 0)
	assert.Equal(t, []Bucket{{Other, 15}}, got)

	assert.Empty(t, TopN(nil, 3))
}

func TestTopN_ConservesCounts(t *testing.T) {
	var recs []model.Monk
	for i := 0; i < 40; i++ {
		recs = append(recs, rec(fmt.Sprintf("P%d", i%13)))
	}
	recs = append(recs, rec(""), rec(""))

	buckets, err := GroupCount(recs, model.FieldPais)
	require.NoError(t, err)
	for n := 0; n <= len(buckets)+2; n++ {
		assert.Equal(t, len(recs), Sum(TopN(buckets, n)), "n=%d", n)
	}
}

func TestSummarize(t *testing.T) {
	recs := []model.Monk{rec("Portugal", "Prior"), rec("Brasil"), rec("Portugal", "Prior", "Abade")}
	s := Summarize(recs)
	assert.Equal(t, Summary{Total: 3, DistinctCountries: 2, DistinctCities: 1, DistinctOccupations: 3}, s)
}
