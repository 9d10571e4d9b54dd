package dto

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monges_backend/internals/features/monks/model"
)

func TestMonkRequestCoversSchema(t *testing.T) {
	var tags []string
	rt := reflect.TypeOf(MonkRequest{})
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		tags = append(tags, name)
	}
	assert.ElementsMatch(t, model.Columns(), tags)
}

func TestToModelCopiesEveryField(t *testing.T) {
	req := MonkRequest{Nome: "Bento", OcupacaoOficio: []string{"Prior"}, Livros: []string{"Regra"}}
	rv := reflect.ValueOf(&req).Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Type() == reflect.TypeOf((*string)(nil)) {
			v := sample(rv.Type().Field(i).Name)
			f.Set(reflect.ValueOf(&v))
		}
	}

	m := req.ToModel()
	assert.Empty(t, m.ID)
	for _, field := range model.Fields() {
		switch field.Kind {
		case model.KindScalar:
			require.NotNil(t, field.Scalar(&m), field.Key)
		case model.KindMulti:
			assert.NotEmpty(t, field.List(&m), field.Key)
		}
	}
}

func sample(name string) string { return "v-" + name }
