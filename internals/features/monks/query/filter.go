package query

import (
	"sort"
	"strings"

	"monges_backend/internals/features/monks/model"
)

// Predicates: key field → nilai filter. Nilai kosong = filter tidak aktif.
type Predicates map[string]string

// Active mengembalikan key dengan nilai tidak kosong, urut (biar deterministik).
func (p Predicates) Active() []string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Filter mengembalikan record yang lolos term DAN semua predicate aktif.
// Urutan input dipertahankan.
func Filter(records []model.Monk, term string, preds Predicates) []model.Monk {
	out := make([]model.Monk, 0, len(records))
	needle := strings.ToLower(term)
	active := preds.Active()
	for i := range records {
		if matchTerm(&records[i], needle) && matchPredicates(&records[i], preds, active) {
			out = append(out, records[i])
		}
	}
	return out
}

// Matches versi satu record.
func Matches(m *model.Monk, term string, preds Predicates) bool {
	return matchTerm(m, strings.ToLower(term)) && matchPredicates(m, preds, preds.Active())
}

// term hanya dicocokkan ke nome ATAU cidade_nascimento
func matchTerm(m *model.Monk, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Name()), needle) {
		return true
	}
	return m.CidadeNascimento != nil && strings.Contains(strings.ToLower(*m.CidadeNascimento), needle)
}

func matchPredicates(m *model.Monk, preds Predicates, active []string) bool {
	for _, key := range active {
		want := preds[key]
		f, ok := model.FieldByKey(key)
		if !ok {
			// field tak dikenal tidak pernah cocok
			return false
		}
		switch f.Kind {
		case model.KindMulti:
			if !model.StringList(f.List(m)).Contains(want) {
				return false
			}
		default:
			v := f.Scalar(m)
			if v == nil || *v == "" {
				return false
			}
			if !strings.Contains(strings.ToLower(*v), strings.ToLower(want)) {
				return false
			}
		}
	}
	return true
}

// Options: nilai unik (urut) untuk dropdown filter sebuah field.
// Untuk ocupacao_oficio digabung dengan daftar bawaan.
func Options(records []model.Monk, key string) []string {
	f, ok := model.FieldByKey(key)
	if !ok {
		return []string{}
	}

	set := map[string]struct{}{}
	if key == model.FieldOcupacao {
		for _, o := range model.PredefinedOccupations {
			set[o] = struct{}{}
		}
	}
	for i := range records {
		switch f.Kind {
		case model.KindMulti:
			for _, v := range f.List(&records[i]) {
				if v != "" {
					set[v] = struct{}{}
				}
			}
		default:
			if v := f.Scalar(&records[i]); v != nil && *v != "" {
				set[*v] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
