package query

import (
	"monges_backend/internals/features/monks/model"
	helper "monges_backend/internals/helpers"
)

// View = state pencarian di layar daftar: term, predicate, halaman.
// Mengubah term atau predicate apa pun selalu mengembalikan halaman ke 1.
type View struct {
	term  string
	preds Predicates
	page  int
}

func NewView() *View {
	return &View{preds: Predicates{}, page: 1}
}

func (v *View) Term() string { return v.term }
func (v *View) Page() int    { return v.page }

// Predicates salinan predicate aktif.
func (v *View) Predicates() Predicates {
	out := make(Predicates, len(v.preds))
	for k, val := range v.preds {
		out[k] = val
	}
	return out
}

func (v *View) SetTerm(term string) {
	if term != v.term {
		v.term = term
		v.page = 1
	}
}

// SetFilter mengaktifkan / mengganti satu predicate; nilai "" mematikannya.
func (v *View) SetFilter(key, value string) {
	if v.preds[key] == value {
		return
	}
	if value == "" {
		delete(v.preds, key)
	} else {
		v.preds[key] = value
	}
	v.page = 1
}

func (v *View) ClearFilters() {
	if len(v.preds) == 0 {
		return
	}
	v.preds = Predicates{}
	v.page = 1
}

func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

type Result struct {
	Filtered []model.Monk // seluruh hasil filter (dipakai stats)
	Page     []model.Monk // jendela halaman aktif
	Meta     helper.Meta
}

// Apply menjalankan filter lalu pagination atas snapshot record.
func (v *View) Apply(records []model.Monk, pageSize int) Result {
	filtered := Filter(records, v.term, v.preds)
	page := helper.Paginate(filtered, pageSize, v.page)
	return Result{
		Filtered: filtered,
		Page:     page,
		Meta:     helper.BuildMeta(len(filtered), v.page, pageSize, len(page)),
	}
}
