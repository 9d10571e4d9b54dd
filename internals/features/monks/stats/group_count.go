package stats

import (
	"fmt"
	"sort"

	"monges_backend/internals/features/monks/model"
)

const (
	Unspecified = "Não informado"
	Other       = "Outros"

	// jumlah bar default di dashboard
	DefaultTopN = 8
)

type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GroupCount menghitung frekuensi nilai sebuah field, urut count DESC
// (seri: urutan label pertama kali muncul).
//
// Field multi: tiap elemen dihitung sekali; list kosong → satu hitungan ke Unspecified.
// Field skalar: nilai nil / "" → Unspecified.
func GroupCount(records []model.Monk, key string) ([]Bucket, error) {
	f, ok := model.FieldByKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown field %q", key)
	}

	idx := map[string]int{}
	var buckets []Bucket
	add := func(label string) {
		if i, seen := idx[label]; seen {
			buckets[i].Count++
			return
		}
		idx[label] = len(buckets)
		buckets = append(buckets, Bucket{Label: label, Count: 1})
	}

	for i := range records {
		switch f.Kind {
		case model.KindMulti:
			list := f.List(&records[i])
			if len(list) == 0 {
				add(Unspecified)
				continue
			}
			for _, v := range list {
				add(v)
			}
		default:
			v := f.Scalar(&records[i])
			if v == nil || *v == "" {
				add(Unspecified)
				continue
			}
			add(*v)
		}
	}

	if buckets == nil {
		buckets = []Bucket{}
	}
	sort.SliceStable(buckets, func(a, b int) bool {
		return buckets[a].Count > buckets[b].Count
	})
	return buckets, nil
}

// TopN menyimpan n bucket pertama apa adanya; sisanya dilipat ke satu bucket Other di akhir.
// Kalau jumlah label <= n+1 tidak ada pelipatan. Total hitungan selalu sama.
func TopN(buckets []Bucket, n int) []Bucket {
	if n < 0 {
		n = 0
	}
	if len(buckets) <= n+1 {
		out := make([]Bucket, len(buckets))
		copy(out, buckets)
		return out
	}

	out := make([]Bucket, 0, n+1)
	out = append(out, buckets[:n]...)
	rest := 0
	for _, b := range buckets[n:] {
		rest += b.Count
	}
	return append(out, Bucket{Label: Other, Count: rest})
}

func Sum(buckets []Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	return total
}

// Summary angka ringkas dashboard, dihitung atas hasil filter.
type Summary struct {
	Total               int `json:"total"`
	DistinctCountries   int `json:"distinct_countries"`
	DistinctCities      int `json:"distinct_cities"`
	DistinctOccupations int `json:"distinct_occupations"`
}

// Summarize: "distinct" menghitung label termasuk Unspecified, sama seperti jumlah bar di grafik.
func Summarize(records []model.Monk) Summary {
	count := func(key string) int {
		b, _ := GroupCount(records, key)
		return len(b)
	}
	return Summary{
		Total:               len(records),
		DistinctCountries:   count(model.FieldPais),
		DistinctCities:      count(model.FieldCidade),
		DistinctOccupations: count(model.FieldOcupacao),
	}
}
