package model

import (
	"database/sql/driver"

	"github.com/bytedance/sonic"
)

// StringList adalah field multi-nilai (ocupacao_oficio, livros).
// Di DB disimpan sebagai satu teks JSON array; urutan elemen dipertahankan.
type StringList []string

// EncodeList serialisasi list ke bentuk penyimpanan. nil dan [] menghasilkan teks yang sama.
func EncodeList(l []string) string {
	if len(l) == 0 {
		return "[]"
	}
	b, err := sonic.Marshal(l)
	if err != nil {
		// []string selalu bisa di-marshal
		return "[]"
	}
	return string(b)
}

// DecodeList kebalikan EncodeList. Teks kosong / NULL / rusak → list kosong, tidak pernah error.
func DecodeList(s string) StringList {
	if s == "" {
		return StringList{}
	}
	var out []string
	if err := sonic.UnmarshalString(s, &out); err != nil || out == nil {
		return StringList{}
	}
	return StringList(out)
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return EncodeList(l), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = StringList{}
	case []byte:
		*l = DecodeList(string(v))
	case string:
		*l = DecodeList(v)
	default:
		*l = StringList{}
	}
	return nil
}

// Contains exact match satu elemen (bukan substring).
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
