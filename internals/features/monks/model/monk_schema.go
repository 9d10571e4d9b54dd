package model

import (
	"fmt"
	"strings"
)

type FieldKind int

const (
	KindScalar FieldKind = iota
	KindMulti
)

func (k FieldKind) String() string {
	if k == KindMulti {
		return "multi"
	}
	return "scalar"
}

// Field satu kolom di schema. Store, filter, stats & export membaca daftar ini,
// jadi field baru cukup ditambah di sini (plus kolom struct-nya).
type Field struct {
	Key   string
	Label string
	Kind  FieldKind

	scalar func(*Monk) **string
	list   func(*Monk) *StringList
}

// Scalar mengembalikan nilai field skalar (nil kalau kosong / bukan skalar).
func (f Field) Scalar(m *Monk) *string {
	if f.Kind != KindScalar || m == nil {
		return nil
	}
	return *f.scalar(m)
}

// List mengembalikan elemen field multi-nilai (nil kalau bukan multi).
func (f Field) List(m *Monk) []string {
	if f.Kind != KindMulti || m == nil {
		return nil
	}
	return *f.list(m)
}

// SetScalar & SetList dipakai saat membangun record dari input generik (CLI, test).
func (f Field) SetScalar(m *Monk, v *string) {
	if f.Kind == KindScalar {
		*f.scalar(m) = v
	}
}

func (f Field) SetList(m *Monk, v []string) {
	if f.Kind == KindMulti {
		*f.list(m) = StringList(v)
	}
}

func scalar(key, label string, ref func(*Monk) **string) Field {
	return Field{Key: key, Label: label, Kind: KindScalar, scalar: ref}
}

func multi(key, label string, ref func(*Monk) *StringList) Field {
	return Field{Key: key, Label: label, Kind: KindMulti, list: ref}
}

const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldNome      = "nome"
	FieldCidade    = "cidade_nascimento"
	FieldPais      = "pais_nascimento"
	FieldOcupacao  = "ocupacao_oficio"
	FieldLivros    = "livros"
	FieldDoencas   = "doencas"
)

// urutan = urutan kolom tabel & urutan kolom export
var fields = []Field{
	scalar(FieldNome, "Nome", func(m *Monk) **string { return &m.Nome }),
	multi(FieldOcupacao, "Ocupação/Ofício", func(m *Monk) *StringList { return &m.OcupacaoOficio }),
	scalar("data_nascimento", "Data Nascimento", func(m *Monk) **string { return &m.DataNascimento }),
	scalar(FieldPais, "País Nascimento", func(m *Monk) **string { return &m.PaisNascimento }),
	scalar(FieldCidade, "Cidade Nascimento", func(m *Monk) **string { return &m.CidadeNascimento }),
	scalar("nome_mae", "Nome da Mãe", func(m *Monk) **string { return &m.NomeMae }),
	scalar("nome_pai", "Nome do Pai", func(m *Monk) **string { return &m.NomePai }),
	scalar("data_batismo", "Data Batismo", func(m *Monk) **string { return &m.DataBatismo }),
	scalar("local_batismo", "Local Batismo", func(m *Monk) **string { return &m.LocalBatismo }),
	scalar("data_ingresso_mosteiro", "Data Ingresso", func(m *Monk) **string { return &m.DataIngressoMosteiro }),
	scalar("data_profissao_religiosa", "Data Profissão", func(m *Monk) **string { return &m.DataProfissaoReligiosa }),
	scalar("local_profissao_religiosa", "Local Profissão", func(m *Monk) **string { return &m.LocalProfissaoReligiosa }),
	scalar("formacao", "Formação", func(m *Monk) **string { return &m.Formacao }),
	scalar("materia_ensinada", "Matéria Ensinada", func(m *Monk) **string { return &m.MateriaEnsinada }),
	multi(FieldLivros, "Livros", func(m *Monk) *StringList { return &m.Livros }),
	scalar("episodios_efemerides", "Episódios/Efemérides", func(m *Monk) **string { return &m.EpisodiosEfemerides }),
	scalar("exercicios_espirituais", "Exercícios Espirituais", func(m *Monk) **string { return &m.ExerciciosEspirituais }),
	scalar(FieldDoencas, "Doenças/Causa Mortis", func(m *Monk) **string { return &m.Doencas }),
	scalar("data_falecimento", "Data Falecimento", func(m *Monk) **string { return &m.DataFalecimento }),
	scalar("nome_abade", "Nome do Abade", func(m *Monk) **string { return &m.NomeAbade }),
	scalar("observacoes", "Observações", func(m *Monk) **string { return &m.Observacoes }),
	scalar("referencia_manuscrito", "Referência Manuscrito", func(m *Monk) **string { return &m.ReferenciaManuscrito }),
	scalar("referencia_edicao", "Referência Edição", func(m *Monk) **string { return &m.ReferenciaEdicao }),
}

var fieldIndex = func() map[string]Field {
	idx := make(map[string]Field, len(fields))
	for _, f := range fields {
		idx[f.Key] = f
	}
	return idx
}()

// Fields: semua field data (tanpa id & created_at), urut sesuai schema.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ExportFields = kolom CSV. Saat ini sama dengan Fields().
func ExportFields() []Field { return Fields() }

func FieldByKey(key string) (Field, bool) {
	f, ok := fieldIndex[key]
	return f, ok
}

// Columns: nama kolom data sesuai urutan schema.
func Columns() []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Key)
	}
	return out
}

// CreateTableSQL membangun DDL dari schema. Tidak destruktif (IF NOT EXISTS).
func CreateTableSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", Monk{}.TableName())
	fmt.Fprintf(&b, "  %s TEXT PRIMARY KEY,\n", FieldID)
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s TEXT,\n", f.Key)
	}
	fmt.Fprintf(&b, "  %s TEXT DEFAULT CURRENT_TIMESTAMP\n)", FieldCreatedAt)
	return b.String()
}

// Daftar ocupação bawaan (pilihan default di form & filter).
var PredefinedOccupations = []string{
	"Abade", "Celeireiro ou Ecônomo", "Companheiro ou secretário pessoal do abade",
	"Conventual ou Colegial", "Cronista", "Definidor", "Doutor", "Donato ou Irmão Leigo",
	"Frei", "Jubilado", "Mestre", "Mestre de Noviços", "Noviço", "Padre", "Passante",
	"Postulante", "Pregador", "Pregador geral", "Pregador úrbico ou urbano", "Presidente",
	"Prior", "Procurador", "Provedor", "Provincial", "Religioso", "Reverendo",
	"Secretário geral", "Subprior", "Visitador", "Vogal",
}
