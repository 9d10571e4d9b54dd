package dto

import (
	"monges_backend/internals/features/monks/model"
)

// ============================
// Request DTO (create & update)
// ============================

// MonkRequest: semua field record kecuali id & created_at.
// Update selalu mengirim record lengkap; field yang tidak ada kembali ke default.
type MonkRequest struct {
	Nome           string   `json:"nome" validate:"required"`
	OcupacaoOficio []string `json:"ocupacao_oficio"`

	DataNascimento   *string `json:"data_nascimento"`
	PaisNascimento   *string `json:"pais_nascimento"`
	CidadeNascimento *string `json:"cidade_nascimento"`
	NomeMae          *string `json:"nome_mae"`
	NomePai          *string `json:"nome_pai"`

	DataBatismo             *string `json:"data_batismo"`
	LocalBatismo            *string `json:"local_batismo"`
	DataIngressoMosteiro    *string `json:"data_ingresso_mosteiro"`
	DataProfissaoReligiosa  *string `json:"data_profissao_religiosa"`
	LocalProfissaoReligiosa *string `json:"local_profissao_religiosa"`
	Formacao                *string `json:"formacao"`
	MateriaEnsinada         *string `json:"materia_ensinada"`

	Livros []string `json:"livros"`

	EpisodiosEfemerides   *string `json:"episodios_efemerides"`
	ExerciciosEspirituais *string `json:"exercicios_espirituais"`
	Doencas               *string `json:"doencas"`
	DataFalecimento       *string `json:"data_falecimento"`

	NomeAbade   *string `json:"nome_abade"`
	Observacoes *string `json:"observacoes"`

	ReferenciaManuscrito *string `json:"referencia_manuscrito"`
	ReferenciaEdicao     *string `json:"referencia_edicao"`
}

// ToModel: id dikosongkan, diisi oleh Store (create) atau path param (update).
func (r MonkRequest) ToModel() model.Monk {
	return model.Monk{
		Nome:                    model.StrPtr(r.Nome),
		OcupacaoOficio:          r.OcupacaoOficio,
		DataNascimento:          r.DataNascimento,
		PaisNascimento:          r.PaisNascimento,
		CidadeNascimento:        r.CidadeNascimento,
		NomeMae:                 r.NomeMae,
		NomePai:                 r.NomePai,
		DataBatismo:             r.DataBatismo,
		LocalBatismo:            r.LocalBatismo,
		DataIngressoMosteiro:    r.DataIngressoMosteiro,
		DataProfissaoReligiosa:  r.DataProfissaoReligiosa,
		LocalProfissaoReligiosa: r.LocalProfissaoReligiosa,
		Formacao:                r.Formacao,
		MateriaEnsinada:         r.MateriaEnsinada,
		Livros:                  r.Livros,
		EpisodiosEfemerides:     r.EpisodiosEfemerides,
		ExerciciosEspirituais:   r.ExerciciosEspirituais,
		Doencas:                 r.Doencas,
		DataFalecimento:         r.DataFalecimento,
		NomeAbade:               r.NomeAbade,
		Observacoes:             r.Observacoes,
		ReferenciaManuscrito:    r.ReferenciaManuscrito,
		ReferenciaEdicao:        r.ReferenciaEdicao,
	}
}

// ============================
// Stats / path DTO
// ============================

type BucketDTO struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	Field   string      `json:"field"`
	Total   int         `json:"total"` // jumlah record setelah filter
	Buckets []BucketDTO `json:"buckets"`
	Top     []BucketDTO `json:"top"`
}

// PathRequest body untuk backup/restore. Path kosong = user membatalkan dialog.
type PathRequest struct {
	Path string `json:"path"`
}
