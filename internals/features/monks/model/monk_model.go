package model

// Monk adalah satu entri arsip (satu orang).
// Semua field skalar bertipe *string: nil = tidak diisi (NULL di DB).
type Monk struct {
	ID string `gorm:"column:id;primaryKey;type:text" json:"id"`

	Nome           *string    `gorm:"column:nome;type:text" json:"nome"`
	OcupacaoOficio StringList `gorm:"column:ocupacao_oficio;type:text" json:"ocupacao_oficio"`

	DataNascimento   *string `gorm:"column:data_nascimento;type:text" json:"data_nascimento"`
	PaisNascimento   *string `gorm:"column:pais_nascimento;type:text" json:"pais_nascimento"`
	CidadeNascimento *string `gorm:"column:cidade_nascimento;type:text" json:"cidade_nascimento"`
	NomeMae          *string `gorm:"column:nome_mae;type:text" json:"nome_mae"`
	NomePai          *string `gorm:"column:nome_pai;type:text" json:"nome_pai"`

	DataBatismo             *string `gorm:"column:data_batismo;type:text" json:"data_batismo"`
	LocalBatismo            *string `gorm:"column:local_batismo;type:text" json:"local_batismo"`
	DataIngressoMosteiro    *string `gorm:"column:data_ingresso_mosteiro;type:text" json:"data_ingresso_mosteiro"`
	DataProfissaoReligiosa  *string `gorm:"column:data_profissao_religiosa;type:text" json:"data_profissao_religiosa"`
	LocalProfissaoReligiosa *string `gorm:"column:local_profissao_religiosa;type:text" json:"local_profissao_religiosa"`
	Formacao                *string `gorm:"column:formacao;type:text" json:"formacao"`
	MateriaEnsinada         *string `gorm:"column:materia_ensinada;type:text" json:"materia_ensinada"`

	Livros StringList `gorm:"column:livros;type:text" json:"livros"`

	EpisodiosEfemerides   *string `gorm:"column:episodios_efemerides;type:text" json:"episodios_efemerides"`
	ExerciciosEspirituais *string `gorm:"column:exercicios_espirituais;type:text" json:"exercicios_espirituais"`
	Doencas               *string `gorm:"column:doencas;type:text" json:"doencas"`
	DataFalecimento       *string `gorm:"column:data_falecimento;type:text" json:"data_falecimento"`

	NomeAbade   *string `gorm:"column:nome_abade;type:text" json:"nome_abade"`
	Observacoes *string `gorm:"column:observacoes;type:text" json:"observacoes"`

	ReferenciaManuscrito *string `gorm:"column:referencia_manuscrito;type:text" json:"referencia_manuscrito"`
	ReferenciaEdicao     *string `gorm:"column:referencia_edicao;type:text" json:"referencia_edicao"`

	// diisi DB (DEFAULT CURRENT_TIMESTAMP), tidak pernah ditulis dari aplikasi
	CreatedAt *string `gorm:"column:created_at;type:text;<-:false" json:"created_at"`
}

// TableName mengikuti nama tabel aplikasi lama agar file backup lama tetap bisa di-restore.
func (Monk) TableName() string {
	return "monges"
}

// Name mengembalikan nama ("" kalau belum diisi).
func (m *Monk) Name() string {
	if m == nil || m.Nome == nil {
		return ""
	}
	return *m.Nome
}

// Normalize menyamakan bentuk record sebelum disimpan:
// string kosong → nil untuk semua field skalar, list nil → list kosong.
// Satu-satunya tempat normalisasi; dipakai create & update.
func Normalize(m *Monk) {
	for _, f := range fields {
		switch f.Kind {
		case KindScalar:
			p := f.scalar(m)
			if *p != nil && **p == "" {
				*p = nil
			}
		case KindMulti:
			p := f.list(m)
			if *p == nil {
				*p = StringList{}
			}
		}
	}
}

// StrPtr helper kecil untuk isi field skalar.
func StrPtr(s string) *string { return &s }

// Clone salinan dalam: pointer skalar dan backing array list tidak dibagi dengan aslinya.
func (m Monk) Clone() Monk {
	out := m
	out.CreatedAt = clonePtr(m.CreatedAt)
	for _, f := range fields {
		switch f.Kind {
		case KindMulti:
			if l := f.List(&m); l != nil {
				f.SetList(&out, append(make([]string, 0, len(l)), l...))
			}
		default:
			f.SetScalar(&out, clonePtr(f.Scalar(&m)))
		}
	}
	return out
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
