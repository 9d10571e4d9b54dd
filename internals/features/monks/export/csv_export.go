package export

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"monges_backend/internals/features/monks/model"
)

const (
	Delimiter     = ';'
	ListSeparator = ", "
	bom           = "\uFEFF"
)

var ErrNothingToExport = errors.New("nothing to export")

func FileName(now time.Time) string {
	return fmt.Sprintf("monges_dados_%s.csv", now.Format("2006-01-02"))
}

// WriteCSV menulis SELURUH koleksi (bukan hasil filter) dengan urutan apa adanya.
// Format: BOM, baris "sep=;", header key schema, lalu satu baris per record.
// Setiap sel yang tidak null dikutip dengan "" untuk tanda kutip di dalamnya; null → sel kosong.
func WriteCSV(w io.Writer, records []model.Monk) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}

	fields := model.ExportFields()
	bw := bufio.NewWriter(w)

	bw.WriteString(bom)
	fmt.Fprintf(bw, "sep=%c\n", Delimiter)

	for i, f := range fields {
		if i > 0 {
			bw.WriteByte(Delimiter)
		}
		bw.WriteString(f.Key)
	}
	bw.WriteByte('\n')

	for r := range records {
		for i, f := range fields {
			if i > 0 {
				bw.WriteByte(Delimiter)
			}
			switch f.Kind {
			case model.KindMulti:
				bw.WriteString(quote(strings.Join(f.List(&records[r]), ListSeparator)))
			default:
				if v := f.Scalar(&records[r]); v != nil {
					bw.WriteString(quote(*v))
				}
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// CSV versi in-memory dari WriteCSV.
func CSV(records []model.Monk) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
