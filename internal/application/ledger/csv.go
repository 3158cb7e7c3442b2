package ledger

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// ItemSeparator separa las descripciones de los items dentro de la columna Items.
const ItemSeparator = " | "

// CSVHeader columnas de la exportación, en orden.
var CSVHeader = []string{"ID", "Fecha", "Local Origen", "Local Destino", "Persona Responsable", "Estado", "Items"}

// ExportRow una fila de la exportación CSV.
type ExportRow struct {
	ID                int64
	Date              string
	Origin            string
	Destination       string
	ResponsiblePerson string
	State             string
	Items             []string
}

// NewExportRow arma la fila de un vale.
func NewExportRow(v *entity.Voucher) ExportRow {
	return ExportRow{
		ID:                v.ID,
		Date:              v.Date.Format(entity.DateLayout),
		Origin:            v.OriginStoreName,
		Destination:       v.DestinationStoreName,
		ResponsiblePerson: v.ResponsiblePerson,
		State:             v.State,
		Items:             v.Descriptions(),
	}
}

// WriteCSV escribe cabecera y una fila por vale, en el orden recibido.
// Todos los campos van entre comillas; las comillas internas se duplican.
func WriteCSV(w io.Writer, vouchers []*entity.Voucher) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, CSVHeader); err != nil {
		return err
	}
	for _, v := range vouchers {
		r := NewExportRow(v)
		rec := []string{
			strconv.FormatInt(r.ID, 10),
			r.Date,
			r.Origin,
			r.Destination,
			r.ResponsiblePerson,
			r.State,
			strings.Join(r.Items, ItemSeparator),
		}
		if err := writeRecord(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}

// ParseCSV lee una exportación generada por WriteCSV.
func ParseCSV(r io.Reader) ([]ExportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv: falta la cabecera")
		}
		return nil, fmt.Errorf("csv: leer cabecera: %w", err)
	}
	for i, h := range CSVHeader {
		if header[i] != h {
			return nil, fmt.Errorf("csv: columna %d es %q, se esperaba %q", i+1, header[i], h)
		}
	}

	var rows []ExportRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: leer fila: %w", err)
		}
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csv: id inválido %q: %w", rec[0], err)
		}
		var items []string
		if rec[6] != "" {
			items = strings.Split(rec[6], ItemSeparator)
		}
		rows = append(rows, ExportRow{
			ID:                id,
			Date:              rec[1],
			Origin:            rec[2],
			Destination:       rec[3],
			ResponsiblePerson: rec[4],
			State:             rec[5],
			Items:             items,
		})
	}
	return rows, nil
}
