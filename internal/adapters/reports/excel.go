package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dquezada/revpro/internal/usecase"
)

const sheet = "Ventas"

// SalesWorkbook vuelca el resumen del dashboard y sus órdenes a un .xlsx
// con una hoja de resumen y el detalle fila por fila.
func SalesWorkbook(s *usecase.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	rows := [][]any{
		{"Desde", s.From},
		{"Hasta", s.To},
		{"Pedidos", s.OrdersCount},
		{"Facturado", s.Revenue},
		{"Costo", s.TotalCost},
		{"Ganancia", s.Profit},
		{"Por cobrar", s.Pending},
		{},
		{"Fecha", "Estado", "Cliente", "Método", "Total", "Costo", "Ganancia"},
	}
	for i, r := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &r); err != nil {
			return nil, err
		}
	}
	base := len(rows) + 1
	for i, o := range s.Orders {
		row := []any{
			o.CreatedAt.Format(time.RFC3339),
			string(o.Status),
			o.ClientName,
			o.Method,
			o.Total,
			o.TotalCost,
			o.Profit,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", base+i), &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
