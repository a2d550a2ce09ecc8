// Package report gera as versões em planilha dos relatórios impressos
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType é o tipo MIME das planilhas geradas
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Relatório"

// headerRow é a linha dos cabeçalhos da tabela, abaixo do título
const headerRow = 4

// Sheet é uma tabela com título e linhas de totais
type Sheet struct {
	Company string
	Title   string
	Headers []string
	Rows    [][]interface{}
	Footer  [][]interface{}
}

// File é a planilha pronta para download
type File struct {
	Name    string
	Content []byte
}

// Render grava a tabela numa planilha XLSX
func Render(name string, s Sheet) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("erro ao criar planilha: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E5E7EB"}},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo: %w", err)
	}

	f.SetCellValue(sheetName, "A1", s.Company)
	f.SetCellStyle(sheetName, "A1", "A1", boldStyle)
	f.SetCellValue(sheetName, "A2", s.Title)

	for i, h := range s.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := headerRow + 1
	for _, values := range s.Rows {
		writeRow(f, row, values)
		row++
	}

	if len(s.Footer) > 0 {
		row++
		for _, values := range s.Footer {
			writeRow(f, row, values)
			start, _ := excelize.CoordinatesToCellName(1, row)
			end, _ := excelize.CoordinatesToCellName(len(values), row)
			f.SetCellStyle(sheetName, start, end, boldStyle)
			row++
		}
	}

	if len(s.Headers) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(s.Headers))
		f.SetColWidth(sheetName, "A", lastCol, 18)
		start, _ := excelize.CoordinatesToCellName(1, headerRow)
		end, _ := excelize.CoordinatesToCellName(len(s.Headers), headerRow)
		f.AutoFilter(sheetName, start+":"+end, []excelize.AutoFilterOptions{})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	return &File{Name: name + ".xlsx", Content: buf.Bytes()}, nil
}

func writeRow(f *excelize.File, row int, values []interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheetName, cell, cellValue(v))
	}
}

// cellValue converte valores decimais em número para a planilha
func cellValue(v interface{}) interface{} {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
