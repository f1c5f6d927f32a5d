package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cabeçalho do relatório de receita por profissional
var exportHeader = []string{"Profissional", "Quantidade de Serviços", "Total (R$)"}

// ExportCSV gera o relatório de receita em CSV, com linha TOTAL ao final
func ExportCSV(linhas []LinhaReceita) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return "", err
	}
	for _, l := range linhas {
		record := []string{l.Profissional, fmt.Sprintf("%d", l.Quantidade), formatValor(l.Total)}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	if err := w.Write([]string{"TOTAL", "", formatValor(TotalReceita(linhas))}); err != nil {
		return "", err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var printTemplate = template.Must(template.New("receita").
	Funcs(template.FuncMap{"valor": formatValor}).
	Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Relatório de Receita por Profissional</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; }
tfoot td { font-weight: bold; }
</style>
</head>
<body>
<h1>Receita por Profissional</h1>
{{if .Periodo}}<p>Período: {{.Periodo}}</p>{{end}}
<table>
<thead><tr><th>Profissional</th><th>Quantidade de Serviços</th><th>Total (R$)</th></tr></thead>
<tbody>
{{range .Linhas}}<tr><td>{{.Profissional}}</td><td>{{.Quantidade}}</td><td>{{.Total | valor}}</td></tr>
{{end}}</tbody>
<tfoot><tr><td>TOTAL</td><td></td><td>{{.Total | valor}}</td></tr></tfoot>
</table>
<script>window.print()</script>
</body>
</html>
`))

// ExportHTML gera o documento de impressão do relatório de receita
func ExportHTML(linhas []LinhaReceita, filtro FiltroReceita) (string, error) {
	periodo := ""
	if filtro.Inicio != "" || filtro.Fim != "" {
		periodo = fmt.Sprintf("%s a %s", filtro.Inicio, filtro.Fim)
	}

	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, map[string]interface{}{
		"Linhas":  linhas,
		"Total":   TotalReceita(linhas),
		"Periodo": periodo,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportXLSX gera o relatório de receita como planilha Excel
func ExportXLSX(linhas []LinhaReceita) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Receita"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, l := range linhas {
		row := i + 2
		if err := setRow(f, sheet, row, l.Profissional, l.Quantidade, l.Total); err != nil {
			return nil, err
		}
	}
	if err := setRow(f, sheet, len(linhas)+2, "TOTAL", nil, TotalReceita(linhas)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// formatValor escreve valores monetários com vírgula decimal
func formatValor(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
