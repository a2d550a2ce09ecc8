package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Campos comparados nas alterações de cadastro e de lançamentos
var (
	EntityFields    = []string{"name", "price", "cost", "stock", "phone", "ncm", "description", "entryInvoice", "exitInvoice", "customerDescription"}
	FinancialFields = []string{"description", "value", "dueDate", "status", "docNumber", "partnerName"}
)

var fieldLabels = map[string]string{
	"name":                "Nome",
	"price":               "Preço",
	"cost":                "Custo",
	"stock":               "Estoque",
	"generalStatus":       "Status",
	"ncm":                 "NCM",
	"phone":               "Telefone",
	"partnerId":           "Parceiro",
	"value":               "Valor",
	"dueDate":             "Vencimento",
	"description":         "Descrição",
	"docNumber":           "Nº Doc",
	"customerDescription": "Descrição do Cliente",
}

// Label traduz o nome do campo, ou devolve o próprio nome
func Label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Diff compara os campos informados de dois registros pelo seu layout
// JSON e descreve as diferenças como "Rótulo: antigo -> novo", separadas
// por " | ". Retorna vazio quando nada mudou.
func Diff(before, after interface{}, fields []string) (string, error) {
	oldValues, err := flatten(before)
	if err != nil {
		return "", err
	}
	newValues, err := flatten(after)
	if err != nil {
		return "", err
	}

	var changes []string
	for _, f := range fields {
		o, n := oldValues[f], newValues[f]
		if o != n {
			changes = append(changes, fmt.Sprintf("%s: %s -> %s", Label(f), o, n))
		}
	}
	return strings.Join(changes, " | "), nil
}

func flatten(v interface{}) (map[string]string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar registro: %w", err)
	}
	fields := map[string]interface{}{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("erro ao ler registro: %w", err)
	}

	out := make(map[string]string, len(fields))
	for k, val := range fields {
		if val == nil {
			continue
		}
		out[k] = fmt.Sprint(val)
	}
	return out, nil
}
