package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Layouts usados pelo sistema para datas persistidas
const (
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
	displayDate     = "02/01/2006"
	displayDateTime = "02/01/2006 15:04:05"
)

// digits remove qualquer caractere não numérico
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Document formata CPF (11 dígitos) ou CNPJ (14 dígitos).
// Qualquer outro valor é devolvido sem alteração.
func Document(doc string) string {
	if doc == "" {
		return ""
	}
	d := digits(doc)
	switch len(d) {
	case 11:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case 14:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	}
	return doc
}

// Phone formata telefones com ou sem DDD
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	d := digits(phone)
	switch len(d) {
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 9:
		return d[0:5] + "-" + d[5:9]
	case 8:
		return d[0:4] + "-" + d[4:8]
	}
	return phone
}

// NCM formata o código no padrão 0000.00.00, completando com zeros à esquerda
func NCM(ncm string) string {
	if ncm == "" {
		return ""
	}
	d := digits(ncm)
	if len(d) < 8 {
		d = strings.Repeat("0", 8-len(d)) + d
	}
	return d[0:4] + "." + d[4:6] + "." + d[6:8]
}

// Currency formata um valor monetário no padrão brasileiro (R$ 1.234,56)
func Currency(value decimal.Decimal) string {
	fixed := value.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative && !value.Round(2).IsZero() {
		sign = "-"
	}
	return "R$ " + sign + b.String() + "," + fracPart
}

// ParseDate interpreta uma data no formato YYYY-MM-DD em UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Date converte YYYY-MM-DD para DD/MM/YYYY; entradas inválidas viram "-"
func Date(s string) string {
	if s == "" {
		return "-"
	}
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := ParseDate(s)
	if err != nil {
		return "-"
	}
	return t.Format(displayDate)
}

// DateTime formata um timestamp ISO 8601 para exibição
func DateTime(s string) string {
	if s == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(displayDateTime)
		}
	}
	return "-"
}

// Today retorna a data corrente no formato persistido
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Month retorna a chave YYYY-MM do instante informado
func Month(now time.Time) string {
	return now.Format(MonthLayout)
}
