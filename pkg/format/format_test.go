package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cpf", "12345678900", "123.456.789-00"},
		{"cnpj", "12345678000190", "12.345.678/0001-90"},
		{"cnpj ja formatado", "12.345.678/0001-90", "12.345.678/0001-90"},
		{"tamanho desconhecido", "123", "123"},
		{"vazio", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Document(tt.in); got != tt.want {
				t.Errorf("Document(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"11987654321", "(11) 98765-4321"},
		{"1134567890", "(11) 3456-7890"},
		{"987654321", "98765-4321"},
		{"34567890", "3456-7890"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"12", "12"},
	}
	for _, tt := range tests {
		if got := Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNCM(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"25232910", "2523.29.10"},
		{"2523.29.10", "2523.29.10"},
		{"123", "0000.01.23"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NCM(tt.in); got != tt.want {
			t.Errorf("NCM(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"35.9", "R$ 35,90"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-850.2", "R$ -850,20"},
	}
	for _, tt := range tests {
		if got := Currency(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("Currency(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-10", "10/01/2024"},
		{"2024-01-10T10:30:00", "10/01/2024"},
		{"", "-"},
		{"amanhã", "-"},
	}
	for _, tt := range tests {
		if got := Date(tt.in); got != tt.want {
			t.Errorf("Date(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateTime(t *testing.T) {
	if got := DateTime("2024-03-05T14:45:00"); got != "05/03/2024 14:45:00" {
		t.Errorf("DateTime = %q", got)
	}
	if got := DateTime("xyz"); got != "-" {
		t.Errorf("DateTime inválido = %q", got)
	}
}
