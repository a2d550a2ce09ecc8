package repository

import (
	"testing"
)

func TestCompanyValidator(t *testing.T) {
	s, _ := newStore(t, "")
	v := NewCompanyValidator(s)

	if ok, err := v.Exists(matriz); !ok || err != nil {
		t.Errorf("matriz deveria ser válida: %v %v", ok, err)
	}
	if ok, err := v.Exists("123"); ok || err != nil {
		t.Errorf("empresa desconhecida: %v %v", ok, err)
	}
}
