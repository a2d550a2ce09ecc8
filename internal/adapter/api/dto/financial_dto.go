package dto

import (
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
)

// FinancialListResponse traz os lançamentos filtrados e o resumo por faixa
type FinancialListResponse struct {
	Entries []financial.Entry `json:"entries"`
	Summary financial.Summary `json:"summary"`
}
