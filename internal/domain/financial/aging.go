package financial

import "github.com/shopspring/decimal"

// Summary agrupa os valores por faixa de vencimento
type Summary struct {
	Overdue decimal.Decimal `json:"overdue"`
	Today   decimal.Decimal `json:"today"`
	Future  decimal.Decimal `json:"future"`
	Settled decimal.Decimal `json:"settled"`
}

// Bucket identifica a faixa de um lançamento
type Bucket string

const (
	BucketOverdue Bucket = "overdue"
	BucketToday   Bucket = "today"
	BucketFuture  Bucket = "future"
	BucketSettled Bucket = "settled"
)

// Classify retorna a faixa do lançamento na data informada. Datas no
// formato YYYY-MM-DD são comparadas como texto.
func Classify(e Entry, today string) Bucket {
	if e.Status.IsSettled() {
		return BucketSettled
	}
	switch {
	case e.DueDate < today:
		return BucketOverdue
	case e.DueDate == today:
		return BucketToday
	default:
		return BucketFuture
	}
}

// Summarize soma os lançamentos por faixa
func Summarize(entries []Entry, today string) Summary {
	s := Summary{Overdue: decimal.Zero, Today: decimal.Zero, Future: decimal.Zero, Settled: decimal.Zero}
	for _, e := range entries {
		switch Classify(e, today) {
		case BucketOverdue:
			s.Overdue = s.Overdue.Add(e.Value)
		case BucketToday:
			s.Today = s.Today.Add(e.Value)
		case BucketFuture:
			s.Future = s.Future.Add(e.Value)
		case BucketSettled:
			s.Settled = s.Settled.Add(e.Value)
		}
	}
	return s
}

// ViewMode seleciona lançamentos em aberto ou baixados
type ViewMode string

const (
	ViewOpen    ViewMode = "open"
	ViewSettled ViewMode = "settled"
)

// Filter define os critérios da listagem
type Filter struct {
	Type  Type
	Mode  ViewMode
	Start string
	End   string
}

// Apply seleciona os lançamentos do tipo e modo informados. Em modo
// baixado a janela compara a data de baixa (ou o vencimento, se ausente);
// em aberto compara o vencimento.
func (f Filter) Apply(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.Mode == ViewOpen && e.Status != StatusPending {
			continue
		}
		if f.Mode == ViewSettled && e.Status == StatusPending {
			continue
		}

		date := e.DueDate
		if f.Mode == ViewSettled && e.SettlementDate != "" {
			date = e.SettlementDate
		}
		if f.Start != "" && date < f.Start {
			continue
		}
		if f.End != "" && date > f.End {
			continue
		}
		out = append(out, e)
	}
	return out
}
