package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

const (
	chartMonths = 6
	rankingSize = 5
)

var monthLabels = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthTotals é uma coluna do gráfico de movimentação
type MonthTotals struct {
	Month     string          `json:"month"`
	Label     string          `json:"label"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// Ranking é uma posição dos rankings do painel
type Ranking struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Dashboard é o painel da empresa. Restricted indica a visão sem
// indicadores financeiros, que traz apenas as contagens de cadastro.
type Dashboard struct {
	Restricted     bool            `json:"restricted"`
	Clients        int             `json:"clients"`
	Products       int             `json:"products"`
	Suppliers      int             `json:"suppliers,omitempty"`
	Chart          []MonthTotals   `json:"chart,omitempty"`
	MonthProfit    decimal.Decimal `json:"monthProfit"`
	TopProducts    []Ranking       `json:"topProducts,omitempty"`
	TopClients     []Ranking       `json:"topClients,omitempty"`
	TopSuppliers   []Ranking       `json:"topSuppliers,omitempty"`
	LateDeliveries int             `json:"lateDeliveries"`
	BillsToPay     int             `json:"billsToPay"`
	BillsToReceive int             `json:"billsToReceive"`
}

// DashboardService calcula os indicadores do painel
type DashboardService struct {
	*core
}

// Summary monta o painel. O painel é acessível a qualquer usuário com
// empresa selecionada; os indicadores financeiros exigem acesso a contas
// a pagar ou a receber.
func (s *DashboardService) Summary(ctx context.Context, actor *Actor) (*Dashboard, error) {
	data, err := s.scope(ctx, actor, "")
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Clients: len(data.Clients), Products: len(data.Products)}
	if !actor.User.HasAccess(access.ModuleFinancialPayable) && !actor.User.HasAccess(access.ModuleFinancialReceivable) {
		d.Restricted = true
		return d, nil
	}

	now := s.now()
	today := format.Today(now)
	sales := validOrders(data.Sales)
	purchases := validOrders(data.Purchases)

	d.Suppliers = len(data.Suppliers)
	d.Chart = monthChart(now, sales, purchases)
	d.MonthProfit = monthProfit(data, sales, format.Month(now))
	d.TopProducts = topProducts(sales)
	d.TopClients = topPartners(sales)
	d.TopSuppliers = topPartners(purchases)
	d.LateDeliveries = lateDeliveries(data.Purchases, today)
	d.BillsToPay = billsDue(data.Financials, financial.TypePayable, today)
	d.BillsToReceive = billsDue(data.Financials, financial.TypeReceivable, today)
	return d, nil
}

func validOrders(orders []order.Order) []order.Order {
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if o.GeneralStatus != order.StatusCancelled {
			out = append(out, o)
		}
	}
	return out
}

func monthChart(now time.Time, sales, purchases []order.Order) []MonthTotals {
	chart := make([]MonthTotals, 0, chartMonths)
	for i := chartMonths - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		key := format.Month(m)
		chart = append(chart, MonthTotals{
			Month:     key,
			Label:     monthLabels[m.Month()-1],
			Sales:     totalIn(sales, key),
			Purchases: totalIn(purchases, key),
		})
	}
	return chart
}

func totalIn(orders []order.Order, month string) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if strings.HasPrefix(o.IssueDate, month) {
			total = total.Add(o.Total)
		}
	}
	return total
}

// monthProfit soma preço menos custo das linhas vendidas no mês. O custo
// é o gravado na linha ou, na falta dele, o custo atual do produto.
func monthProfit(data *tenant.Data, sales []order.Order, month string) decimal.Decimal {
	profit := decimal.Zero
	for _, o := range sales {
		if !strings.HasPrefix(o.IssueDate, month) {
			continue
		}
		for _, item := range o.Items {
			cost := item.Cost
			if cost.IsZero() {
				if p, ok := domain.Find(data.Products, item.ProductID); ok {
					cost = p.Cost
				}
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			profit = profit.Add(item.UnitPrice.Mul(qty)).Sub(cost.Mul(qty))
		}
	}
	return profit
}

func topProducts(sales []order.Order) []Ranking {
	totals := map[int]*Ranking{}
	var keys []int
	for _, o := range sales {
		for _, item := range o.Items {
			r, ok := totals[item.ProductID]
			if !ok {
				name := item.Name
				if name == "" {
					name = "Sem Nome"
				}
				r = &Ranking{Name: name, Value: decimal.Zero}
				totals[item.ProductID] = r
				keys = append(keys, item.ProductID)
			}
			r.Value = r.Value.Add(decimal.NewFromInt(int64(item.Quantity)))
		}
	}
	out := make([]Ranking, 0, len(keys))
	for _, k := range keys {
		out = append(out, *totals[k])
	}
	return top(out)
}

func topPartners(orders []order.Order) []Ranking {
	totals := map[string]*Ranking{}
	var keys []string
	for _, o := range orders {
		name := o.PartnerName
		if name == "" {
			name = order.UnknownPartner
		}
		r, ok := totals[name]
		if !ok {
			r = &Ranking{Name: name, Value: decimal.Zero}
			totals[name] = r
			keys = append(keys, name)
		}
		r.Value = r.Value.Add(o.Total)
	}
	out := make([]Ranking, 0, len(keys))
	for _, k := range keys {
		out = append(out, *totals[k])
	}
	return top(out)
}

func top(rankings []Ranking) []Ranking {
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Value.GreaterThan(rankings[j].Value)
	})
	if len(rankings) > rankingSize {
		rankings = rankings[:rankingSize]
	}
	return rankings
}

// lateDeliveries conta as linhas de compra com entrega pendente e
// previsão vencida
func lateDeliveries(purchases []order.Order, today string) int {
	n := 0
	for _, o := range purchases {
		for _, item := range o.Items {
			if item.Delivered < item.Quantity && item.DeliveryDate != "" && item.DeliveryDate < today {
				n++
			}
		}
	}
	return n
}

func billsDue(entries []financial.Entry, t financial.Type, today string) int {
	n := 0
	for _, e := range entries {
		if e.Type == t && e.Status == financial.StatusPending && e.DueDate <= today {
			n++
		}
	}
	return n
}
