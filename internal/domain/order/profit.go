package order

import "github.com/shopspring/decimal"

// Rótulos do resultado conforme o tipo do pedido
const (
	LabelRealProfit      = "Lucro Real"
	LabelProjectedProfit = "Lucro Projetado"
)

var hundred = decimal.NewFromInt(100)

// Profit resume total, custo e margem de um conjunto de linhas
type Profit struct {
	Label   string          `json:"label"`
	Total   decimal.Decimal `json:"total"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Value   decimal.Decimal `json:"profit"`
	Margin  decimal.Decimal `json:"margin"`
}

// ComputeProfit calcula o lucro sobre a base de custo. Em vendas a
// receita é o total e o custo vem do custo gravado na linha; em compras
// o custo é o total e a receita é projetada pelo preço de venda.
// A margem é zero quando a base de custo é zero.
func ComputeProfit(kind Kind, items []Item) Profit {
	total := ComputeTotal(items)
	p := Profit{Total: total}

	if kind == KindSale {
		p.Label = LabelRealProfit
		p.Revenue = total
		p.Cost = sumBy(items, func(i Item) decimal.Decimal { return i.Cost })
	} else {
		p.Label = LabelProjectedProfit
		p.Cost = total
		p.Revenue = sumBy(items, func(i Item) decimal.Decimal { return i.Price })
	}

	p.Value = p.Revenue.Sub(p.Cost)
	p.Margin = decimal.Zero
	if p.Cost.IsPositive() {
		p.Margin = p.Value.Div(p.Cost).Mul(hundred).Round(2)
	}
	return p
}

func sumBy(items []Item, unit func(Item) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(unit(item).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}
