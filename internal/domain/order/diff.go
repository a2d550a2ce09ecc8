package order

import (
	"fmt"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/pkg/format"
)

// NoItemChanges é o texto usado quando as listas de itens coincidem
const NoItemChanges = "Nenhuma alteração nos itens."

// DiffItems descreve as diferenças entre duas listas de itens,
// casando as linhas pelo produto e não pela posição.
func DiffItems(oldItems, newItems []Item) string {
	var details []string

	for _, oldItem := range oldItems {
		newItem, ok := findItem(newItems, oldItem.ProductID)
		if !ok {
			details = append(details, fmt.Sprintf("REMOVEU item '%s' (Qtd: %d)", oldItem.Name, oldItem.Quantity))
			continue
		}
		if oldItem.Quantity != newItem.Quantity {
			details = append(details, fmt.Sprintf("ALTEROU Qtd '%s': %d -> %d", oldItem.Name, oldItem.Quantity, newItem.Quantity))
		}
		if !oldItem.UnitPrice.Equal(newItem.UnitPrice) {
			details = append(details, fmt.Sprintf("ALTEROU Preço '%s': %s -> %s",
				oldItem.Name, format.Currency(oldItem.UnitPrice), format.Currency(newItem.UnitPrice)))
		}
	}

	for _, newItem := range newItems {
		if _, ok := findItem(oldItems, newItem.ProductID); !ok {
			details = append(details, fmt.Sprintf("ADICIONOU item '%s' (Qtd: %d)", newItem.Name, newItem.Quantity))
		}
	}

	if len(details) == 0 {
		return NoItemChanges
	}
	return strings.Join(details, " | ")
}

// Summary lista os itens no formato "2x Nome, 3x Outro"
func Summary(items []Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	}
	return strings.Join(parts, ", ")
}

func findItem(items []Item, productID int) (Item, bool) {
	for _, item := range items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return Item{}, false
}
