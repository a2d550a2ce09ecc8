package order

import (
	"strconv"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
)

// PendingDelivery é uma linha de compra ainda não entregue
type PendingDelivery struct {
	OrderID             int    `json:"orderId"`
	CustomerOrderNumber string `json:"customerOrderNumber"`
	SupplierName        string `json:"supplierName"`
	SupplierPhone       string `json:"supplierPhone"`
	ProductID           int    `json:"productId"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`
	Delivered           int    `json:"delivered"`
	Pending             int    `json:"pending"`
	DeliveryDate        string `json:"deliveryDate"`
}

// PendingDeliveries lista as linhas de compra com entrega pendente. O
// telefone vem do fornecedor de mesmo nome. search filtra por produto,
// fornecedor, número do pedido ou número do pedido do cliente.
func PendingDeliveries(purchases []Order, suppliers []partner.Partner, search string) []PendingDelivery {
	search = strings.ToLower(search)
	out := make([]PendingDelivery, 0)
	for _, purchase := range purchases {
		number := purchase.CustomerOrderNumber
		if number == "" {
			number = "Sem Número"
		}
		phone := "N/A"
		for _, s := range suppliers {
			if s.Name == purchase.PartnerName {
				phone = s.Phone
				break
			}
		}

		for _, item := range purchase.Items {
			if item.Delivered >= item.Quantity {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(item.Name), search) &&
				!strings.Contains(strings.ToLower(purchase.PartnerName), search) &&
				!strings.Contains(strconv.Itoa(purchase.ID), search) &&
				!strings.Contains(strings.ToLower(number), search) {
				continue
			}
			out = append(out, PendingDelivery{
				OrderID:             purchase.ID,
				CustomerOrderNumber: number,
				SupplierName:        purchase.PartnerName,
				SupplierPhone:       phone,
				ProductID:           item.ProductID,
				Name:                item.Name,
				Quantity:            item.Quantity,
				Delivered:           item.Delivered,
				Pending:             item.Pending(),
				DeliveryDate:        item.DeliveryDate,
			})
		}
	}
	return out
}
