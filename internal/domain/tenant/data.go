package tenant

import (
	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/cashier"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
)

// Collection nomeia uma coleção da empresa, igual à chave persistida
type Collection string

const (
	CollectionCompany        Collection = "company"
	CollectionUsers          Collection = "users"
	CollectionClients        Collection = "clients"
	CollectionSuppliers      Collection = "suppliers"
	CollectionProducts       Collection = "products"
	CollectionInventoryItems Collection = "inventoryItems"
	CollectionSales          Collection = "sales"
	CollectionPurchases      Collection = "purchases"
	CollectionFinancials     Collection = "financials"
	CollectionCashier        Collection = "cashier"
	CollectionLogs           Collection = "logs"
)

// Collections lista as coleções na ordem do layout persistido
var Collections = []Collection{
	CollectionCompany, CollectionUsers, CollectionClients, CollectionSuppliers, CollectionProducts,
	CollectionInventoryItems, CollectionSales, CollectionPurchases, CollectionFinancials,
	CollectionCashier, CollectionLogs,
}

// IsValid verifica se a coleção é conhecida
func (c Collection) IsValid() bool {
	for _, known := range Collections {
		if known == c {
			return true
		}
	}
	return false
}

// OrderCollection retorna a coleção que guarda pedidos do tipo informado
func OrderCollection(kind order.Kind) Collection {
	if kind == order.KindSale {
		return CollectionSales
	}
	return CollectionPurchases
}

// PartnerCollection retorna a coleção de clientes ou fornecedores
func PartnerCollection(kind partner.Kind) Collection {
	if kind == partner.KindClient {
		return CollectionClients
	}
	return CollectionSuppliers
}

// Data é o conjunto de coleções de uma empresa
type Data struct {
	Company        Info                    `json:"company"`
	Users          []user.User             `json:"users"`
	Clients        []partner.Partner       `json:"clients"`
	Suppliers      []partner.Partner       `json:"suppliers"`
	Products       []product.Product       `json:"products"`
	InventoryItems []product.InventoryItem `json:"inventoryItems"`
	Sales          []order.Order           `json:"sales"`
	Purchases      []order.Order           `json:"purchases"`
	Financials     []financial.Entry       `json:"financials"`
	Cashier        []cashier.Entry         `json:"cashier"`
	Logs           []audit.Entry           `json:"logs"`
}

// Orders retorna os pedidos do tipo informado
func (d *Data) Orders(kind order.Kind) []order.Order {
	if kind == order.KindSale {
		return d.Sales
	}
	return d.Purchases
}

// Partners retorna clientes ou fornecedores
func (d *Data) Partners(kind partner.Kind) []partner.Partner {
	if kind == partner.KindClient {
		return d.Clients
	}
	return d.Suppliers
}

// Clone devolve uma cópia independente das coleções
func (d *Data) Clone() *Data {
	out := &Data{
		Company:        d.Company,
		Clients:        cloneSlice(d.Clients),
		Suppliers:      cloneSlice(d.Suppliers),
		Products:       cloneSlice(d.Products),
		InventoryItems: cloneSlice(d.InventoryItems),
		Sales:          cloneOrders(d.Sales),
		Purchases:      cloneOrders(d.Purchases),
		Financials:     cloneSlice(d.Financials),
		Cashier:        cloneSlice(d.Cashier),
		Logs:           cloneSlice(d.Logs),
	}
	out.Users = make([]user.User, len(d.Users))
	for i, u := range d.Users {
		u.Modules = append([]access.Module(nil), u.Modules...)
		out.Users[i] = u
	}
	return out
}

// Set substitui a coleção informada. value deve ter o tipo da coleção.
func (d *Data) Set(collection Collection, value interface{}) error {
	switch collection {
	case CollectionCompany:
		v, ok := value.(Info)
		if !ok {
			return ErrInvalidCollection
		}
		d.Company = v
	case CollectionUsers:
		v, ok := value.([]user.User)
		if !ok {
			return ErrInvalidCollection
		}
		d.Users = v
	case CollectionClients, CollectionSuppliers:
		v, ok := value.([]partner.Partner)
		if !ok {
			return ErrInvalidCollection
		}
		if collection == CollectionClients {
			d.Clients = v
		} else {
			d.Suppliers = v
		}
	case CollectionProducts:
		v, ok := value.([]product.Product)
		if !ok {
			return ErrInvalidCollection
		}
		d.Products = v
	case CollectionInventoryItems:
		v, ok := value.([]product.InventoryItem)
		if !ok {
			return ErrInvalidCollection
		}
		d.InventoryItems = v
	case CollectionSales, CollectionPurchases:
		v, ok := value.([]order.Order)
		if !ok {
			return ErrInvalidCollection
		}
		if collection == CollectionSales {
			d.Sales = v
		} else {
			d.Purchases = v
		}
	case CollectionFinancials:
		v, ok := value.([]financial.Entry)
		if !ok {
			return ErrInvalidCollection
		}
		d.Financials = v
	case CollectionCashier:
		v, ok := value.([]cashier.Entry)
		if !ok {
			return ErrInvalidCollection
		}
		d.Cashier = v
	case CollectionLogs:
		v, ok := value.([]audit.Entry)
		if !ok {
			return ErrInvalidCollection
		}
		d.Logs = v
	default:
		return ErrInvalidCollection
	}
	return nil
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return append([]T(nil), items...)
}

func cloneOrders(orders []order.Order) []order.Order {
	out := make([]order.Order, len(orders))
	for i, o := range orders {
		o.Items = append([]order.Item(nil), o.Items...)
		out[i] = o
	}
	return out
}
