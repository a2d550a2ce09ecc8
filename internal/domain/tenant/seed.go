package tenant

import (
	"time"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/cashier"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

// DefaultInfo são as configurações de uma empresa recém criada
func DefaultInfo() Info {
	return Info{Name: "VControlPro", Currency: "R$"}
}

// DefaultData monta o esquema inicial de uma empresa com os dados de
// demonstração. As datas são relativas a now. As senhas dos usuários
// vêm em texto puro e são protegidas pelo repositório na carga.
func DefaultData(now time.Time) *Data {
	daysAgo := func(n int) string { return format.Today(now.AddDate(0, 0, -n)) }
	daysAhead := func(n int) string { return format.Today(now.AddDate(0, 0, n)) }
	d := decimal.RequireFromString
	n := decimal.NewFromInt

	return &Data{
		Company: DefaultInfo(),
		Users: []user.User{
			{ID: 1, Name: "Administrador", Login: "admin", Password: "admin", Role: access.RoleAdmin, Modules: []access.Module{}},
			{ID: 2, Name: "Gerente", Login: "gerente", Password: "123", Role: access.RoleManager, Modules: []access.Module{}},
			{ID: 3, Name: "Vendedor", Login: "vendedor", Password: "123", Role: access.RoleSeller, Modules: []access.Module{}},
			{ID: 4, Name: "Almoxarife", Login: "almox", Password: "123", Role: access.RoleWarehouse, Modules: []access.Module{}},
			{ID: 5, Name: "Analista Financeiro", Login: "finan", Password: "123", Role: access.RoleFinance, Modules: []access.Module{}},
		},
		Clients: []partner.Partner{
			{ID: 1, Name: "Mercado Silva & Filhos", Document: format.Document("12345678000190"), Phone: format.Phone("11987654321"), Address: "Rua das Flores, 123", City: "São Paulo"},
			{ID: 2, Name: "Padaria Pão Dourado", Document: format.Document("98765432000110"), Phone: format.Phone("21912345678"), Address: "Av. Principal, 500", City: "Rio de Janeiro"},
			{ID: 3, Name: "Construtora Horizonte", Document: format.Document("45678901000123"), Phone: format.Phone("31998765432"), Address: "Praça Central, 45", City: "Belo Horizonte"},
			{ID: 4, Name: "João da Silva (PF)", Document: format.Document("12345678900"), Phone: format.Phone("41999998888"), Address: "Rua A, 10", City: "Curitiba"},
		},
		Suppliers: []partner.Partner{
			{ID: 1, Name: "Distribuidora Nacional", Document: format.Document("11222333000144"), Phone: format.Phone("4133334444"), Contact: "Roberto"},
			{ID: 2, Name: "Tech Soluções Ltda", Document: format.Document("55666777000188"), Phone: format.Phone("1130302020"), Contact: "Fernanda"},
			{ID: 3, Name: "Atacadão de Materiais", Document: format.Document("99888777000111"), Phone: format.Phone("5132109876"), Contact: "Carlos"},
			{ID: 4, Name: "Logística Express", Document: format.Document("22333444000155"), Phone: format.Phone("4730005000"), Contact: "Mariana"},
		},
		Products: []product.Product{
			{ID: 1, Name: "Cimento CP II - 50kg", Price: d("35.90"), Cost: d("28.50"), Stock: n(150), Unit: "SC", NCM: format.NCM("25232910"), CustomerDescription: "Cimento para construção civil"},
			{ID: 2, Name: "Tinta Acrílica Branca 18L", Price: d("289.90"), Cost: d("195.00"), Stock: n(45), Unit: "LT", NCM: format.NCM("32091010"), CustomerDescription: "Tinta para pintura de paredes"},
			{ID: 3, Name: "Tijolo 8 Furos", Price: d("1.20"), Cost: d("0.65"), Stock: n(5000), Unit: "UN", NCM: format.NCM("69041000"), CustomerDescription: "Tijolo cerâmico para alvenaria"},
			{ID: 4, Name: "Areia Média (Metro)", Price: d("120.00"), Cost: d("80.00"), Stock: n(30), Unit: "M3", NCM: format.NCM("25051000"), CustomerDescription: "Areia para construção"},
			{ID: 5, Name: "Tubo PVC 100mm - Barra 6m", Price: d("65.50"), Cost: d("42.00"), Stock: n(80), Unit: "BR", NCM: format.NCM("39172300"), CustomerDescription: "Tubo para esgoto e água"},
			{ID: 6, Name: "Argamassa AC-III", Price: d("45.00"), Cost: d("32.00"), Stock: n(200), Unit: "SC", NCM: format.NCM("38245000"), CustomerDescription: "Argamassa para assentamento"},
		},
		InventoryItems: []product.InventoryItem{
			{ID: 1, Name: "Cimento CP II - Reserva Técnica", NCM: format.NCM("25232910"), LastEntryInvoice: "NF-1020", Stock: n(200), Unit: "SC", Cost: d("28.00")},
			{ID: 2, Name: "Tijolo 8 Furos - Lote Antigo", NCM: format.NCM("69041000"), LastEntryInvoice: "NF-1021", Stock: n(5000), Unit: "UN", Cost: d("0.60")},
			{ID: 3, Name: "Kit Ferramentas Básicas", NCM: format.NCM("82060000"), LastEntryInvoice: "NF-9988", Stock: n(15), Unit: "CX", Cost: d("150.00")},
			{ID: 4, Name: "Capacete de Segurança Azul", NCM: format.NCM("65061000"), LastEntryInvoice: "NF-3321", Stock: n(50), Unit: "UN", Cost: d("12.50")},
		},
		Sales: []order.Order{
			{
				ID: 101, PartnerID: 1, PartnerName: "Mercado Silva & Filhos", CustomerOrderNumber: "PO-554",
				IssueDate: daysAgo(5), GeneralStatus: order.StatusDelivered, Total: d("1795.00"),
				Items: []order.Item{{ProductID: 1, Name: "Cimento CP II - 50kg", Quantity: 50, Delivered: 50, UnitPrice: d("35.90"), ItemStatus: order.ItemDelivered, DeliveryDate: daysAgo(4)}},
			},
			{
				ID: 102, PartnerID: 3, PartnerName: "Construtora Horizonte", CustomerOrderNumber: "CONST-2024",
				IssueDate: daysAgo(2), GeneralStatus: order.StatusPartial, Total: d("6000.00"),
				Items: []order.Item{{ProductID: 3, Name: "Tijolo 8 Furos", Quantity: 5000, Delivered: 2000, UnitPrice: d("1.20"), ItemStatus: order.ItemPartial, DeliveryDate: daysAhead(2)}},
			},
			{
				ID: 103, PartnerID: 4, PartnerName: "João da Silva (PF)", CustomerOrderNumber: "BALCÃO",
				IssueDate: daysAgo(10), GeneralStatus: order.StatusCancelled, Total: d("589.90"),
				Items: []order.Item{{ProductID: 2, Name: "Tinta Acrílica Branca 18L", Quantity: 2, Delivered: 0, UnitPrice: d("289.90"), ItemStatus: order.ItemPending, DeliveryDate: daysAgo(8)}},
			},
		},
		Purchases: []order.Order{
			{
				ID: 501, PartnerID: 1, PartnerName: "Distribuidora Nacional", CustomerOrderNumber: "COMPRA-ABRIL",
				IssueDate: daysAgo(15), GeneralStatus: order.StatusDelivered, Total: d("2850.00"),
				Items: []order.Item{{ProductID: 1, Name: "Cimento CP II - 50kg", Quantity: 100, Delivered: 100, UnitPrice: d("28.50"), ItemStatus: order.ItemDelivered, DeliveryDate: daysAgo(12)}},
			},
			{
				ID: 502, PartnerID: 4, PartnerName: "Logística Express", CustomerOrderNumber: "FRETE-URG",
				IssueDate: daysAgo(1), GeneralStatus: order.StatusOpen, Total: d("8400.00"),
				Items: []order.Item{{ProductID: 5, Name: "Tubo PVC 100mm - Barra 6m", Quantity: 200, Delivered: 0, UnitPrice: d("42.00"), ItemStatus: order.ItemPending, DeliveryDate: daysAhead(1)}},
			},
		},
		Financials: []financial.Entry{
			{ID: 1, Type: financial.TypePayable, Description: "Aluguel Galpão Principal", Value: d("3500.00"), DueDate: daysAhead(5), Status: financial.StatusPending, PartnerName: "Imobiliária Central", DocType: "Aluguel", IssueDate: daysAgo(20)},
			{ID: 2, Type: financial.TypePayable, Description: "Conta de Energia (Ref. Mês Anterior)", Value: d("850.20"), DueDate: daysAgo(2), Status: financial.StatusPending, PartnerName: "Enel", DocType: "Energia", IssueDate: daysAgo(15)},
			{ID: 3, Type: financial.TypePayable, Description: "Internet Fibra", Value: d("150.00"), DueDate: daysAgo(5), Status: financial.StatusPaid, SettlementDate: daysAgo(5), PartnerName: "Vivo Empresas", DocType: "Outros", IssueDate: daysAgo(20), SettledBy: "financeiro"},
			{ID: 4, Type: financial.TypePayable, Description: "Compra Matéria Prima - Distribuidora Nac.", Value: d("2850.00"), DueDate: daysAhead(10), Status: financial.StatusPending, PartnerName: "Distribuidora Nacional", DocType: "Boleto", IssueDate: daysAgo(15)},
			{ID: 5, Type: financial.TypeReceivable, Description: "Venda #101 - Mercado Silva", Value: d("1795.00"), DueDate: daysAgo(1), Status: financial.StatusReceived, SettlementDate: daysAgo(1), PartnerName: "Mercado Silva & Filhos", DocType: "Nota Fiscal", IssueDate: daysAgo(5), SettledBy: "admin"},
			{ID: 6, Type: financial.TypeReceivable, Description: "Venda #102 - Horizonte (Parc 1/2)", Value: d("3000.00"), DueDate: daysAhead(2), Status: financial.StatusPending, PartnerName: "Construtora Horizonte", DocType: "Boleto", IssueDate: daysAgo(2)},
			{ID: 7, Type: financial.TypeReceivable, Description: "Venda #102 - Horizonte (Parc 2/2)", Value: d("3000.00"), DueDate: daysAhead(32), Status: financial.StatusPending, PartnerName: "Construtora Horizonte", DocType: "Boleto", IssueDate: daysAgo(2)},
			{ID: 8, Type: financial.TypeReceivable, Description: "Manutenção Equipamento - Em Atraso", Value: d("450.00"), DueDate: daysAgo(3), Status: financial.StatusPending, PartnerName: "Construtora Horizonte", DocType: "Boleto", IssueDate: daysAgo(10)},
		},
		Cashier: []cashier.Entry{
			{ID: 1, Date: daysAgo(0), Type: cashier.TypeEntry, ExitInvoice: "NFCe-1001"},
			{ID: 2, Date: daysAgo(0), Type: cashier.TypeExit, EntryInvoice: "NF-550"},
		},
		Logs: []audit.Entry{
			{ID: 1, Timestamp: audit.Timestamp(now), User: "admin", Role: access.RoleAdmin, Action: audit.ActionSystem, Details: "Sistema inicializado", Module: audit.ModuleSystem},
			{ID: 2, Timestamp: daysAgo(1) + "T10:30:00", User: "vendedor", Role: access.RoleSeller, Action: audit.ActionCreate, Details: "Criou Pedido #102", Module: audit.ModuleSales},
			{ID: 3, Timestamp: daysAgo(5) + "T14:45:00", User: "financeiro", Role: access.RoleFinance, Action: audit.ActionUpdate, Details: "Baixou conta #3 (Pago)", Module: audit.ModuleFinancial},
			{ID: 4, Timestamp: daysAgo(2) + "T09:15:00", User: "admin", Role: access.RoleAdmin, Action: audit.ActionSystem, Details: "Tentativa de acesso não autorizado", Module: "segurança"},
		},
	}
}

// ReseedOnEmpty informa se uma coleção vazia volta aos dados iniciais na
// carga. Pedidos e lançamentos financeiros ficam vazios.
func ReseedOnEmpty(c Collection) bool {
	switch c {
	case CollectionSales, CollectionPurchases, CollectionFinancials:
		return false
	}
	return true
}
