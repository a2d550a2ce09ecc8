package access

// Module identifica uma área funcional concedível a um usuário
type Module string

// Módulos do sistema
const (
	ModuleDashboard           Module = "dashboard"
	ModuleClients             Module = "clients"
	ModuleSuppliers           Module = "suppliers"
	ModuleProducts            Module = "products"
	ModuleSales               Module = "sales"
	ModulePurchases           Module = "purchases"
	ModuleHistoryItems        Module = "history_items"
	ModuleDeliveryReport      Module = "delivery_report"
	ModuleFinancialPayable    Module = "financial_payable"
	ModuleFinancialReceivable Module = "financial_receivable"
	ModuleCashier             Module = "cashier"
	ModuleInventoryReport     Module = "inventory_report"
	ModuleAuditReport         Module = "audit_report"
	ModuleSalesHistory        Module = "sales_history"
	ModulePurchasesHistory    Module = "purchases_history"
	ModuleConfig              Module = "config"
)

// Papéis conhecidos pela tabela de permissões padrão
const (
	RoleAdmin     = "admin"
	RoleManager   = "gerente"
	RoleSeller    = "vendedor"
	RoleWarehouse = "almoxarifado"
	RoleFinance   = "financeiro"
	RoleUser      = "user"
)

// Definition descreve um módulo para o editor de permissões
type Definition struct {
	ID       Module `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Catalog lista todos os módulos na ordem de exibição
var Catalog = []Definition{
	{ModuleDashboard, "Visão Geral", "principal"},
	{ModuleClients, "Clientes", "cadastros"},
	{ModuleSuppliers, "Fornecedores", "cadastros"},
	{ModuleProducts, "Produtos", "cadastros"},
	{ModuleSales, "Vendas", "movimentacao"},
	{ModulePurchases, "Compras", "movimentacao"},
	{ModuleHistoryItems, "Histórico Itens", "movimentacao"},
	{ModuleDeliveryReport, "Relatório Entregas", "movimentacao"},
	{ModuleFinancialPayable, "Contas a Pagar", "financeiro"},
	{ModuleFinancialReceivable, "Contas a Receber", "financeiro"},
	{ModuleCashier, "Livro Caixa", "controle_interno"},
	{ModuleInventoryReport, "Estoque (Independente)", "relatorios"},
	{ModuleAuditReport, "Logs do Sistema", "relatorios"},
	{ModuleSalesHistory, "Vendas Finalizadas", "concluidos"},
	{ModulePurchasesHistory, "Compras Finalizadas", "concluidos"},
	{ModuleConfig, "Configurações", "administracao"},
}

// Categories traduz as categorias do catálogo
var Categories = map[string]string{
	"principal":        "Principal",
	"cadastros":        "Cadastros",
	"movimentacao":     "Movimentação",
	"financeiro":       "Financeiro",
	"controle_interno": "Controle Interno",
	"relatorios":       "Relatórios & Auditoria",
	"concluidos":       "Pedidos Concluídos",
	"administracao":    "Administração",
}

// roleModules é a tabela de módulos padrão por papel
var roleModules = map[string][]Module{
	RoleManager: {
		ModuleDashboard, ModuleClients, ModuleSuppliers, ModuleProducts, ModuleSales, ModulePurchases,
		ModuleHistoryItems, ModuleDeliveryReport, ModuleFinancialPayable, ModuleFinancialReceivable,
		ModuleCashier, ModuleInventoryReport, ModuleAuditReport, ModuleSalesHistory, ModulePurchasesHistory,
	},
	RoleSeller: {
		ModuleDashboard, ModuleClients, ModuleProducts, ModuleSales, ModuleHistoryItems,
		ModuleDeliveryReport, ModuleSalesHistory,
	},
	RoleWarehouse: {
		ModuleDashboard, ModuleSuppliers, ModuleProducts, ModulePurchases, ModuleDeliveryReport,
		ModuleInventoryReport, ModulePurchasesHistory,
	},
	RoleFinance: {
		ModuleDashboard, ModuleClients, ModuleSuppliers, ModuleFinancialPayable, ModuleFinancialReceivable,
		ModuleCashier, ModuleAuditReport,
	},
	RoleUser: {
		ModuleDashboard, ModuleClients, ModuleProducts, ModuleSales, ModuleHistoryItems, ModuleSalesHistory,
	},
}

// inventoryDeleters podem excluir itens do estoque independente
var inventoryDeleters = []string{RoleAdmin, RoleManager, RoleWarehouse}

// IsValid verifica se o módulo existe no catálogo
func (m Module) IsValid() bool {
	for _, d := range Catalog {
		if d.ID == m {
			return true
		}
	}
	return false
}

// All retorna os ids de todos os módulos
func All() []Module {
	out := make([]Module, len(Catalog))
	for i, d := range Catalog {
		out[i] = d.ID
	}
	return out
}

// DefaultModules retorna uma cópia dos módulos padrão do papel
func DefaultModules(role string) []Module {
	if role == RoleAdmin {
		return All()
	}
	return append([]Module(nil), roleModules[role]...)
}

// HasAccess resolve se um usuário com o papel e a lista explícita
// informados pode acessar o módulo. Admin sempre tem acesso; uma lista
// explícita não vazia prevalece sobre a tabela do papel.
func HasAccess(role string, modules []Module, module Module) bool {
	if role == RoleAdmin {
		return true
	}
	if len(modules) > 0 {
		return contains(modules, module)
	}
	return contains(roleModules[role], module)
}

// CanDelete informa se o papel pode excluir registros do módulo
func CanDelete(role string, module Module) bool {
	if module == ModuleInventoryReport {
		for _, r := range inventoryDeleters {
			if r == role {
				return true
			}
		}
		return false
	}
	return role == RoleAdmin
}

// CanEditOrder informa se o papel pode reabrir um pedido salvo
func CanEditOrder(role string) bool {
	return role == RoleAdmin
}

func contains(modules []Module, module Module) bool {
	for _, m := range modules {
		if m == module {
			return true
		}
	}
	return false
}
