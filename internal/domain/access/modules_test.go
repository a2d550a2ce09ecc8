package access

import "testing"

func TestHasAccess_AdminAlwaysAllowed(t *testing.T) {
	for _, d := range Catalog {
		if !HasAccess(RoleAdmin, nil, d.ID) {
			t.Errorf("admin sem acesso a %s", d.ID)
		}
		if !HasAccess(RoleAdmin, []Module{ModuleDashboard}, d.ID) {
			t.Errorf("admin com lista explícita sem acesso a %s", d.ID)
		}
	}
}

func TestHasAccess(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		modules []Module
		module  Module
		want    bool
	}{
		{"lista explícita concede", RoleSeller, []Module{ModuleCashier}, ModuleCashier, true},
		{"lista explícita restringe", RoleManager, []Module{ModuleCashier}, ModuleSales, false},
		{"papel vendedor acessa vendas", RoleSeller, nil, ModuleSales, true},
		{"papel vendedor sem financeiro", RoleSeller, nil, ModuleFinancialPayable, false},
		{"lista vazia usa papel", RoleFinance, []Module{}, ModuleCashier, true},
		{"gerente sem configurações", RoleManager, nil, ModuleConfig, false},
		{"papel desconhecido", "estagiario", nil, ModuleDashboard, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAccess(tt.role, tt.modules, tt.module); got != tt.want {
				t.Errorf("HasAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultModules(t *testing.T) {
	if got := DefaultModules(RoleAdmin); len(got) != len(Catalog) {
		t.Errorf("admin deveria receber todos os módulos, recebeu %d", len(got))
	}
	got := DefaultModules(RoleWarehouse)
	got[0] = ModuleConfig
	if DefaultModules(RoleWarehouse)[0] != ModuleDashboard {
		t.Errorf("DefaultModules deve devolver uma cópia")
	}
	if len(DefaultModules("desconhecido")) != 0 {
		t.Errorf("papel desconhecido não deveria ter módulos")
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		role   string
		module Module
		want   bool
	}{
		{RoleAdmin, ModuleClients, true},
		{RoleManager, ModuleClients, false},
		{RoleManager, ModuleInventoryReport, true},
		{RoleWarehouse, ModuleInventoryReport, true},
		{RoleSeller, ModuleInventoryReport, false},
	}
	for _, tt := range tests {
		if got := CanDelete(tt.role, tt.module); got != tt.want {
			t.Errorf("CanDelete(%s, %s) = %v, want %v", tt.role, tt.module, got, tt.want)
		}
	}
}
