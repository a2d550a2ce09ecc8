package service

import (
	"context"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
)

// AuditService consulta o log de auditoria da empresa selecionada
type AuditService struct {
	*core
}

// List retorna as entradas mais recentes primeiro, filtradas pelo termo
func (s *AuditService) List(ctx context.Context, actor *Actor, search string) ([]audit.Entry, error) {
	data, err := s.scope(ctx, actor, access.ModuleAuditReport)
	if err != nil {
		return nil, err
	}
	return audit.Search(data.Logs, search), nil
}
