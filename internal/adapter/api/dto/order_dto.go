package dto

import (
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
)

// StartDraftRequest abre um rascunho novo ou a edição de um pedido salvo
type StartDraftRequest struct {
	Kind      order.Kind `json:"kind" binding:"required"`
	EditingID int        `json:"editingId"`
}

// EditLineResponse devolve a linha retirada do rascunho para correção
type EditLineResponse struct {
	Line  order.Line        `json:"line"`
	Draft service.DraftView `json:"draft"`
}
