package service

// Exposições para os testes externos (package service_test)
const (
	CancelTitle   = cancelTitle
	DeleteTitle   = deleteTitle
	DeleteMessage = deleteMessage
	RankingSize   = rankingSize
)

var Top = top
