package main

// @title           VControl Pro API
// @version         1.0
// @description     API de gestão comercial multiempresa: cadastros, pedidos, financeiro, livro caixa e auditoria

// @contact.name   Suporte VControl
// @contact.email  suporte@vcontrol.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
