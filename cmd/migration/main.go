package main

import (
	"flag"
	"log"
	"os"

	"github.com/hugohenrick/vcontrol-pro/internal/config"
	"github.com/hugohenrick/vcontrol-pro/internal/infrastructure/database"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Bool("down", false, "desfaz a última migração aplicada")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configurações: %v", err)
	}
	appLogger := logger.NewLogger(logger.ParseLevel(cfg.LogLevel))
	databaseURL := cfg.Store.Postgres.ConnectionString()

	if *down {
		if err := database.RollbackMigrations(databaseURL); err != nil {
			appLogger.Error("Erro ao desfazer migração", "error", err)
			os.Exit(1)
		}
		appLogger.Info("Última migração desfeita")
		return
	}

	if err := database.RunMigrations(databaseURL, appLogger); err != nil {
		appLogger.Error("Erro ao executar migrações", "error", err)
		os.Exit(1)
	}
}
