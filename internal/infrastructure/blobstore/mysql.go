package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// appState é a linha gravada no MySQL
type appState struct {
	Key       string `gorm:"column:state_key;primaryKey;size:191"`
	Payload   string `gorm:"type:longtext;not null"`
	UpdatedAt time.Time
}

func (appState) TableName() string { return "app_state" }

// MySQL grava o estado via gorm
type MySQL struct {
	db *gorm.DB
}

// NewMySQL conecta ao MySQL com algumas tentativas e cria a tabela de estado
func NewMySQL(dsn string, log logger.Logger) (*MySQL, error) {
	if dsn == "" {
		return nil, errors.New("MYSQL_DSN não configurado")
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			break
		}
		log.Warn("Falha ao conectar ao MySQL, tentando novamente", "tentativa", i+1, "erro", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao MySQL: %w", err)
	}

	if err := db.AutoMigrate(&appState{}); err != nil {
		return nil, fmt.Errorf("erro ao criar tabela de estado: %w", err)
	}
	return &MySQL{db: db}, nil
}

func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	var row appState
	err := m.db.WithContext(ctx).Where("state_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("erro ao buscar estado: %w", err)
	}
	return []byte(row.Payload), nil
}

func (m *MySQL) Put(ctx context.Context, key string, data []byte) error {
	row := appState{Key: key, Payload: string(data), UpdatedAt: time.Now()}
	err := m.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("erro ao gravar estado: %w", err)
	}
	return nil
}

// Close fecha a conexão subjacente
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
