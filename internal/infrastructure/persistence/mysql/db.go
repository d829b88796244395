package mysql

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/literary-depot/internal/infrastructure/config"
)

// NewDB opens MySQL for storage.driver "mysql" and migrates the books table.
// SQL is logged when database.log_mode is set or the server runs in debug mode.
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	logLevel := logger.Silent
	if cfg.Database.LogMode || cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("ping mysql: %w", err)
	}

	log.Info("mysql connected", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	// AutoMigrate only adds tables and columns; it never drops anything.
	if err := db.AutoMigrate(&BookModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("migrate mysql: %w", err)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("mysql close failed", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// BookModel is the GORM model of the books table.
// The domain entity carries no tags; the repository converts between the two.
// id is the service-minted UUID string, not an auto-increment key.
type BookModel struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Title       string  `gorm:"size:500;not null"`
	Author      string  `gorm:"size:255;not null"`
	Category    string  `gorm:"index;size:255;not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	ImageURL    string  `gorm:"size:2048"`
	AmazonLink  string  `gorm:"size:2048"`
	Featured    bool    `gorm:"index;not null;default:false"`
}

// TableName pins the table name.
func (BookModel) TableName() string {
	return "books"
}
