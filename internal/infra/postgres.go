package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"machsight/internal/models/db_models"
)

// InitPostgresql opens the connection pool and migrates the schema.
// TranslateError lets callers test for gorm.ErrDuplicatedKey, which the lazy
// user-provisioning race depends on.
func InitPostgresql(dsn string) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Machine{},
		&db_models.Report{},
		&db_models.Transaction{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
