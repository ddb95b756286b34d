package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

// InitPostgresql opens the optional archive database. Domain state lives in
// the in-memory store; Postgres only backs snapshot archives and package
// embeddings, so a missing POSTGRES_URL disables those features instead of
// failing startup.
func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Println("POSTGRES_URL not set; snapshot archive and recommendations disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(&db_models.SnapshotArchive{}, &db_models.PackageEmbedding{}); err != nil {
		log.Printf("Error migrating archive tables: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}

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
