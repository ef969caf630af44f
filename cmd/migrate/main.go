package main

import (
	"context"
	"log"
	"os"

	"ai-grading-be/internal/model"
	"ai-grading-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for 12 Tables...")

	models := []interface{}{
		&model.Teacher{},
		&model.Class{},
		&model.Student{},
		&model.Term{},
		&model.Subject{},
		&model.Folder{},
		&model.AnswerKey{},
		&model.StudentAnswer{},
		&model.AnswerKeyChunk{},
		&model.StudentAnswerChunk{},
		&model.Assessment{},
		&model.UsageLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: HNSW indexes on the chunk tables
	log.Println("Step 3: Creating vector indexes...")

	indexManager := database.NewVectorIndexManager(
		database.NewGormSchemaExecutor(db),
		database.VectorIndexConfig{},
	)
	for _, table := range []string{"answer_key_chunks", "student_answer_chunks"} {
		if err := indexManager.Ensure(context.Background(), table); err != nil {
			log.Printf("Warn: Failed to create vector index on %s: %v", table, err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
