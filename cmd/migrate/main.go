package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"literinth-be/internal/model"
	"literinth-be/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	log.Println("Step 1: Setting up extensions and enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN CREATE TYPE user_role AS ENUM ('user', 'admin'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Category{},
		&model.CategoryTranslation{},
		&model.Subcategory{},
		&model.SubcategoryTranslation{},
		&model.Tag{},
		&model.TagTranslation{},
		&model.Schematic{},
		&model.SchematicTranslation{},
		&model.SchematicLike{},
		&model.SystemLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Step 3: Enforcing cascade deletes on translation and join tables...")

	postMigrationSQL := []string{
		// Subcategory slugs used to be unique per category only.
		`DROP INDEX IF EXISTS idx_subcategory_slug;`,
		`ALTER TABLE schematic_tags DROP CONSTRAINT IF EXISTS fk_schematic_tags_schematic,
		  ADD CONSTRAINT fk_schematic_tags_schematic FOREIGN KEY (schematic_id) REFERENCES schematics(id) ON DELETE CASCADE;`,
		`ALTER TABLE schematic_tags DROP CONSTRAINT IF EXISTS fk_schematic_tags_tag,
		  ADD CONSTRAINT fk_schematic_tags_tag FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE;`,
		`ALTER TABLE schematic_likes DROP CONSTRAINT IF EXISTS fk_schematic_likes_schematic,
		  ADD CONSTRAINT fk_schematic_likes_schematic FOREIGN KEY (schematic_id) REFERENCES schematics(id) ON DELETE CASCADE;`,
		`ALTER TABLE schematic_likes DROP CONSTRAINT IF EXISTS fk_schematic_likes_user,
		  ADD CONSTRAINT fk_schematic_likes_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
		`ALTER TABLE schematic_translations DROP CONSTRAINT IF EXISTS fk_schematic_translations_schematic,
		  ADD CONSTRAINT fk_schematic_translations_schematic FOREIGN KEY (schematic_id) REFERENCES schematics(id) ON DELETE CASCADE;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
