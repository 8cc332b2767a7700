package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/campus-exchange/config"
	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo.student@lums.edu.pk"
	password := "Password123"
	name := "Demo Student"
	helpers.SetPasswordCost(cfg.BcryptCost)
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, full_name, university, student_id, bio,
			is_verified, verification_status, email_verified, verification_notes)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, TRUE, $8)
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			is_verified = TRUE,
			verification_status = EXCLUDED.verification_status,
			email_verified = TRUE,
			updated_at = now()
		RETURNING id
	`, email, hash, name, "LUMS", "24100001", "Selling second-hand textbooks and lab coats.",
		string(entity.StatusVerified), "seeded demo account").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s password=%s university_email=%v\n",
		id, email, name, password, helpers.IsUniversityEmail(email))
}
