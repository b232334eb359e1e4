package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ecommerce-api/config"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	name := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, verify_email)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	products := []struct {
		name, description, category string
		price                       float64
		stock                       int
	}{
		{"Espresso Beans 1kg", "Dark roast arabica beans", "coffee", 18.50, 120},
		{"Pour-Over Kettle", "Gooseneck kettle, 1L", "equipment", 42.00, 35},
		{"Ceramic Mug", "350ml stoneware mug", "accessories", 12.90, 200},
	}
	for _, p := range products {
		var id string
		err := db.QueryRow(`
			INSERT INTO products (name, description, price, category, stock)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, p.name, p.description, p.price, p.category, p.stock).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
		fmt.Printf("seeded product: id=%s name=%s\n", id, p.name)
	}
}
