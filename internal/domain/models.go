package domain

import "time"

type User struct {
	ID            int       `db:"id"`
	Username      string    `db:"username"`
	PasswordHash  string    `db:"password_hash"`
	IsAdmin       bool      `db:"is_admin"`
	Credits       int       `db:"credits"`
	Banned        bool      `db:"banned"`
	Notifications []string  `db:"notifications"`
	CreatedAt     time.Time `db:"created_at"`
}

type Product struct {
	ID        string `db:"id"`
	Operator  string `db:"operator"`
	Category  string `db:"category"`
	Name      string `db:"name"`
	PriceMMK  int    `db:"price_mmk"`
	PriceCr   int    `db:"price_cr"`
	Available bool   `db:"available"`
}

type Order struct {
	ID         int64     `db:"id"`
	UserID     int       `db:"user_id"`
	Type       string    `db:"type"`
	Amount     int       `db:"amount"`
	ProductID  string    `db:"product_id"`
	ProofImage string    `db:"proof_image"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

type PaymentAccount struct {
	Provider string `db:"provider"`
	Name     string `db:"name"`
	Number   string `db:"number"`
	Active   bool   `db:"active"`
}

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// OrderSummary is an order enriched with the product name shown to its owner.
type OrderSummary struct {
	Order
	ProductName string
}

// AdminOrder is an order enriched with the data the admin review screen needs.
type AdminOrder struct {
	Order
	Username        string
	ProductName     string
	ProductOperator string
}

// UserOverview is a user projection with an aggregate order count.
type UserOverview struct {
	User
	OrderCount int
}
