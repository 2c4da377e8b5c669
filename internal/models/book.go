package models

import "github.com/shopspring/decimal"

// Book représente une entrée du catalogue. Immuable une fois créée.
// Le titre sert de clé unique dans tout le domaine.
type Book struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
}
