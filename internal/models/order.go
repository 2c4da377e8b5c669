package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// OrderItem est la copie figée d'une ligne de panier au moment du checkout.
type OrderItem struct {
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// CustomerInfo regroupe les coordonnées saisies dans le formulaire de checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip_code"`
}

// PaymentInfo est acceptée telle quelle : aucune validation des données de
// carte, l'intégration d'un prestataire de paiement est hors périmètre.
// Seuls la méthode et les 4 derniers chiffres sont conservés sur la commande.
type PaymentInfo struct {
	Method     string
	CardNumber string
	Expiry     string
	CVV        string
}

// Order est l'instantané immuable d'un checkout terminé : les lignes sont
// copiées depuis le panier et ne bougent plus, quoi qu'il arrive au panier
// ensuite. Seul le statut évolue après création.
type Order struct {
	ID            string          `json:"id"`
	Items         []OrderItem     `json:"items"`
	Customer      CustomerInfo    `json:"customer"`
	PaymentMethod string          `json:"payment_method"`
	CardLast4     string          `json:"card_last4,omitempty"`
	DiscountCode  string          `json:"discount_code,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
