package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Codes promo reconnus → fraction de réduction sur le sous-total.
var discountCodes = map[string]decimal.Decimal{
	"SAVE10": decimal.NewFromFloat(0.10),
}

// NormalizeCode ramène un code promo à sa forme canonique :
// espaces retirés, majuscules.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ApplyDiscount applique un code promo au sous-total. Un code inconnu est
// ignoré : le total reste le sous-total, pas d'erreur. Renvoie le total et
// la réduction arrondis à 2 décimales, et le code appliqué (vide si aucun).
func ApplyDiscount(subtotal decimal.Decimal, code string) (total, discount decimal.Decimal, applied string) {
	normalized := NormalizeCode(code)
	fraction, ok := discountCodes[normalized]
	if !ok {
		return subtotal.Round(2), decimal.Zero, ""
	}
	discount = subtotal.Mul(fraction).Round(2)
	total = subtotal.Sub(discount).Round(2)
	return total, discount, normalized
}
