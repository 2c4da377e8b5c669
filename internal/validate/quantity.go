// Package validate centralise la validation des quantités reçues de
// l'extérieur (ajout au panier, mise à jour du panier). Le panier lui-même
// ne voit jamais une quantité non validée.
package validate

import (
	"errors"
	"strconv"
	"strings"
)

// MaxQuantity est la borne haute acceptée pour une ligne de panier.
const MaxQuantity = 100

var (
	// ErrNotANumber : valeur non numérique ou non entière (ex. "abc", "2.5").
	ErrNotANumber = errors.New("quantity is not a whole number")
	// ErrNotPositive : zéro ou négatif sur le chemin d'ajout.
	ErrNotPositive = errors.New("quantity must be positive")
	// ErrNegative : négatif sur le chemin de mise à jour (zéro y est permis).
	ErrNegative = errors.New("quantity cannot be negative")
	// ErrTooLarge : au-delà de MaxQuantity.
	ErrTooLarge = errors.New("quantity exceeds the allowed maximum")
	// ErrMissing : quantité absente là où elle est obligatoire.
	ErrMissing = errors.New("quantity is required")
)

// AddQuantity interprète la quantité brute d'un ajout au panier.
// Absente → 1 par défaut.
func AddQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotANumber
	}
	if qty <= 0 {
		return 0, ErrNotPositive
	}
	if qty > MaxQuantity {
		return 0, ErrTooLarge
	}
	return qty, nil
}

// UpdateQuantity interprète la quantité brute d'une mise à jour de panier.
// Zéro est valide : l'appelant le traite comme une suppression de ligne.
func UpdateQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissing
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotANumber
	}
	if qty < 0 {
		return 0, ErrNegative
	}
	if qty > MaxQuantity {
		return 0, ErrTooLarge
	}
	return qty, nil
}
