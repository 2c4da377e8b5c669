// Package catalog expose la liste fixe des livres en vente.
// Chargée au démarrage du process, en lecture seule ensuite.
package catalog

import (
	"github.com/shopspring/decimal"

	"bookstore_back_end/internal/models"
)

var books = []models.Book{
	{Title: "The Great Gatsby", Category: "Fiction", Price: price("10.99"), Image: "gatsby.jpg"},
	{Title: "1984", Category: "Fiction", Price: price("8.99"), Image: "1984.jpg"},
	{Title: "I Ching", Category: "Philosophy", Price: price("15.50"), Image: "iching.jpg"},
	{Title: "Moby Dick", Category: "Adventure", Price: price("12.75"), Image: "mobydick.jpg"},
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// List renvoie le catalogue dans l'ordre de présentation.
func List() []models.Book {
	out := make([]models.Book, len(books))
	copy(out, books)
	return out
}

// FindByTitle recherche un livre par titre exact. Le second retour vaut
// false si aucun titre ne correspond : c'est à l'appelant de décider quoi
// en faire, le catalogue ne produit jamais d'erreur.
func FindByTitle(title string) (models.Book, bool) {
	for _, b := range books {
		if b.Title == title {
			return b, true
		}
	}
	return models.Book{}, false
}
