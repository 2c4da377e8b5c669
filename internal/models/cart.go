package models

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CartItem associe un livre du catalogue à une quantité.
// Invariant : Quantity >= 1 tant que la ligne est dans un panier.
type CartItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// TotalPrice calcule le montant de la ligne (prix × quantité), à la demande.
func (ci CartItem) TotalPrice() decimal.Decimal {
	return ci.Book.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart est la machine à états centrale du domaine : au plus une ligne par titre.
type Cart struct {
	mu    sync.RWMutex
	items map[string]*CartItem
}

func NewCart() *Cart {
	return &Cart{items: make(map[string]*CartItem)}
}

// AddBook crée la ligne pour ce titre. Si le titre est déjà présent, la
// quantité est remplacée, pas additionnée. La quantité doit avoir été
// validée en amont (>= 1).
func (c *Cart) AddBook(book Book, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[book.Title] = &CartItem{Book: book, Quantity: quantity}
}

// RemoveBook supprime la ligne si elle existe. Silencieux si absente.
func (c *Cart) RemoveBook(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, title)
}

// UpdateQuantity fixe la quantité d'une ligne existante.
// quantity <= 0 supprime la ligne et renvoie true (jamais de zéro stocké).
// Titre absent du panier : renvoie false, sans erreur.
func (c *Cart) UpdateQuantity(title string, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[title]
	if !ok {
		return false
	}
	if quantity <= 0 {
		delete(c.items, title)
		return true
	}
	item.Quantity = quantity
	return true
}

// TotalPrice renvoie la somme des montants de ligne. Zéro pour un panier vide.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// TotalItems renvoie la somme des quantités.
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Clear vide le panier.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*CartItem)
}

// IsEmpty renvoie true si le panier ne contient aucune ligne.
func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

// Items renvoie une copie des lignes, indexée par titre. Lecture seule :
// modifier la copie n'affecte pas le panier.
func (c *Cart) Items() map[string]CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]CartItem, len(c.items))
	for title, item := range c.items {
		out[title] = *item
	}
	return out
}

// Item renvoie la ligne d'un titre, si elle existe.
func (c *Cart) Item(title string) (CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[title]
	if !ok {
		return CartItem{}, false
	}
	return *item, true
}
