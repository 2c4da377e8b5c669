package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookstore_back_end/internal/models"
)

// ErrCartEmpty : impossible de passer commande avec un panier vide.
var ErrCartEmpty = errors.New("cart is empty")

// MissingFieldError identifie précisément le champ obligatoire manquant,
// pour que la couche route affiche un message par champ sans inspecter le
// texte de l'erreur.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Champs obligatoires du formulaire de checkout, dans l'ordre de signalement.
var requiredCheckoutFields = []string{"name", "email", "address", "city", "zip_code", "payment_method"}

// OrderStore est le registre des commandes, indexé par identifiant.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*models.Order)}
}

// Create construit une commande depuis le contenu actuel du panier et les
// données du formulaire, l'enregistre en statut "pending" puis vide le
// panier. Aucune commande n'est créée — et le panier reste intact — si le
// panier est vide ou si un champ obligatoire manque.
func (s *OrderStore) Create(cart *models.Cart, customer models.CustomerInfo, payment models.PaymentInfo, discountCode string) (models.Order, error) {
	if cart.IsEmpty() {
		return models.Order{}, ErrCartEmpty
	}

	fields := map[string]string{
		"name":           customer.Name,
		"email":          customer.Email,
		"address":        customer.Address,
		"city":           customer.City,
		"zip_code":       customer.Zip,
		"payment_method": payment.Method,
	}
	for _, field := range requiredCheckoutFields {
		if strings.TrimSpace(fields[field]) == "" {
			return models.Order{}, &MissingFieldError{Field: field}
		}
	}

	lines := cart.Items()
	items := make([]models.OrderItem, 0, len(lines))
	for title, line := range lines {
		items = append(items, models.OrderItem{
			Title:     title,
			Quantity:  line.Quantity,
			UnitPrice: line.Book.Price,
			Total:     line.TotalPrice(),
		})
	}
	// Ordre stable pour l'affichage de la confirmation.
	sort.Slice(items, func(i, j int) bool { return items[i].Title < items[j].Title })

	subtotal := cart.TotalPrice()
	total, discount, applied := models.ApplyDiscount(subtotal, discountCode)

	last4 := payment.CardNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		Items:         items,
		Customer:      customer,
		PaymentMethod: payment.Method,
		CardLast4:     last4,
		DiscountCode:  applied,
		Subtotal:      subtotal.Round(2),
		Discount:      discount,
		Total:         total,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.mu.Unlock()

	cart.Clear()
	return *order, nil
}

// Find renvoie la commande associée à un identifiant, si elle existe.
// Identifiant inconnu : simple "non trouvé", jamais d'erreur.
func (s *OrderStore) Find(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return *order, true
}

// SetStatus fait évoluer le statut d'une commande, seule mutation permise
// après création. Renvoie false si la commande n'existe pas.
func (s *OrderStore) SetStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return false
	}
	order.Status = status
	return true
}

// ByEmail renvoie les commandes passées avec cet email, la plus récente
// d'abord.
func (s *OrderStore) ByEmail(email string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, order := range s.orders {
		if order.Customer.Email == email {
			out = append(out, *order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
