// Package store regroupe l'état en mémoire du process : paniers par
// session, comptes clients et commandes. Pas de base de données : tout vit
// et meurt avec le process, c'est le contrat de la démo.
package store

import (
	"sync"

	"bookstore_back_end/internal/models"
)

// Store est l'objet d'état unique, construit dans main et injecté dans la
// couche route. Pas de singleton process-wide : les tests créent le leur.
type Store struct {
	Users  *UserStore
	Orders *OrderStore

	mu          sync.RWMutex
	carts       map[string]*models.Cart
	subscribers map[string][]chan struct{}
}

func New() *Store {
	return &Store{
		Users:       NewUserStore(),
		Orders:      NewOrderStore(),
		carts:       make(map[string]*models.Cart),
		subscribers: make(map[string][]chan struct{}),
	}
}

// Cart renvoie le panier de la session, créé vide à la première visite.
func (s *Store) Cart(sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = models.NewCart()
		s.carts[sessionID] = cart
	}
	return cart
}

// SubscribeCart abonne un consommateur (WebSocket) aux changements du
// panier. La fonction renvoyée désabonne.
func (s *Store) SubscribeCart(sessionID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 8)
	s.mu.Lock()
	s.subscribers[sessionID] = append(s.subscribers[sessionID], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.subscribers[sessionID]
		for i, sub := range subs {
			if sub == ch {
				s.subscribers[sessionID] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// CartChanged notifie les abonnés du panier. Non bloquant : un abonné en
// retard saute simplement une notification, il relira l'état complet.
func (s *Store) CartChanged(sessionID string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subscribers[sessionID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
