package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Arnav-0606/Nsut-cater/models"
)

// Token numbers are short codes shown at the pickup counter.
const (
	tokenMin = 100
	tokenMax = 999
)

// Store owns all application state: the menu catalog, per-user carts,
// the shared order list and the session user's wallet. It is constructed
// once in main and passed to every handler, so nothing shares state by
// import. All methods are safe for concurrent use and every mutating
// operation validates fully before writing anything.
type Store struct {
	mu           sync.RWMutex
	menu         []models.MenuItem
	menuIndex    map[string]int // menu item id -> index into menu
	carts        map[string]*models.Cart
	orders       []*models.Order
	user         *models.User
	transactions []models.Transaction
	tokenSeq     int
}

// New returns an empty store. Call Seed for the demo dataset.
func New() *Store {
	return &Store{
		menuIndex: make(map[string]int),
		carts:     make(map[string]*models.Cart),
		tokenSeq:  tokenMin,
	}
}

// ---------- Menu catalog ----------

// AddMenuItem registers a catalog entry. Items are append-only; the
// catalog is never mutated after startup.
func (s *Store) AddMenuItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.menuIndex[item.ID]; exists {
		return
	}
	s.menuIndex[item.ID] = len(s.menu)
	s.menu = append(s.menu, item)
}

// MenuItems returns the catalog in seed order.
func (s *Store) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

// MenuItem looks up a single catalog entry by id.
func (s *Store) MenuItem(id string) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.menuIndex[id]
	if !ok {
		return models.MenuItem{}, false
	}
	return s.menu[idx], true
}

// ---------- Session user and wallet ----------

// SetUser installs the session's user record.
func (s *Store) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// User returns the session user record.
func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}
	}
	return *s.user
}

// Recharge credits the wallet and appends a completed credit entry to
// the ledger. Amounts at or below zero are rejected with ErrInvalidAmount
// and leave the balance untouched.
func (s *Store) Recharge(amount float64, now time.Time) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.Transaction{}, ErrNotFound
	}
	s.user.WalletBalance += amount
	txn := models.Transaction{
		ID:          "TXN-" + uuid.NewString()[:8],
		Type:        models.TransactionCredit,
		Amount:      amount,
		Description: "Wallet recharge",
		Date:        now,
		Status:      models.TransactionCompleted,
	}
	s.transactions = append(s.transactions, txn)
	return txn, nil
}

// AddTransaction appends a ledger entry. Used by seeding.
func (s *Store) AddTransaction(txn models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txn)
}

// Transactions returns the wallet ledger, newest first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ---------- Cart ----------

func (s *Store) cartFor(userID string) *models.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &models.Cart{UserID: userID}
		s.carts[userID] = cart
	}
	return cart
}

// Cart returns a copy of the user's cart.
func (s *Store) Cart(userID string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{UserID: userID}
	}
	out := *cart
	out.Items = make([]models.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}

// AddToCart puts one more unit of the item in the user's cart: an
// existing line is incremented by one, otherwise a new line is inserted
// with quantity one and a snapshot of the item's current price.
func (s *Store) AddToCart(userID, menuItemID string, now time.Time) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.menuIndex[menuItemID]
	if !ok {
		return models.CartItem{}, ErrUnknownItem
	}
	item := s.menu[idx]
	if !item.IsAvailable {
		return models.CartItem{}, ErrItemUnavailable
	}

	cart := s.cartFor(userID)
	cart.UpdatedAt = now
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == menuItemID {
			cart.Items[i].Quantity++
			cart.Items[i].AddedAt = now
			return cart.Items[i], nil
		}
	}
	line := models.CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		IsVeg:      item.IsVeg,
		Quantity:   1,
		AddedAt:    now,
	}
	cart.Items = append(cart.Items, line)
	return line, nil
}

// RemoveFromCart takes one unit of the item out of the cart. The line is
// deleted entirely when its quantity would drop below one. Removing an
// absent item reports ErrNotFound.
func (s *Store) RemoveFromCart(userID, menuItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].MenuItemID != menuItemID {
			continue
		}
		if cart.Items[i].Quantity > 1 {
			cart.Items[i].Quantity--
		} else {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		}
		return nil
	}
	return ErrNotFound
}

// SetCustomization attaches or overwrites the free-text note on a line.
func (s *Store) SetCustomization(userID, menuItemID, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == menuItemID {
			cart.Items[i].Customization = note
			return nil
		}
	}
	return ErrNotFound
}

// ClearCart empties the user's cart.
func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[userID]; ok {
		cart.Items = nil
	}
}

// ---------- Order placement ----------

// PlaceOrder converts the user's cart into an immutable order. It fails
// with ErrEmptyCart on an empty cart and ErrInsufficientBalance when the
// cart total exceeds the wallet balance; on failure neither cart nor
// wallet changes. On success the cart lines and their current prices are
// frozen into the order, the cart is cleared, and the order joins the
// shared list with status placed.
//
// The wallet balance is checked but not debited here; spends are
// reconciled against the ledger separately.
//
// This is the only place an Order is created.
func (s *Store) PlaceOrder(userID, userName string, now time.Time) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok || len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	total := cart.Total()
	if s.user != nil && s.user.ID == userID && total > s.user.WalletBalance {
		return models.Order{}, ErrInsufficientBalance
	}

	token, err := s.nextToken()
	if err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			MenuItemID:     line.MenuItemID,
			Name:           line.Name,
			PriceAtTime:    line.Price,
			Quantity:       line.Quantity,
			Customizations: line.Customization,
		})
	}

	id := generateOrderID(now)
	order := &models.Order{
		ID:          id,
		TokenNumber: token,
		UserID:      userID,
		UserName:    userName,
		Items:       items,
		TotalAmount: total,
		Status:      models.OrderStatusPlaced,
		OrderTime:   now,
		QRCode:      qrPayload(id, token),
		MealType:    mealTypeFor(now),
	}
	s.orders = append(s.orders, order)
	cart.Items = nil
	return cloneOrder(order), nil
}

// generateOrderID builds a unique order reference, e.g.
// 20250115123000-1a2b3c4d.
func generateOrderID(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// qrPayload is the opaque pickup-verification string encoded into the
// order's QR placeholder. Display-only, not cryptographically verified.
func qrPayload(orderID string, token int) string {
	return fmt.Sprintf("NSUTcater-Order-%s-Token-%d", orderID, token)
}

// mealTypeFor buckets an order into the canteen's meal windows.
func mealTypeFor(now time.Time) models.MealType {
	switch hour := now.Hour(); {
	case hour < 11:
		return models.MealBreakfast
	case hour < 17:
		return models.MealLunch
	default:
		return models.MealDinner
	}
}

// nextToken hands out the next counter token that no non-delivered order
// is holding, wrapping around in [tokenMin, tokenMax]. Caller holds the lock.
func (s *Store) nextToken() (int, error) {
	inUse := make(map[int]bool)
	for _, o := range s.orders {
		if o.Status != models.OrderStatusDelivered {
			inUse[o.TokenNumber] = true
		}
	}
	span := tokenMax - tokenMin + 1
	for i := 0; i < span; i++ {
		candidate := tokenMin + (s.tokenSeq-tokenMin+i)%span
		if !inUse[candidate] {
			s.tokenSeq = candidate + 1
			return candidate, nil
		}
	}
	return 0, ErrTokenSpaceExhausted
}

// SeedOrder inserts a pre-built order, keeping the token sequence ahead
// of it. Seeding only; placement goes through PlaceOrder.
func (s *Store) SeedOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := cloneOrder(&order)
	s.orders = append(s.orders, &o)
	if order.TokenNumber >= s.tokenSeq {
		s.tokenSeq = order.TokenNumber + 1
	}
}

// ---------- Order queries ----------

func cloneOrder(o *models.Order) models.Order {
	out := *o
	out.Items = make([]models.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	if o.PickupTime != nil {
		t := *o.PickupTime
		out.PickupTime = &t
	}
	return out
}

// Orders returns every order, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderTime.After(out[j].OrderTime)
	})
	return out
}

// OrdersByUser returns a user's orders, newest first.
func (s *Store) OrdersByUser(userID string) []models.Order {
	all := s.Orders()
	out := all[:0]
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// OrdersByStatus is a pure filter over the shared order list, recomputed
// on every read. The kitchen queues are built from it.
func (s *Store) OrdersByStatus(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// Order looks up one order by id.
func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.findOrder(id)
	if o == nil {
		return models.Order{}, false
	}
	return cloneOrder(o), true
}

func (s *Store) findOrder(id string) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// ---------- Status pipeline ----------

// AdvanceOrder moves an order one step along the pipeline. Only the
// immediate successor of the current status is accepted; anything else
// is ErrInvalidTransition. Entering ready stamps PickupTime, exactly
// once.
func (s *Store) AdvanceOrder(orderID string, target models.OrderStatus, now time.Time) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.findOrder(orderID)
	if o == nil {
		return models.Order{}, ErrNotFound
	}
	next, ok := o.Status.NextStatus()
	if !ok || next != target {
		return models.Order{}, ErrInvalidTransition
	}
	o.Status = target
	if target == models.OrderStatusReady && o.PickupTime == nil {
		t := now
		o.PickupTime = &t
	}
	return cloneOrder(o), nil
}

// RateOrder records a 1-5 star rating, once per order.
func (s *Store) RateOrder(orderID string, rating int) (models.Order, error) {
	if rating < 1 || rating > 5 {
		return models.Order{}, ErrInvalidRating
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.findOrder(orderID)
	if o == nil {
		return models.Order{}, ErrNotFound
	}
	if o.Rating != 0 {
		return models.Order{}, ErrAlreadyRated
	}
	o.Rating = rating
	return cloneOrder(o), nil
}

// ---------- Kitchen stats ----------

// KitchenStats is the staff dashboard summary, recomputed on demand.
type KitchenStats struct {
	TotalOrders     int     `json:"total_orders"`
	ActiveOrders    int     `json:"active_orders"` // placed + preparing
	ReadyOrders     int     `json:"ready_orders"`
	CompletedOrders int     `json:"completed_orders"`
	Revenue         float64 `json:"revenue"`
	AvgPrepMinutes  int     `json:"avg_prep_minutes"`
}

// Default shown before any order has completed the kitchen leg.
const defaultAvgPrepMinutes = 18

// Stats summarizes today's kitchen activity. Average prep time is the
// mean placed-to-pickup span over orders that have reached the counter,
// falling back to a nominal figure when none have.
func (s *Store) Stats() KitchenStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats KitchenStats
	var prepTotal time.Duration
	var prepCount int
	for _, o := range s.orders {
		stats.TotalOrders++
		stats.Revenue += o.TotalAmount
		switch o.Status {
		case models.OrderStatusPlaced, models.OrderStatusPreparing:
			stats.ActiveOrders++
		case models.OrderStatusReady:
			stats.ReadyOrders++
		case models.OrderStatusDelivered:
			stats.CompletedOrders++
		}
		if o.PickupTime != nil {
			prepTotal += o.PickupTime.Sub(o.OrderTime)
			prepCount++
		}
	}
	if prepCount > 0 {
		stats.AvgPrepMinutes = int(prepTotal.Minutes()) / prepCount
	} else {
		stats.AvgPrepMinutes = defaultAvgPrepMinutes
	}
	return stats
}

// TotalsByType sums completed ledger entries of the given type.
func (s *Store) TotalsByType(t models.TransactionType) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, txn := range s.transactions {
		if txn.Type == t && txn.Status == models.TransactionCompleted {
			total += txn.Amount
		}
	}
	return total
}
