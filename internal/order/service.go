package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"zaika/internal/ai"
	"zaika/internal/catalog"
	"zaika/internal/payment"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cart has no items")
	ErrNotOwner           = errors.New("order belongs to another user")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrStoreUnavailable   = errors.New("order store unavailable")
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = time.Minute
)

// CatalogSource is the one read the ordering flow needs from the catalog.
type CatalogSource interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

// Publisher emits order lifecycle events. Optional; nil disables it.
type Publisher interface {
	Publish(ctx context.Context, pattern string, data any) error
}

type Service struct {
	repo        Repository
	catalog     CatalogSource
	interpreter ai.OrderInterpreter
	gateway     payment.Gateway
	publisher   Publisher
	redisClient *redis.Client
}

func NewService(
	repo Repository,
	catalogSource CatalogSource,
	interpreter ai.OrderInterpreter,
	gateway payment.Gateway,
) *Service {
	return &Service{
		repo:        repo,
		catalog:     catalogSource,
		interpreter: interpreter,
		gateway:     gateway,
	}
}

func (s *Service) SetPublisher(p Publisher) {
	s.publisher = p
}

func (s *Service) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// --------------------------------------------------
// Interpret free text into a priced cart
// --------------------------------------------------

// InterpretOrder runs one interpreter call and resolves the result.
// An interpreter failure is terminal for the whole operation; unmatched
// item names are data in the returned cart, not errors.
func (s *Service) InterpretOrder(
	ctx context.Context,
	orderText string,
) (*ResolvedCart, error) {

	items, err := s.interpreter.InterpretOrder(ctx, orderText)
	if err != nil {
		return nil, err
	}

	products, err := s.listCatalog(ctx)
	if err != nil {
		return nil, err
	}

	cart := ResolveCart(products, items)
	return &cart, nil
}

// --------------------------------------------------
// Checkout (server-side re-pricing + payment intent)
// --------------------------------------------------

type CheckoutItem struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Checkout re-prices every line from the catalog (client prices are
// ignored), creates a payment intent for the total in minor units and
// persists a pending order carrying the client secret.
func (s *Service) Checkout(
	ctx context.Context,
	userID string,
	items []CheckoutItem,
	paymentMethod string,
) (*Order, error) {

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	products, err := s.listCatalog(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var (
		lines []CartLine
		total float64
	)

	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("unknown product: %s", item.ProductID)
		}

		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %s", ErrInvalidQuantity, item.ProductID)
		}

		lines = append(lines, CartLine{
			ProductID:       p.ID,
			Name:            p.Name,
			Quantity:        item.Quantity,
			UnitPrice:       p.Price,
			SpecialRequests: item.SpecialRequests,
			ImageURL:        p.ImageURL,
			AIHint:          p.AIHint,
		})

		total += float64(item.Quantity) * p.Price
	}

	amountMinor := int64(math.Round(total * 100))

	clientSecret, err := s.gateway.CreateIntent(ctx, amountMinor, "usd")
	if err != nil {
		return nil, err
	}

	o := &Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		Items:         lines,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		Status:        StatusPending,
		ClientSecret:  clientSecret,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return o, nil
}

// --------------------------------------------------
// Payment confirmation
// --------------------------------------------------

// ConfirmPayment records the status the client-side confirmation
// reported back. "succeeded" marks the order paid and publishes the
// paid event; "processing" marks it confirmed; anything else leaves the
// order pending for another attempt.
func (s *Service) ConfirmPayment(
	ctx context.Context,
	userID string,
	orderID string,
	status string,
) (*Order, error) {

	o, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if o.Status == StatusPaid || o.Status == StatusCancelled {
		return o, nil
	}

	switch status {
	case payment.StatusSucceeded:
		o.Status = StatusPaid
	case payment.StatusProcessing:
		o.Status = StatusConfirmed
	default:
		// requires_payment_method and the rest: stay pending
		return o, nil
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, o.Status); err != nil {
		return nil, storeErr(err)
	}

	if o.Status == StatusPaid {
		go s.publishPaid(context.Background(), o)
	}

	return o, nil
}

func (s *Service) CancelOrder(
	ctx context.Context,
	userID string,
	orderID string,
) (*Order, error) {

	o, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if o.Status != StatusPending && o.Status != StatusConfirmed {
		return nil, fmt.Errorf("cannot cancel a %s order", o.Status)
	}

	o.Status = StatusCancelled
	if err := s.repo.UpdateStatus(ctx, o.ID, StatusCancelled); err != nil {
		return nil, storeErr(err)
	}

	return o, nil
}

func (s *Service) GetOrder(
	ctx context.Context,
	userID string,
	orderID string,
) (*Order, error) {
	return s.ownedOrder(ctx, userID, orderID)
}

func (s *Service) ListOrders(
	ctx context.Context,
	userID string,
) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// --------------------------------------------------
// Internals
// --------------------------------------------------

func (s *Service) ownedOrder(
	ctx context.Context,
	userID string,
	orderID string,
) (*Order, error) {

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, storeErr(err)
	}

	if o.UserID != userID {
		return nil, ErrNotOwner
	}

	return o, nil
}

// storeErr keeps not-found distinct and folds everything else into the
// store-unavailable class so handlers never leak driver error text.
func storeErr(err error) error {
	if errors.Is(err, ErrOrderNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// listCatalog reads the product list through the optional redis cache.
func (s *Service) listCatalog(ctx context.Context) ([]catalog.Product, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var products []catalog.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if s.redisClient != nil && len(products) > 0 {
		if data, err := json.Marshal(products); err == nil {
			s.redisClient.Set(ctx, catalogCacheKey, data, catalogCacheTTL)
		}
	}

	return products, nil
}

func (s *Service) publishPaid(ctx context.Context, o *Order) {
	if s.publisher == nil {
		return
	}

	evt := map[string]any{
		"orderId":     o.ID,
		"userId":      o.UserID,
		"totalAmount": o.TotalAmount,
		"paidAt":      time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, "order.paid", evt); err != nil {
		log.Printf("failed to publish order.paid for %s: %v", o.ID, err)
	}
}
