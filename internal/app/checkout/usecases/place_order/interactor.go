package place_order

import (
	"context"

	"go.uber.org/zap"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/cart/store"
	"github.com/murkotick/storefront-service/internal/app/checkout/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

// Interactor "places" an order: the form is checked, the cart is emptied and a
// static confirmation comes back. Nothing is charged or persisted.
type Interactor struct {
	Clock  clock.Clock
	Logger *zap.Logger
}

func NewInteractor(clk clock.Clock, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{Clock: clk, Logger: logger}
}

func (it *Interactor) Execute(ctx context.Context, cart *store.Store, form domain.OrderForm) (*domain.Confirmation, error) {
	// 1. Validate form
	if err := form.Validate(); err != nil {
		return nil, err
	}

	// 2. Refuse an empty cart without touching it
	if cart.Snapshot().IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	// 3. Take the lines and clear the cart in one step
	snap := cart.Drain()
	if snap.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	// 4. Build confirmation
	lines := make([]domain.OrderLine, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: l.ProductID(),
			Name:      l.Product().Name(),
			Quantity:  l.Quantity(),
			Size:      l.Size(),
			Color:     l.Color(),
			Subtotal:  l.Subtotal(),
		})
	}
	shipping := catalog.Zero()
	conf := &domain.Confirmation{
		OrderNumber: domain.OrderNumber,
		Lines:       lines,
		Subtotal:    snap.Total,
		Shipping:    shipping,
		Total:       snap.Total.Add(shipping),
		Payment:     form.Payment,
		Email:       form.Contact.Email,
		PlacedAt:    it.Clock.Now(),
	}

	it.Logger.Info("order placed",
		zap.String("order_number", conf.OrderNumber),
		zap.Int("lines", len(lines)),
		zap.Int64("total", conf.Total.Amount()),
		zap.String("payment", string(conf.Payment)))
	return conf, nil
}
