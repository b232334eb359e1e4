package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
)

type memCartRepo struct {
	items []*entity.CartItem
}

func newMemCartRepo() *memCartRepo { return &memCartRepo{} }

func (m *memCartRepo) Upsert(item *entity.CartItem) error {
	for _, x := range m.items {
		if x.UserID == item.UserID && x.ProductID == item.ProductID {
			x.Quantity += item.Quantity
			x.UpdatedAt = time.Now()
			*item = *x
			return nil
		}
	}
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	m.items = append(m.items, &cp)
	return nil
}

func (m *memCartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, x := range m.items {
		if x.UserID == userID {
			cp := *x
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCartRepo) SetQuantity(userID, productID string, quantity int) (bool, error) {
	for _, x := range m.items {
		if x.UserID == userID && x.ProductID == productID {
			x.Quantity = quantity
			x.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (m *memCartRepo) Remove(userID, productID string) error {
	kept := m.items[:0]
	for _, x := range m.items {
		if x.UserID != userID || x.ProductID != productID {
			kept = append(kept, x)
		}
	}
	m.items = kept
	return nil
}

func newTestCartService(t *testing.T) (*CartService, *memProductRepo) {
	t.Helper()
	products := newMemProductRepo()
	return NewCartService(newMemCartRepo(), products, nil), products
}

func seedProduct(t *testing.T, products *memProductRepo, name string) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: 9.99}
	require.NoError(t, products.Create(p))
	return p
}

func TestCartAdd(t *testing.T) {
	svc, products := newTestCartService(t)
	ctx := context.Background()
	p := seedProduct(t, products, "Espresso Beans")
	uid := uuid.NewString()

	item, err := svc.Add(ctx, uid, p.ID, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 2, item.Quantity)

	// re-adding the same product merges into the existing line
	item, err = svc.Add(ctx, uid, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	list, err := svc.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Quantity)
}

func TestCartAddDefaultsQuantity(t *testing.T) {
	svc, products := newTestCartService(t)
	p := seedProduct(t, products, "Mug")

	item, err := svc.Add(context.Background(), uuid.NewString(), p.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc, _ := newTestCartService(t)
	_, err := svc.Add(context.Background(), uuid.NewString(), uuid.NewString(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartUpdateQuantity(t *testing.T) {
	svc, products := newTestCartService(t)
	ctx := context.Background()
	p := seedProduct(t, products, "Kettle")
	uid := uuid.NewString()

	_, err := svc.Add(ctx, uid, p.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, uid, p.ID, 7))
	list, err := svc.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 7, list[0].Quantity)

	// quantity zero removes the line
	require.NoError(t, svc.UpdateQuantity(ctx, uid, p.ID, 0))
	list, err = svc.List(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCartUpdateQuantityMissingLine(t *testing.T) {
	svc, products := newTestCartService(t)
	p := seedProduct(t, products, "Grinder")

	err := svc.UpdateQuantity(context.Background(), uuid.NewString(), p.ID, 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartRemoveIdempotent(t *testing.T) {
	svc, products := newTestCartService(t)
	ctx := context.Background()
	p := seedProduct(t, products, "Filter Papers")
	uid := uuid.NewString()

	_, err := svc.Add(ctx, uid, p.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, uid, p.ID))
	require.NoError(t, svc.Remove(ctx, uid, p.ID))

	list, err := svc.List(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCartIsolatedPerUser(t *testing.T) {
	svc, products := newTestCartService(t)
	ctx := context.Background()
	p := seedProduct(t, products, "Scale")
	alice, bob := uuid.NewString(), uuid.NewString()

	_, err := svc.Add(ctx, alice, p.ID, 1)
	require.NoError(t, err)

	list, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)
}
