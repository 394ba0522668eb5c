package service

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"

	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductRepository struct {
	mu           sync.Mutex
	products     map[primitive.ObjectID]domain.Product
	decrements   []domain.OrderItem
	decrementErr error
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[primitive.ObjectID]domain.Product{}}
}

func (f *fakeProductRepository) seed(p domain.Product) domain.Product {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products[p.ID] = p
	return p
}

func (f *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data.ID = primitive.NewObjectID()
	f.products[data.ID] = data
	return data.ID, nil
}

func (f *fakeProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, errs.ErrProductNotFound
	}
	product, ok := f.products[productID]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepository) GetProductsBySeller(ctx context.Context, sellerID string, filter dto.Filter) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var data []domain.Product
	for _, product := range f.products {
		if product.SellerID != sellerID {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		data = append(data, product)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Name < data[j].Name })
	return data, nil
}

func (f *fakeProductRepository) GetAvailableProducts(ctx context.Context, filter dto.Filter) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var data []domain.Product
	for _, product := range f.products {
		if product.Stock <= 0 {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		data = append(data, product)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Name < data[j].Name })
	return data, nil
}

func (f *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[data.ID]; !ok {
		return errs.ErrProductNotFound
	}
	f.products[data.ID] = data
	return nil
}

func (f *fakeProductRepository) DeleteProduct(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}
	if _, ok := f.products[productID]; !ok {
		return errs.ErrProductNotFound
	}
	delete(f.products, productID)
	return nil
}

func (f *fakeProductRepository) DecrementStocks(ctx context.Context, items []domain.OrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.decrementErr != nil {
		return f.decrementErr
	}
	for _, item := range items {
		product, ok := f.products[item.ProductID]
		if !ok || product.Stock < item.Quantity {
			return errs.ErrConflict
		}
	}
	for _, item := range items {
		product := f.products[item.ProductID]
		product.Stock -= item.Quantity
		f.products[item.ProductID] = product
	}
	f.decrements = append(f.decrements, items...)
	return nil
}

type fakeCartRepository struct {
	mu       sync.Mutex
	items    []domain.CartItem
	countErr error
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{}
}

func (f *fakeCartRepository) seed(item domain.CartItem) domain.CartItem {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, item)
	return item
}

func (f *fakeCartRepository) GetCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var data []domain.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			data = append(data, item)
		}
	}
	return data, nil
}

func (f *fakeCartRepository) GetCartItemByProduct(ctx context.Context, userID string, productID primitive.ObjectID) (domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, errs.ErrNotFound
}

func (f *fakeCartRepository) AddCartItem(ctx context.Context, data domain.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data.ID = primitive.NewObjectID()
	f.items = append(f.items, data)
	return nil
}

func (f *fakeCartRepository) SetCartItemQuantity(ctx context.Context, userID string, productID primitive.ObjectID, quantity int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			f.items[i].Quantity = quantity
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeCartRepository) DeleteCartItem(ctx context.Context, userID string, productID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartRepository) ClearCart(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []domain.CartItem
	for _, item := range f.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartRepository) CountCartItems(ctx context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, item := range f.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCartRepository) DeleteStaleItems(ctx context.Context, olderThan int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []domain.CartItem
	var deleted int64
	for _, item := range f.items {
		if item.AddedAt < olderThan {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	f.items = kept
	return deleted, nil
}

type fakeOrderRepository struct {
	mu     sync.Mutex
	orders []domain.Order
	addErr error
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{}
}

func (f *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return primitive.NilObjectID, f.addErr
	}
	data.ID = primitive.NewObjectID()
	f.orders = append(f.orders, data)
	return data.ID, nil
}

func (f *fakeOrderRepository) GetOrdersByUser(ctx context.Context, userID string, filter dto.Filter) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var data []domain.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			data = append(data, order)
		}
	}
	sort.Slice(data, func(i, j int) bool { return data[i].CreatedAt > data[j].CreatedAt })
	return data, nil
}

func (f *fakeOrderRepository) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Order{}, errs.ErrNotFound
	}
	for _, order := range f.orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return domain.Order{}, errs.ErrNotFound
}

func (f *fakeOrderRepository) HandleTrx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users []domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{}
}

func (f *fakeUserRepository) seed(user domain.User) domain.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return user
}

func (f *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data.ID = primitive.NewObjectID()
	f.users = append(f.users, data)
	return data.ID, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, nil
}

func (f *fakeUserRepository) GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ExternalID == externalID {
			return user, nil
		}
	}
	return domain.User{}, errs.ErrAccountNotFound
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, user := range f.users {
		if user.ExternalID == data.ExternalID {
			f.users[i] = data
			return nil
		}
	}
	return errs.ErrAccountNotFound
}

type fakeImageRepository struct {
	mu        sync.Mutex
	images    map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeImageRepository() *fakeImageRepository {
	return &fakeImageRepository{images: map[string][]byte{}}
}

func (f *fakeImageRepository) UploadImage(ctx context.Context, filename string, source io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, source); err != nil {
		return "", err
	}
	url := "/api/v1/products/images/" + primitive.NewObjectID().Hex()
	f.images[url] = buf.Bytes()
	return url, nil
}

func (f *fakeImageRepository) DownloadImage(ctx context.Context, id string, target io.Writer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.images["/api/v1/products/images/"+id]
	if !ok {
		return errs.ErrNotFound
	}
	_, err := target.Write(data)
	return err
}

func (f *fakeImageRepository) DeleteImage(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	if _, ok := f.images[url]; !ok {
		return errs.ErrNotFound
	}
	delete(f.images, url)
	return nil
}
