package service

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"github.com/arkanadhi/lokapasar/config"
	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/repository"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

// PlaceholderImageURL is used when a seller creates a product without an
// image.
const PlaceholderImageURL = "/assets/images/product-placeholder.png"

type ProductServiceImpl struct {
	productRepo   repository.ProductRepository
	imageRepo     repository.ImageRepository
	config        config.Config
	kafkaProducer *kafka.Conn
	cb            *gobreaker.CircuitBreaker[[]byte]
}

func CreateProductService(productRepo repository.ProductRepository, imageRepo repository.ImageRepository, config config.Config, kafkaProducer *kafka.Conn, cb *gobreaker.CircuitBreaker[[]byte]) ProductService {
	return &ProductServiceImpl{
		productRepo:   productRepo,
		imageRepo:     imageRepo,
		config:        config,
		kafkaProducer: kafkaProducer,
		cb:            cb,
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, sellerID string, data dto.ProductRequest, image *multipart.FileHeader) (resp dto.ProductResponse, err error) {
	if !domain.IsValidCategory(data.Category) {
		return resp, errs.ErrInvalidCategory
	}

	if data.Price < 0 || data.Stock < 0 {
		return resp, errs.ErrClient
	}

	imageURL := PlaceholderImageURL
	if image != nil {
		imageURL, err = s.uploadImage(ctx, image)
		if err != nil {
			return
		}
	}

	product := domain.Product{
		SellerID:    sellerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    imageURL,
	}

	productID, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	resp = dto.ProductResponse{
		ID:          productID.Hex(),
		SellerID:    sellerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    imageURL,
	}

	s.publishEvent(ctx, "product_created", resp)

	return resp, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) GetSellerProducts(ctx context.Context, sellerID string, filter dto.Filter) (resp []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProductsBySeller(ctx, sellerID, filter)
	if err != nil {
		return
	}

	return toProductResponses(filterByName(products, filter.Search)), nil
}

func (s *ProductServiceImpl) GetAvailableProducts(ctx context.Context, filter dto.Filter) (resp []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetAvailableProducts(ctx, filter)
	if err != nil {
		return
	}

	return toProductResponses(filterByName(products, filter.Search)), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, sellerID string, data dto.ProductRequest, image *multipart.FileHeader) (err error) {
	if !domain.IsValidCategory(data.Category) {
		return errs.ErrInvalidCategory
	}

	if data.Price < 0 || data.Stock < 0 {
		return errs.ErrClient
	}

	existing, err := s.productRepo.GetProductByID(ctx, data.ID)
	if err != nil {
		return
	}

	if existing.SellerID != sellerID {
		return errs.ErrUnauthorized
	}

	imageURL := existing.ImageURL
	if image != nil {
		imageURL, err = s.uploadImage(ctx, image)
		if err != nil {
			return
		}

		s.deleteImageBestEffort(ctx, existing.ImageURL)
	}

	updated := domain.Product{
		ID:          existing.ID,
		SellerID:    existing.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    imageURL,
	}

	err = s.productRepo.UpdateProduct(ctx, updated)
	if err != nil {
		return
	}

	s.publishEvent(ctx, "product_updated", toProductResponse(updated))

	return nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, sellerID string, id string) (err error) {
	existing, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if existing.SellerID != sellerID {
		return errs.ErrUnauthorized
	}

	s.deleteImageBestEffort(ctx, existing.ImageURL)

	err = s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	s.publishEvent(ctx, "product_deleted", dto.ProductResponse{ID: id})

	return nil
}

// BulkDeleteProducts issues the deletes in parallel. They are independent
// writes: a partial failure leaves some products deleted and others not, and
// there is no rollback.
func (s *ProductServiceImpl) BulkDeleteProducts(ctx context.Context, sellerID string, ids []string) (resp dto.BulkDeleteResponse, err error) {
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			deleteErr := s.DeleteProduct(ctx, sellerID, id)

			mu.Lock()
			defer mu.Unlock()
			if deleteErr != nil {
				resp.Failed = append(resp.Failed, id)
			} else {
				resp.Deleted = append(resp.Deleted, id)
			}
		}(id)
	}

	wg.Wait()

	return resp, nil
}

func (s *ProductServiceImpl) GetImage(ctx context.Context, id string, target io.Writer) (err error) {
	return s.imageRepo.DownloadImage(ctx, id, target)
}

func (s *ProductServiceImpl) uploadImage(ctx context.Context, image *multipart.FileHeader) (url string, err error) {
	if contentType := image.Header.Get("Content-Type"); contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", errs.ErrNotAnImage
	}

	source, err := image.Open()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "uploadImage").Msg("")
		return "", errs.ErrInternalServer
	}
	defer source.Close()

	return s.imageRepo.UploadImage(ctx, image.Filename, source)
}

// A missing image is not an error worth failing the operation for; the
// placeholder is shared and never deleted.
func (s *ProductServiceImpl) deleteImageBestEffort(ctx context.Context, imageURL string) {
	if imageURL == "" || imageURL == PlaceholderImageURL {
		return
	}

	if err := s.imageRepo.DeleteImage(ctx, imageURL); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "deleteImageBestEffort").Msg("")
	}
}

func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.cb.Execute(func() ([]byte, error) {
			return nil, s.writeKafkaMessage(jsonMsg)
		})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msgf("failed to write Kafka message after %d attempts", maxRetries)
}

func (s *ProductServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID.Hex(),
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}
	return resp
}

// filterByName applies a case-insensitive substring match in memory. The
// backend only supports equality filters for this query shape.
func filterByName(products []domain.Product, search string) []domain.Product {
	if search == "" {
		return products
	}

	needle := strings.ToLower(search)
	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			filtered = append(filtered, product)
		}
	}

	return filtered
}
