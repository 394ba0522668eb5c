package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arkanadhi/lokapasar/config"
	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/repository"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/arkanadhi/lokapasar/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"gopkg.in/gomail.v2"
)

type OrderServiceImpl struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	cartRepo      repository.CartRepository
	userRepo      repository.UserRepository
	config        *config.Config
	kafkaProducer *kafka.Conn
	cb            *gobreaker.CircuitBreaker[[]byte]
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, userRepo repository.UserRepository, config *config.Config, kafkaProducer *kafka.Conn, cb *gobreaker.CircuitBreaker[[]byte]) OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		cartRepo:      cartRepo,
		userRepo:      userRepo,
		config:        config,
		kafkaProducer: kafkaProducer,
		cb:            cb,
	}
}

// Checkout validates the cart read-only first, then commits the order, the
// grouped stock decrement and the cart clear inside one transaction. A
// validation failure leaves cart and stock untouched.
func (s *OrderServiceImpl) Checkout(ctx context.Context, userID string) (resp dto.OrderResponse, err error) {
	cartItems, err := s.cartRepo.GetCartItems(ctx, userID)
	if err != nil {
		return
	}

	if len(cartItems) == 0 {
		return resp, errs.ErrEmptyCart
	}

	orderNumber, err := uuid.NewV7()
	if err != nil {
		return resp, fmt.Errorf("error generating order number: %v", err)
	}

	orderItems := make([]domain.OrderItem, 0, len(cartItems))
	var totalAmount float64

	for _, item := range cartItems {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID.Hex())
		if err != nil {
			return resp, err
		}

		if product.Stock < item.Quantity {
			return resp, &errs.InsufficientStockError{
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   product.Stock,
			}
		}

		// Current price, not the snapshot cached on the cart line.
		subtotal := product.Price * float64(item.Quantity)
		totalAmount += subtotal

		orderItems = append(orderItems, domain.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductImageURL: product.ImageURL,
			Quantity:        item.Quantity,
			UnitPrice:       product.Price,
			Subtotal:        subtotal,
		})
	}

	order := domain.Order{
		OrderNumber: orderNumber.String(),
		UserID:      userID,
		Items:       orderItems,
		TotalAmount: totalAmount,
		Status:      domain.OrderStatusCompleted,
		CreatedAt:   time.Now().UnixMilli(),
	}

	err = s.orderRepo.HandleTrx(ctx, func(txCtx context.Context) error {
		orderID, err := s.orderRepo.AddOrder(txCtx, order)
		if err != nil {
			return err
		}

		order.ID = orderID

		if err := s.productRepo.DecrementStocks(txCtx, orderItems); err != nil {
			return err
		}

		return s.cartRepo.ClearCart(txCtx, userID)
	})

	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Checkout").Msg("")
		return resp, errs.ErrOrderPersistence
	}

	s.publishEvent(ctx, "order_created", dto.KafkaOrderPayload{
		OrderID:     order.ID.Hex(),
		OrderNumber: order.OrderNumber,
		UserID:      userID,
		TotalAmount: totalAmount,
	})

	s.sendConfirmationEmail(ctx, userID, order)

	return toOrderResponse(order), nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, userID string, filter dto.Filter) (resp []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrdersByUser(ctx, userID, filter)
	if err != nil {
		return
	}

	resp = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}

	return resp, nil
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, userID string, orderID string) (resp dto.OrderResponse, err error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if order.UserID != userID {
		return resp, errs.ErrUnauthorized
	}

	return toOrderResponse(order), nil
}

func (s *OrderServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
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

func (s *OrderServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

// Best-effort: a failed mail never fails the checkout.
func (s *OrderServiceImpl) sendConfirmationEmail(ctx context.Context, userID string, order domain.Order) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	user, err := s.userRepo.GetUserByExternalID(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "sendConfirmationEmail").Msg("")
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", user.Email)
	message.SetHeader("Subject", fmt.Sprintf("Order %s confirmed", order.OrderNumber))
	message.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYour order %s totalling %.2f has been completed.\n\nThank you for shopping with us.", user.Name, order.OrderNumber, order.TotalAmount))

	err = utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "sendConfirmationEmail").Msg("")
	}
}

func toOrderResponse(order domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:       item.ProductID.Hex(),
			ProductName:     item.ProductName,
			ProductImageURL: item.ProductImageURL,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			Subtotal:        item.Subtotal,
		})
	}

	return dto.OrderResponse{
		ID:          order.ID.Hex(),
		OrderNumber: order.OrderNumber,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
}
