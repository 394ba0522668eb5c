package controller

import (
	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/service"
	"github.com/arkanadhi/lokapasar/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}
	e.POST("/orders/checkout", c.Checkout, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn)
	e.GET("/orders/:id", c.GetOrderByID, isLoggedIn)
}

func (c *OrderController) Checkout(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.Checkout(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	filter := dto.Filter{}
	err = e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
	}

	resp, err := c.service.GetOrders(e.Request().Context(), userID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetOrderByID(e.Request().Context(), userID, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
