package controller

import (
	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/service"
	"github.com/arkanadhi/lokapasar/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Group, service service.CartService, isLoggedIn echo.MiddlewareFunc) {
	c := CartController{
		service: service,
	}
	e.GET("/carts", c.GetCart, isLoggedIn)
	e.GET("/carts/count", c.GetCartItemCount, isLoggedIn)
	e.POST("/carts/items", c.AddProductToCart, isLoggedIn)
	e.PUT("/carts/items/:productId", c.SetCartItemQuantity, isLoggedIn)
	e.DELETE("/carts/items/:productId", c.RemoveCartItem, isLoggedIn)
	e.DELETE("/carts", c.ClearCart, isLoggedIn)
}

func (c *CartController) AddProductToCart(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.CartRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductToCart").Msg("")
	}

	err = c.service.AddProductToCart(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) SetCartItemQuantity(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.CartQuantityRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SetCartItemQuantity").Msg("")
	}

	err = c.service.SetCartItemQuantity(e.Request().Context(), userID, e.Param("productId"), payload.Quantity)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) RemoveCartItem(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.service.RemoveCartItem(e.Request().Context(), userID, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) ClearCart(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.service.ClearCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) GetCart(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) GetCartItemCount(e echo.Context) error {
	userID, err := requireRole(e, domain.RoleCustomer)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	count := c.service.GetCartItemCount(e.Request().Context(), userID)

	return response.WriteSuccessResponse(e, "", dto.CartCountResponse{Count: count})
}
