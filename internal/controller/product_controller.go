package controller

import (
	"bytes"
	"net/http"

	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/service"
	"github.com/arkanadhi/lokapasar/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetAvailableProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/products/images/:id", c.GetImage)
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.GET("/sellers/products", c.GetSellerProducts, isLoggedIn)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn)
	e.POST("/products/bulk-delete", c.BulkDeleteProducts, isLoggedIn)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	sellerID, err := requireRole(e, domain.RoleSeller)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	// The image is optional; products without one get the placeholder.
	image, err := e.FormFile("image")
	if err != nil {
		image = nil
	}

	resp, err := c.service.AddProduct(e.Request().Context(), sellerID, payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	resp, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetAvailableProducts(e echo.Context) error {
	filter := dto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetAvailableProducts").Msg("")
	}

	resp, err := c.service.GetAvailableProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetSellerProducts(e echo.Context) error {
	sellerID, err := requireRole(e, domain.RoleSeller)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	filter := dto.Filter{}
	err = e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSellerProducts").Msg("")
	}

	resp, err := c.service.GetSellerProducts(e.Request().Context(), sellerID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	sellerID, err := requireRole(e, domain.RoleSeller)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	payload.ID = e.Param("id")

	image, err := e.FormFile("image")
	if err != nil {
		image = nil
	}

	err = c.service.UpdateProduct(e.Request().Context(), sellerID, payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	sellerID, err := requireRole(e, domain.RoleSeller)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.service.DeleteProduct(e.Request().Context(), sellerID, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) BulkDeleteProducts(e echo.Context) error {
	sellerID, err := requireRole(e, domain.RoleSeller)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.BulkDeleteRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "BulkDeleteProducts").Msg("")
	}

	resp, err := c.service.BulkDeleteProducts(e.Request().Context(), sellerID, payload.ProductIDs)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetImage(e echo.Context) error {
	var buf bytes.Buffer

	err := c.service.GetImage(e.Request().Context(), e.Param("id"), &buf)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.Blob(http.StatusOK, "application/octet-stream", buf.Bytes())
}
