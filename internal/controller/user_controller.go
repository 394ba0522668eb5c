package controller

import (
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/service"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/arkanadhi/lokapasar/pkg/response"
	"github.com/arkanadhi/lokapasar/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}
	e.POST("/users/register", c.AddUser)
	e.POST("/users/login", c.Login)
	e.GET("/users/profile", c.GetProfile, isLoggedIn)
	e.PUT("/users/profile", c.UpdateProfile, isLoggedIn)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
	}

	err = c.service.AddUser(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) GetProfile(e echo.Context) error {
	externalID, _, _ := utils.ExtractTokenUser(e)
	if externalID == "" {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	resp, err := c.service.GetProfile(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	externalID, _, _ := utils.ExtractTokenUser(e)
	if externalID == "" {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.UpdateProfileRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	err = c.service.UpdateProfile(e.Request().Context(), externalID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
