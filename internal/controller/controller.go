package controller

import (
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/arkanadhi/lokapasar/pkg/utils"
	"github.com/labstack/echo/v4"
)

// requireRole gates an operation on the caller's role claim. Customer and
// seller capabilities are mutually exclusive.
func requireRole(c echo.Context, role string) (externalID string, err error) {
	externalID, _, userRole := utils.ExtractTokenUser(c)
	if externalID == "" {
		return "", errs.ErrNotLoggedIn
	}

	if userRole != role {
		return "", errs.ErrUnauthorized
	}

	return externalID, nil
}
