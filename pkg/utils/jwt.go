package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(externalID string, userName string, role string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["externalID"] = externalID
	claims["name"] = userName
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

func ExtractTokenUser(c echo.Context) (externalID string, name string, role string) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return "", "", ""
	}

	claims := user.Claims.(jwt.MapClaims)
	externalID, _ = claims["externalID"].(string)
	name, _ = claims["name"].(string)
	role, _ = claims["role"].(string)

	return externalID, name, role
}
