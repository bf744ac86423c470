package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	mw "github.com/courtside/hoopsapi/middleware"
)

type signinRequest struct {
	Passphrase string `json:"passphrase"`
}

// Signin validates the admin passphrase against its bcrypt hash and returns
// a JWT token valid for 30 days. The passphrase gates the box-score entry
// surface only; it is a convenience latch, not a security boundary.
func (h *Handler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Passphrase == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "passphrase is required")
	}

	if err := bcrypt.CompareHashAndPassword(h.adminHash, []byte(req.Passphrase)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	claims := &mw.Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().AddDate(0, 0, 30)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.JWTKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"token": tokenString})
}
