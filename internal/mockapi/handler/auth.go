package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/movaro/console/internal/core/domain"
	"github.com/movaro/console/internal/core/token"
	"github.com/movaro/console/internal/mockapi/fixtures"
	"github.com/movaro/console/internal/mockapi/metrics"
)

// AuthHandler issues bearer tokens for the seeded demo accounts.
type AuthHandler struct {
	store  *fixtures.Store
	issuer *token.Issuer
	ttl    time.Duration
}

func NewAuthHandler(store *fixtures.Store, issuer *token.Issuer, ttl time.Duration) *AuthHandler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthHandler{store: store, issuer: issuer, ttl: ttl}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  publicUser `json:"user"`
}

type publicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.FindUserByEmail(req.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return domain.ErrInvalidCredentials
	}

	raw, err := h.issuer.Issue(token.Claims{
		SubjectID: user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(h.ttl),
	})
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token: raw,
		User:  publicUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}
