package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// AuthHandler handles login and the token-scoped profile read.
type AuthHandler struct {
	auth     ports.AuthService
	accounts ports.AccountService
}

func NewAuthHandler(auth ports.AuthService, accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{auth: auth, accounts: accounts}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
}

// Login handles POST /login.
//
// @Summary      Authenticate a restaurant account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  errorEnvelope
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, id, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respondOK(c, "authenticated", loginResponse{Token: token, ID: id})
}

// Me handles GET /me — the profile of the account the token belongs to.
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, _ := c.Get("account_id").(string)
	if accountID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	profile, err := h.accounts.GetByID(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return respondOK(c, "", profile)
}
