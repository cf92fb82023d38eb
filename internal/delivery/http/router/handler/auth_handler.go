// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/delivery/http/response"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/errors"
	"authcore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves signup, login and the current-user lookup.
type AuthHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(userUC usecase.UserUsecase, profileUC usecase.ProfileUsecase) *AuthHandler {
	return &AuthHandler{
		userUC:    userUC,
		profileUC: profileUC,
	}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	output, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithToken(c, output.Token, toUserSummary(output.User))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	output, err := h.userUC.Authenticate(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithToken(c, output.Token, toUserSummary(output.User))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	user, err := h.profileUC.GetCurrentUser(c.Request().Context(), subject)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}
