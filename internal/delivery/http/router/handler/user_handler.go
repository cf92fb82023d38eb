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

// UserHandler serves the authenticated account mutations under /api/users.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(profileUC usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{profileUC: profileUC}
}

// UpdateProfile handles PUT /api/users/:id.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), subject, usecase.UpdateProfileInput{
		TargetID: c.Param("id"),
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserSummary(user), "Profile updated successfully")
}

// ChangePassword handles PUT /api/users/change-password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	err := h.profileUC.ChangePassword(c.Request().Context(), subject, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// UpdateSettings handles PUT /api/users/settings.
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	user, err := h.profileUC.UpdateSettings(c.Request().Context(), subject, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Settings updated successfully")
}
