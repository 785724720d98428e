package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"booklending/model"
	authsvc "booklending/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/staff/register
func (h *Controller) Register(c echo.Context) error {
	var req model.RegisterStaffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	st, token, err := h.Svc.Register(c.Request().Context(), req)
	switch {
	case errors.Is(err, authsvc.ErrEmailTaken), errors.Is(err, authsvc.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	case errors.Is(err, authsvc.ErrBadInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	case err != nil:
		h.Log.Error("staff register error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"staff": st, "token": token})
}

// POST /v1/staff/login
func (h *Controller) Login(c echo.Context) error {
	var req model.LoginStaffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	st, token, err := h.Svc.Login(c.Request().Context(), req)
	switch {
	case errors.Is(err, authsvc.ErrInvalidCreds):
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	case errors.Is(err, authsvc.ErrBadInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	case err != nil:
		h.Log.Error("staff login error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"staff": st, "token": token})
}
