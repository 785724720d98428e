package member

import (
	"errors"
	"log/slog"
	"net/http"

	"booklending/model"
	membersvc "booklending/service/member"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc membersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/members  (staff)
func (h *Controller) Register(c echo.Context) error {
	var req RegisterMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	m := model.NewMember(req.ID, req.Name, req.Email, req.Phone, model.MemberCategory(req.Category))
	if err := h.Svc.Register(c.Request().Context(), m); err != nil {
		if errors.Is(err, membersvc.ErrBadInput) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "invalid member"})
		}
		h.Log.Error("member register error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, m)
}

// GET /v1/members/:id
func (h *Controller) Get(c echo.Context) error {
	m, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, membersvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		h.Log.Error("member get error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}

// PATCH /v1/members/:id/active  (staff)
func (h *Controller) SetActive(c echo.Context) error {
	var req SetActiveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	if err := h.Svc.SetActive(c.Request().Context(), c.Param("id"), *req.Active); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
