package book

import (
	"log/slog"
	"net/http"

	"booklending/model"
	"booklending/service/lending"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc lending.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/books  (staff)
func (h *Controller) Add(c echo.Context) error {
	var req AddBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	b := &model.Book{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		Price:           req.Price,
	}
	if !h.Svc.AddBook(c.Request().Context(), b) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "book rejected"})
	}
	return c.JSON(http.StatusCreated, b)
}

// DELETE /v1/books/:isbn  (staff)
func (h *Controller) Remove(c echo.Context) error {
	if !h.Svc.RemoveBook(c.Request().Context(), c.Param("isbn")) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "remove rejected"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /v1/books/:isbn
func (h *Controller) Detail(c echo.Context) error {
	b := h.Svc.FindByISBN(c.Request().Context(), c.Param("isbn"))
	if b == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, b)
}

// GET /v1/books?title= | ?author=
func (h *Controller) Search(c echo.Context) error {
	ctx := c.Request().Context()
	if title := c.QueryParam("title"); title != "" {
		return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.FindByTitle(ctx, title)})
	}
	if author := c.QueryParam("author"); author != "" {
		return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.FindByAuthor(ctx, author)})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": []model.Book{}})
}

// GET /v1/books/:isbn/availability
func (h *Controller) Availability(c echo.Context) error {
	ctx := c.Request().Context()
	isbn := c.Param("isbn")
	return c.JSON(http.StatusOK, echo.Map{
		"isbn":      isbn,
		"available": h.Svc.IsAvailable(ctx, isbn),
		"count":     h.Svc.AvailableCount(ctx, isbn),
	})
}
