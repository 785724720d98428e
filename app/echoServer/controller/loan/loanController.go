package loan

import (
	"log/slog"
	"net/http"

	memberrepo "booklending/repository/member"
	"booklending/service/lending"
	loansvc "booklending/service/loan"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Controller drives a borrow/return through the lending core, then persists
// the member's borrowed set and the loan record. The core decides; this layer
// only translates and stores.
type Controller struct {
	Lending lending.Service
	Loans   loansvc.Service
	Members memberrepo.Repo
	V       *validator.Validate
	Log     *slog.Logger
}

// POST /v1/loans/borrow
func (h *Controller) Borrow(c echo.Context) error {
	var req BorrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	ctx := c.Request().Context()
	m, err := h.Members.ByID(ctx, req.MemberID)
	if err != nil {
		h.Log.Error("member lookup error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if m == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "member not found"})
	}

	if !h.Lending.Borrow(ctx, req.ISBN, m) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "borrow rejected"})
	}

	if err := h.Members.SaveBorrowed(ctx, m); err != nil {
		h.Log.Error("save borrowed set error", "member", m.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	l, err := h.Loans.Checkout(ctx, m.ID, req.ISBN, req.PeriodDays)
	if err != nil {
		h.Log.Error("loan checkout error", "member", m.ID, "isbn", req.ISBN, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, l)
}

// POST /v1/loans/return
func (h *Controller) Return(c echo.Context) error {
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	ctx := c.Request().Context()
	m, err := h.Members.ByID(ctx, req.MemberID)
	if err != nil {
		h.Log.Error("member lookup error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if m == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "member not found"})
	}

	if !h.Lending.Return(ctx, req.ISBN, m) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "return rejected"})
	}

	if err := h.Members.SaveBorrowed(ctx, m); err != nil {
		h.Log.Error("save borrowed set error", "member", m.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	l, err := h.Loans.CloseLoan(ctx, m.ID, req.ISBN)
	if err != nil {
		if loansvc.Code(err) == loansvc.ErrNoOpenLoan {
			// Core accepted the return but no ledger row existed; report the
			// return as done without loan detail.
			return c.NoContent(http.StatusNoContent)
		}
		h.Log.Error("loan close error", "member", m.ID, "isbn", req.ISBN, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, l)
}

// GET /v1/members/:id/loans
func (h *Controller) History(c echo.Context) error {
	rows, err := h.Loans.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.Log.Error("loan history error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/members/:id/fine
func (h *Controller) Fine(c echo.Context) error {
	amount, err := h.Loans.OutstandingFine(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.Log.Error("fine error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"member_id": c.Param("id"), "fine": amount})
}
