package http

import (
	"net/http"

	"loanlink-backend/internal/adapter/middleware"
	userDomain "loanlink-backend/internal/domain/user"
	loanUC "loanlink-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Title          string  `json:"title" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	Description    string  `json:"description"`
	MinAmount      float64 `json:"min_amount" validate:"gte=0,dec2"`
	MaxAmount      float64 `json:"max_amount" validate:"gte=0,dec2"`
	InterestRate   float64 `json:"interest_rate" validate:"gte=0"`
	TermMonths     int     `json:"term_months" validate:"gte=0"`
	ApplicationFee float64 `json:"application_fee" validate:"gte=0,dec2"`
	ShowOnHome     bool    `json:"show_on_home"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), middleware.Email(c), loanUC.CreateInput{
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		MinAmount:      req.MinAmount,
		MaxAmount:      req.MaxAmount,
		InterestRate:   req.InterestRate,
		TermMonths:     req.TermMonths,
		ApplicationFee: req.ApplicationFee,
		ShowOnHome:     req.ShowOnHome,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// List serves the public catalog: ?page=&limit=&search=&category=, with the
// {total, page, limit, data} envelope.
func (h *LoanHandler) List(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), loanUC.ListInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", loanUC.DefaultPageSize),
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) Featured(c echo.Context) error {
	loans, err := h.uc.Featured(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Update(c echo.Context) error {
	var req loanUC.UpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("id"),
		middleware.Email(c), userDomain.Role(middleware.Role(c)), req)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	err := h.uc.Delete(c.Request().Context(), c.Param("id"),
		middleware.Email(c), userDomain.Role(middleware.Role(c)))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *LoanHandler) ToggleHome(c echo.Context) error {
	dto, err := h.uc.ToggleHome(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
