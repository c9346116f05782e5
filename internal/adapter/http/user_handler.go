package http

import (
	"net/http"

	"loanlink-backend/internal/adapter/middleware"
	userDomain "loanlink-backend/internal/domain/user"
	userUC "loanlink-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *userUC.Usecase }

func NewUserHandler(uc *userUC.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

// Register is the registerIfAbsent entry point: the second call with a known
// email returns 200 with the stored record instead of creating a duplicate.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, existed, err := h.uc.Register(c.Request().Context(), userUC.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	if existed {
		return c.JSON(http.StatusOK, map[string]any{"message": "user already exists", "user": dto})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) List(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), userUC.ListInput{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 12),
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) Me(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type setRoleReq struct {
	Role string `json:"role" validate:"required,role"`
}

func (h *UserHandler) SetRole(c echo.Context) error {
	userID := c.Param("id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	var req setRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	if err := h.uc.SetRole(c.Request().Context(), userID, userDomain.Role(req.Role)); err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

type setStatusReq struct {
	Status string `json:"status" validate:"required,userstatus"`
	Reason string `json:"reason"`
}

func (h *UserHandler) SetStatus(c echo.Context) error {
	userID := c.Param("id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	if err := h.uc.SetStatus(c.Request().Context(), userID, userDomain.Status(req.Status), req.Reason); err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

type updateProfileReq struct {
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

// UpdateProfile is self-service: the target is always the authenticated
// subject, never a caller-supplied email.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), middleware.Email(c), req.Name, req.PhotoURL); err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}
