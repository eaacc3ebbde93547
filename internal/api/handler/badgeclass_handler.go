package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// BadgeClassHandler handles HTTP requests for badge classes. Routes exist
// both at the top level (/v2/badgeclasses) and nested under an issuer
// (/v2/issuers/:entityId/badgeclasses); for nested routes the issuer path
// param becomes the context owner reference.
type BadgeClassHandler struct {
	service   ports.BadgeClassService
	publicURL string
}

func NewBadgeClassHandler(service ports.BadgeClassService, publicURL string) *BadgeClassHandler {
	return &BadgeClassHandler{service: service, publicURL: publicURL}
}

// Create handles POST /v2/badgeclasses and POST /v2/issuers/:entityId/badgeclasses.
//
// @Summary      Create a badge class
// @Tags         badgeclasses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBadgeClassRequest  true  "Badge class details"
// @Success      201   {object}  badgeClassResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /v2/badgeclasses [post]
func (h *BadgeClassHandler) Create(c echo.Context) error {
	var req createBadgeClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	// Empty for the top-level route; the issuer entity id for nested routes.
	contextIssuerID := c.Param("entityId")

	detail, err := h.service.CreateBadgeClass(c.Request().Context(),
		toCreateBadgeClassInput(req, contextIssuerID, claims.UserID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBadgeClassResponse(detail, h.publicURL))
}

// Get handles GET /v2/badgeclasses/:entityId.
//
// @Summary      Get a badge class
// @Tags         badgeclasses
// @Produce      json
// @Security     BearerAuth
// @Param        entityId  path      string  true  "Badge class entity ID"
// @Success      200       {object}  badgeClassResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v2/badgeclasses/{entityId} [get]
func (h *BadgeClassHandler) Get(c echo.Context) error {
	detail, err := h.service.GetBadgeClass(c.Request().Context(), c.Param("entityId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBadgeClassResponse(detail, h.publicURL))
}

// List handles GET /v2/badgeclasses and GET /v2/issuers/:entityId/badgeclasses.
//
// @Summary      List badge classes
// @Tags         badgeclasses
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listBadgeClassesResponse
// @Router       /v2/badgeclasses [get]
func (h *BadgeClassHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListBadgeClasses(c.Request().Context(), ports.ListBadgeClassesInput{
		IssuerID: c.Param("entityId"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListBadgeClassesResponse(result, h.publicURL))
}

// Update handles PUT /v2/badgeclasses/:entityId.
//
// @Summary      Update a badge class
// @Tags         badgeclasses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entityId  path      string                   true  "Badge class entity ID"
// @Param        body      body      updateBadgeClassRequest  true  "Badge class details"
// @Success      200       {object}  badgeClassResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v2/badgeclasses/{entityId} [put]
func (h *BadgeClassHandler) Update(c echo.Context) error {
	var req updateBadgeClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.UpdateBadgeClass(c.Request().Context(), c.Param("entityId"), toUpdateBadgeClassInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBadgeClassResponse(detail, h.publicURL))
}
