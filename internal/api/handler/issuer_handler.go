package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// IssuerHandler handles HTTP requests for issuer organizations.
type IssuerHandler struct {
	service   ports.IssuerService
	publicURL string
}

func NewIssuerHandler(service ports.IssuerService, publicURL string) *IssuerHandler {
	return &IssuerHandler{service: service, publicURL: publicURL}
}

// Create handles POST /v2/issuers.
//
// @Summary      Create an issuer
// @Tags         issuers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIssuerRequest  true  "Issuer details"
// @Success      201   {object}  issuerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /v2/issuers [post]
func (h *IssuerHandler) Create(c echo.Context) error {
	var req createIssuerRequest
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

	detail, err := h.service.CreateIssuer(c.Request().Context(), toCreateIssuerInput(req, claims.UserID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toIssuerResponse(detail, h.publicURL))
}

// Get handles GET /v2/issuers/:entityId.
//
// @Summary      Get an issuer
// @Tags         issuers
// @Produce      json
// @Security     BearerAuth
// @Param        entityId  path      string  true  "Issuer entity ID"
// @Success      200       {object}  issuerResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v2/issuers/{entityId} [get]
func (h *IssuerHandler) Get(c echo.Context) error {
	detail, err := h.service.GetIssuer(c.Request().Context(), c.Param("entityId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIssuerResponse(detail, h.publicURL))
}

// List handles GET /v2/issuers.
//
// @Summary      List issuers
// @Tags         issuers
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listIssuersResponse
// @Router       /v2/issuers [get]
func (h *IssuerHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListIssuers(c.Request().Context(), ports.ListIssuersInput{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListIssuersResponse(result, h.publicURL))
}

// Update handles PUT /v2/issuers/:entityId.
//
// @Summary      Update an issuer
// @Tags         issuers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entityId  path      string               true  "Issuer entity ID"
// @Param        body      body      updateIssuerRequest  true  "Issuer details"
// @Success      200       {object}  issuerResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v2/issuers/{entityId} [put]
func (h *IssuerHandler) Update(c echo.Context) error {
	var req updateIssuerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.UpdateIssuer(c.Request().Context(), c.Param("entityId"), toUpdateIssuerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIssuerResponse(detail, h.publicURL))
}
