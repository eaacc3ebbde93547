package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/badgeforge/issuer-api/internal/api/metrics"
	"github.com/badgeforge/issuer-api/internal/core/ports"
)

// AssertionHandler handles HTTP requests for awarded badges. Routes exist at
// the top level (/v2/assertions) and nested under a badge class
// (/v2/badgeclasses/:entityId/assertions); for nested routes the badge class
// path param becomes the context reference.
type AssertionHandler struct {
	service   ports.AssertionService
	publicURL string
}

func NewAssertionHandler(service ports.AssertionService, publicURL string) *AssertionHandler {
	return &AssertionHandler{service: service, publicURL: publicURL}
}

// Issue handles POST /v2/assertions and POST /v2/badgeclasses/:entityId/assertions.
//
// @Summary      Award a badge
// @Tags         assertions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      issueAssertionRequest  true  "Assertion details"
// @Success      201   {object}  assertionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /v2/assertions [post]
func (h *AssertionHandler) Issue(c echo.Context) error {
	var req issueAssertionRequest
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

	detail, err := h.service.IssueAssertion(c.Request().Context(),
		toIssueAssertionInput(req, c.Param("entityId"), claims.UserID))
	if err != nil {
		return err
	}

	metrics.AssertionsIssuedTotal.WithLabelValues(detail.Recipient.Type).Inc()
	return c.JSON(http.StatusCreated, toAssertionResponse(detail, h.publicURL))
}

// Get handles GET /v2/assertions/:entityId.
//
// @Summary      Get an assertion
// @Tags         assertions
// @Produce      json
// @Security     BearerAuth
// @Param        entityId  path      string  true  "Assertion entity ID"
// @Success      200       {object}  assertionResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v2/assertions/{entityId} [get]
func (h *AssertionHandler) Get(c echo.Context) error {
	detail, err := h.service.GetAssertion(c.Request().Context(), c.Param("entityId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssertionResponse(detail, h.publicURL))
}

// List handles GET /v2/assertions and GET /v2/badgeclasses/:entityId/assertions.
//
// @Summary      List assertions
// @Tags         assertions
// @Produce      json
// @Security     BearerAuth
// @Param        issuer  query     string  false  "Scope to one issuer"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listAssertionsResponse
// @Router       /v2/assertions [get]
func (h *AssertionHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListAssertions(c.Request().Context(), ports.ListAssertionsInput{
		BadgeClassID: c.Param("entityId"),
		IssuerID:     c.QueryParam("issuer"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListAssertionsResponse(result, h.publicURL))
}

// Update handles PUT /v2/assertions/:entityId. Assertions are write-once: the
// payload is validated for shape, then the stored record is returned
// unchanged.
//
// @Summary      Update an assertion (no-op)
// @Tags         assertions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entityId  path      string                  true  "Assertion entity ID"
// @Param        body      body      updateAssertionRequest  true  "Ignored payload"
// @Success      200       {object}  assertionResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v2/assertions/{entityId} [put]
func (h *AssertionHandler) Update(c echo.Context) error {
	var req updateAssertionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.UpdateAssertion(c.Request().Context(), c.Param("entityId"), toUpdateAssertionInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssertionResponse(detail, h.publicURL))
}

// Revoke handles DELETE /v2/assertions/:entityId.
//
// @Summary      Revoke an assertion
// @Tags         assertions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entityId  path      string                  true  "Assertion entity ID"
// @Param        body      body      revokeAssertionRequest  true  "Revocation reason"
// @Success      200       {object}  assertionResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v2/assertions/{entityId} [delete]
func (h *AssertionHandler) Revoke(c echo.Context) error {
	var req revokeAssertionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.RevokeAssertion(c.Request().Context(), c.Param("entityId"), req.RevocationReason)
	if err != nil {
		return err
	}

	metrics.AssertionsRevokedTotal.Inc()
	return c.JSON(http.StatusOK, toAssertionResponse(detail, h.publicURL))
}
