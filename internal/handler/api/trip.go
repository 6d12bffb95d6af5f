package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "tripflow/internal/handler/dto/request"
	resdto "tripflow/internal/handler/dto/response"
	"tripflow/internal/handler/httperr"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	tripFlow usecase.TripFlowUseCase
}

func NewTripHandler(tripFlow usecase.TripFlowUseCase) *TripHandler {
	return &TripHandler{tripFlow: tripFlow}
}

// @Summary Resolve trip offers
// @Description Fetch the trip from the marketplace, resolve every RFQ's lifts into priced offers and update the workflow session
// @Tags trips
// @Produce json
// @Param id path string true "Trip identifier (bare or atrip-prefixed)"
// @Success 200 {object} resdto.ResolveTripResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /trips/{id}/resolve [post]
func (h *TripHandler) ResolveTripOffers(c *gin.Context) {
	tripID, ok := h.tripID(c)
	if !ok {
		return
	}

	result, err := h.tripFlow.ResolveTripOffers(c.Request.Context(), tripID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResolveResult(result))
}

// @Summary Get workflow state
// @Description Read-only view of the trip's booking workflow session
// @Tags trips
// @Produce json
// @Param id path string true "Trip identifier"
// @Success 200 {object} resdto.TripSessionResponse
// @Failure 404 {object} httperr.Response
// @Router /trips/{id}/workflow [get]
func (h *TripHandler) GetWorkflowState(c *gin.Context) {
	tripID, ok := h.tripID(c)
	if !ok {
		return
	}

	session, err := h.tripFlow.GetWorkflowState(c.Request.Context(), tripID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTripSession(session))
}

// @Summary Select an offer
// @Description Record the customer's chosen offer and advance the workflow to selection_made
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip identifier"
// @Param request body reqdto.SelectOfferRequest true "Selection request"
// @Success 200 {object} resdto.TripSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /trips/{id}/selection [post]
func (h *TripHandler) SelectOffer(c *gin.Context) {
	tripID, ok := h.tripID(c)
	if !ok {
		return
	}

	var req reqdto.SelectOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	selector, selErr := req.Selector()
	if selErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, selErr, "Invalid request", nil)
		return
	}

	session, err := h.tripFlow.SelectOffer(c.Request.Context(), tripID, selector)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTripSession(session))
}

// @Summary Reset workflow
// @Description Administrative reset: the only transition allowed to move a session backward
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip identifier"
// @Param request body reqdto.ResetWorkflowRequest true "Target step"
// @Success 200 {object} resdto.TripSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /trips/{id}/reset [post]
func (h *TripHandler) ResetWorkflow(c *gin.Context) {
	tripID, ok := h.tripID(c)
	if !ok {
		return
	}

	var req reqdto.ResetWorkflowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	session, err := h.tripFlow.ResetWorkflow(c.Request.Context(), tripID, req.Step)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTripSession(session))
}

func (h *TripHandler) tripID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("empty trip id"), "Trip identifier required", nil)
		return "", false
	}
	return id, true
}

// Partial data never maps to a hard error here; only total resolution
// failure and authentication failure do.
func (h *TripHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTripNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Trip not found", nil)
	case errors.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Trip session not found", nil)
	case errors.Is(err, errs.ErrOfferNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
	case errors.Is(err, errs.ErrInvalidStep):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid workflow step", nil)
	case errors.Is(err, errs.ErrUpstreamAuth):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Marketplace authentication failed", nil)
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Marketplace unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
