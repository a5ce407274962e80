package handlers

import (
	"errors"
	"log"
	"net/http"

	request "mecanica_xpto_quotes/internal/adapter/http/dto/request"
	response "mecanica_xpto_quotes/internal/adapter/http/dto/response"
	"mecanica_xpto_quotes/internal/usecase"
	"mecanica_xpto_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidReplyPayload = pkg.NewDomainErrorSimple("INVALID_REPLY_INPUT", "Invalid supplier reply payload", http.StatusBadRequest)
)

// AmbiguousOfferDetails is returned with AMBIGUOUS_OFFER_NOT_RESOLVED so the
// operator can pick one of the offers.
type AmbiguousOfferDetails struct {
	SupplierID string                   `json:"supplier_id"`
	Offers     []response.OfferResponse `json:"offers"`
}

// QuoteHandler handles HTTP requests for supplier quote sessions.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	monitor usecase.IQuoteMonitor
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, monitor usecase.IQuoteMonitor) *QuoteHandler {
	return &QuoteHandler{usecase: uc, monitor: monitor}
}

// StartQuote godoc
// @Summary      Start a quote session
// @Description  Opens a supplier quote session for one part of an order. Without suppliers, the active supplier directory is used.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.StartQuoteRequest  true  "Quote request"
// @Success      201      {object}  response.QuoteSessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) StartQuote(c *gin.Context) {
	var payload request.StartQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	log.Printf("[quote][handler] start order_id=%s suppliers=%d", cmd.OrderID, len(cmd.Suppliers))
	created, err := h.usecase.Start(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteSession(created))
}

// GetCurrentByOrder godoc
// @Summary      Live projection of the current quote session of an order
// @Tags         quotes
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.QuoteProjectionResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /quotes/orders/{order_id} [get]
func (h *QuoteHandler) GetCurrentByOrder(c *gin.Context) {
	s, err := h.usecase.GetCurrentByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	p, err := h.monitor.Watch(c.Request.Context(), s.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjection(p))
}

// GetHistoryByOrder godoc
// @Summary      Settled quote sessions of an order
// @Description  Completed, cancelled and expired sessions, newest first.
// @Tags         quotes
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {array}   response.QuoteSessionResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /quotes/orders/{order_id}/history [get]
func (h *QuoteHandler) GetHistoryByOrder(c *gin.Context) {
	sessions, err := h.usecase.History(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteSessions(sessions))
}

// GetQuote godoc
// @Summary      Live projection of a quote session
// @Tags         quotes
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.QuoteProjectionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /quotes/{session_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	p, err := h.monitor.Watch(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjection(p))
}

// RefreshQuote godoc
// @Summary      Force a re-read of a quote session
// @Tags         quotes
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.QuoteProjectionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/refresh [post]
func (h *QuoteHandler) RefreshQuote(c *gin.Context) {
	p, err := h.monitor.Refresh(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjection(p))
}

// ListSupplierOffers godoc
// @Summary      Offers parsed from a supplier reply
// @Tags         quotes
// @Produce      json
// @Param        session_id   path      string  true  "Session ID"
// @Param        supplier_id  path      string  true  "Supplier ID"
// @Success      200          {array}   response.OfferResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/suppliers/{supplier_id}/offers [get]
func (h *QuoteHandler) ListSupplierOffers(c *gin.Context) {
	offers, err := h.usecase.Offers(c.Request.Context(), c.Param("session_id"), c.Param("supplier_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

// ApproveQuote godoc
// @Summary      Approve a supplier as the winner
// @Description  When the reply lists several offers, chosen_offer is required; otherwise 409 AMBIGUOUS_OFFER_NOT_RESOLVED is returned with the offers.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                       true  "Session ID"
// @Param        payload     body      request.ApproveQuoteRequest  true  "Approval"
// @Success      200         {object}  response.QuoteSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Failure      503         {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/approve [post]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.ApproveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	log.Printf("[quote][handler] approve start session_id=%s supplier_id=%s", sessionID, payload.SupplierID)
	approved, err := h.usecase.Approve(c.Request.Context(), sessionID, payload.SupplierID, payload.ResolveOffer())
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.refreshWatched(c, approved.ID)

	c.JSON(http.StatusOK, response.FromQuoteSession(approved))
}

// CancelQuote godoc
// @Summary      Cancel a quote session
// @Description  Idempotent: cancelling a cancelled session returns it unchanged.
// @Tags         quotes
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.QuoteSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/cancel [post]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[quote][handler] cancel start session_id=%s", sessionID)

	cancelled, err := h.usecase.Cancel(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.refreshWatched(c, cancelled.ID)

	c.JSON(http.StatusOK, response.FromQuoteSession(cancelled))
}

// RecordSupplierReply godoc
// @Summary      Inbound supplier reply
// @Description  Stores a supplier's free-text answer in its slot; a later reply replaces an earlier one.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                        true  "Session ID"
// @Param        payload     body      request.SupplierReplyRequest  true  "Reply"
// @Success      200         {object}  response.SupplierReplyResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/replies [post]
func (h *QuoteHandler) RecordSupplierReply(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.SupplierReplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReplyPayload.HTTPStatus, errInvalidReplyPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.RecordReply(c.Request.Context(), sessionID, payload.SupplierID, payload.Message, payload.ResolveReceivedAt())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplierReply(saved))
}

// refreshWatched pushes a committed change into the live projection. The
// write already succeeded, so a failed refresh is only logged.
func (h *QuoteHandler) refreshWatched(c *gin.Context, sessionID string) {
	if _, err := h.monitor.Refresh(c.Request.Context(), sessionID); err != nil {
		log.Printf("[quote][handler] refresh after write failed session_id=%s err=%v", sessionID, err)
	}
}

func (h *QuoteHandler) writeError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[quote][handler] request failed path=%s err=%v", c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	var ambiguous *usecase.AmbiguousOfferError
	switch {
	case errors.As(err, &ambiguous):
		return pkg.NewDomainErrorSimple("AMBIGUOUS_OFFER_NOT_RESOLVED", "Supplier reply has several offers; choose one", http.StatusConflict).
			WithDetails(AmbiguousOfferDetails{SupplierID: ambiguous.SupplierID, Offers: response.FromOffers(ambiguous.Offers)})
	case errors.Is(err, usecase.ErrAmbiguousOfferNotResolved):
		return pkg.NewDomainErrorSimple("AMBIGUOUS_OFFER_NOT_RESOLVED", "Supplier reply has several offers; choose one", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPartDescription),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidSupplierID),
		errors.Is(err, usecase.ErrInvalidReplyMessage),
		errors.Is(err, usecase.ErrTooManySuppliers):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoSuppliers):
		return pkg.NewDomainErrorSimple("NO_SUPPLIERS", "No suppliers available to quote", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_SESSION_NOT_FOUND", "Quote session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierNotInSession):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_IN_SESSION", "Supplier is not part of this quote session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionAlreadyActive):
		return pkg.NewDomainErrorSimple("QUOTE_SESSION_ALREADY_ACTIVE", "A quote session is already pending for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionCancelled):
		return pkg.NewDomainErrorSimple("QUOTE_SESSION_CANCELLED", "Quote session was cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrSupplierNotResponded):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_RESPONDED", "Supplier has not replied yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferNotInReply):
		return pkg.NewDomainErrorSimple("OFFER_NOT_IN_REPLY", "Chosen offer is not in the supplier reply", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCommitFailed):
		return pkg.NewDomainError("COMMIT_FAILED", "Could not record the approval, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
