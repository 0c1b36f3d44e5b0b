package order

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Interpret free-text order
// --------------------------------------------------

type interpretRequest struct {
	OrderText string `json:"orderText"`
}

func (h *Handler) Interpret(c *gin.Context) {
	var req interpretRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.OrderText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderText is required"})
		return
	}

	cart, err := h.service.InterpretOrder(c.Request.Context(), req.OrderText)
	if err != nil {
		if errors.Is(err, ErrCatalogUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "could not load the catalog, please try again",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "could not understand the order right now, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lines":          cart.Lines,
		"unmatchedNames": cart.UnmatchedNames,
		"totalAmount":    cart.TotalAmount,
		"message":        interpretMessage(cart),
	})
}

// interpretMessage keeps the "understood nothing" and "understood
// something not on the menu" outcomes distinct for the caller.
func interpretMessage(cart *ResolvedCart) string {
	switch {
	case cart.NothingUnderstood():
		return "we could not find any dishes in that order text"
	case len(cart.UnmatchedNames) > 0:
		return fmt.Sprintf(
			"not on the menu: %s",
			strings.Join(cart.UnmatchedNames, ", "),
		)
	default:
		return "order understood"
	}
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

type checkoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	PaymentMethod string         `json:"paymentMethod"`
}

func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("userID")

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.service.Checkout(
		c.Request.Context(),
		userID,
		req.Items,
		req.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) ||
			errors.Is(err, ErrInvalidQuantity) ||
			strings.HasPrefix(err.Error(), "unknown product") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, ErrCatalogUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "could not load the catalog, please try again",
			})
			return
		}
		if errors.Is(err, ErrStoreUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "could not save the order, please try again",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        o,
		"clientSecret": o.ClientSecret,
	})
}

// --------------------------------------------------
// Payment confirmation + lifecycle
// --------------------------------------------------

type confirmRequest struct {
	Status string `json:"status"`
}

func (h *Handler) Confirm(c *gin.Context) {
	userID := c.GetString("userID")

	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	o, err := h.service.ConfirmPayment(
		c.Request.Context(),
		userID,
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	resp := gin.H{"order": o}
	if o.Status == StatusPending {
		resp["message"] = "payment is not complete yet"
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetString("userID")

	o, err := h.service.CancelOrder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	o, err := h.service.GetOrder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	orders, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not load orders, please try again",
		})
		return
	}

	if orders == nil {
		orders = []Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not load the order, please try again",
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
