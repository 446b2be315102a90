package api

import (
	"net/http"

	reqdto "arttoy-storefront/internal/handler/dto/request"
	resdto "arttoy-storefront/internal/handler/dto/response"
	"arttoy-storefront/internal/handler/middleware"
	"arttoy-storefront/internal/infra"
	"arttoy-storefront/internal/pkg/errs"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	orders, err := h.orderQueries.List(c.Request.Context(), token)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(orders))
}

// @Summary Preview a quantity step
// @Description Clamps quantity+delta against the current quota and the per-order ceiling, and reports submit eligibility. Nothing is written.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewOrderRequest true "Current quantity and step"
// @Success 200 {object} resdto.AdmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/preview [post]
func (h *OrderHandler) Preview(c *gin.Context) {
	if _, ok := middleware.GetToken(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.PreviewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.Preview(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdmissionResult(result))
}

// @Summary Place an order
// @Description Admits the quantity against a refreshed quota before anything is sent upstream.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Toy and quantity"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.orderCommands.Place(c.Request.Context(), token, req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(created))
}

// @Summary Change an order's quantity
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.AmendOrderRequest true "New quantity"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id} [put]
func (h *OrderHandler) Amend(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.AmendOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.orderCommands.Amend(c.Request.Context(), token, id, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(updated))
}

// @Summary Cancel an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [delete]
func (h *OrderHandler) Cancel(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	if err := h.orderCommands.Cancel(c.Request.Context(), token, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrNotOrderable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Toy has no available quota",
		})
	case errs.Is(err, commands.ErrQuotaExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Quantity exceeds the available quota",
		})
	case errs.Is(err, commands.ErrToyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Toy not found",
		})
	case errs.Is(err, commands.ErrOrderNotFound), infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case infra.IsKind(err, infra.KindUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
	case infra.IsKind(err, infra.KindBadRequest):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": retrievalMessage(err),
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": retrievalMessage(err),
		})
	}
}
