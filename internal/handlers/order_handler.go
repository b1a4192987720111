package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-orders/internal/db"
	"github.com/Keoroanthony/go-orders/internal/models"
	"github.com/Keoroanthony/go-orders/internal/notifier"
)

const (
	orderTimeLayout     = "2006-01-02T15:04:05"
	dateRangeLayout     = "2006.01.02"
	formattedTimeLayout = "2006-01-02 15:04:05"
)

type OrderHandler struct {
	SMS notifier.Sender
}

func NewOrderHandler(sms notifier.Sender) *OrderHandler {
	return &OrderHandler{SMS: sms}
}

type CreateOrderRequest struct {
	CustomerID uint    `json:"customer_id" binding:"required"`
	Item       string  `json:"item" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Time       string  `json:"time" binding:"required"`
}

// UpdateOrderRequest replaces all three mutable fields unconditionally;
// there is no partial-update path for orders.
type UpdateOrderRequest struct {
	Item   string  `json:"item" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Time   string  `json:"time" binding:"required"`
}

type OrderResponse struct {
	ID            uint      `json:"id"`
	CustomerID    uint      `json:"customer_id"`
	Item          string    `json:"item"`
	Amount        float64   `json:"amount"`
	Time          time.Time `json:"time"`
	FormattedTime string    `json:"formatted_time"`
	DateCreated   time.Time `json:"date_created"`
	DateUpdated   time.Time `json:"date_updated"`
}

func newOrderResponse(order models.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		Item:          order.Item,
		Amount:        order.Amount,
		Time:          order.Time,
		FormattedTime: order.Time.Format(formattedTimeLayout),
		DateCreated:   order.DateCreated,
		DateUpdated:   order.DateUpdated,
	}
}

func newOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderResponse(order))
	}
	return out
}

// parseOrderTime accepts RFC 3339 or the same layout without a zone offset;
// zoneless values are taken as UTC.
func parseOrderTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(orderTimeLayout, value)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderTime, err := parseOrderTime(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time format"})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		CustomerID: req.CustomerID,
		Item:       req.Item,
		Amount:     req.Amount,
		Time:       orderTime,
	}

	if err := db.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The order is durable from here on; the notification outcome is
	// attached to the response but never fails the create.
	phone := ""
	if customer.PhoneNumber != nil {
		phone = *customer.PhoneNumber
	}
	message := fmt.Sprintf("New order placed: %s for $%.2f", order.Item, order.Amount)

	smsResponse, smsErr := h.SMS.Send(c.Request.Context(), phone, message)
	if smsErr != nil {
		slog.Error("order notification failed", "order_id", order.ID, "error", smsErr)
		c.JSON(http.StatusCreated, gin.H{
			"order":     newOrderResponse(order),
			"sms_error": smsErr.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        newOrderResponse(order),
		"sms_response": smsResponse,
	})
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	skip, limit, err := parsePagination(c, 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var orders []models.Order
	if err := db.DB.Offset(skip).Limit(limit).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newOrderResponses(orders))
}

func (h *OrderHandler) SearchOrdersByDateRange(c *gin.Context) {
	start, err := time.Parse(dateRangeLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use yyyy.mm.dd"})
		return
	}

	end, err := time.Parse(dateRangeLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use yyyy.mm.dd"})
		return
	}

	// The whole end day is covered: the range closes at 23:59:59.
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	var orders []models.Order
	if err := db.DB.Where("time >= ? AND time <= ?", start, end).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders found in the specified date range"})
		return
	}

	c.JSON(http.StatusOK, newOrderResponses(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderTime, err := parseOrderTime(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time format"})
		return
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"item":         req.Item,
		"amount":       req.Amount,
		"time":         orderTime,
		"date_updated": time.Now(),
	}

	if err := db.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve updated order"})
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
