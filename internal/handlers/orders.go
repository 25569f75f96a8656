package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/store"
)

func CreateOrder(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID      int64   `json:"user_id" binding:"required"`
			TotalAmount float64 `json:"total_amount"`
			Status      string  `json:"status" binding:"required"`
			PaymentID   *string `json:"payment_id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		order, err := store.CreateOrder(c.Request.Context(), db,
			input.UserID, decimal.NewFromFloat(input.TotalAmount), input.Status, input.PaymentID)
		if err != nil {
			if errors.Is(err, database.ErrInvalidStatus) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
				return
			}
			if errors.Is(err, database.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func GetOrder(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order id"})
			return
		}

		order, err := store.GetOrder(c.Request.Context(), db, id)
		if err != nil {
			if errors.Is(err, database.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// Purchase is the checkout transition. Expiry-format problems come back 400
// before anything is written; every other failure is a rolled-back
// transaction reported as one generic 500.
func Purchase(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info store.PaymentInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		orderID, err := store.Purchase(c.Request.Context(), db, info)
		if err != nil {
			if errors.Is(err, store.ErrInvalidExpiration) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": database.ErrPaymentFailed.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"detail":   "Purchase successful!",
			"order_id": orderID,
		})
	}
}
