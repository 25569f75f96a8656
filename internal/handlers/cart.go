package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/store"
)

func GetCart(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user_id"})
			return
		}

		items, err := store.GetCartItems(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

func AddCartItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user_id"})
			return
		}

		var input struct {
			ProductID int64 `json:"product_id" binding:"required"`
			Quantity  int   `json:"quantity" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		item, err := store.AddCartItem(c.Request.Context(), db, userID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

func RemoveCartItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user_id"})
			return
		}

		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid cart item id"})
			return
		}

		if err := store.RemoveCartItem(c.Request.Context(), db, userID, itemID); err != nil {
			if errors.Is(err, database.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"detail": "cart item removed successfully"})
	}
}
