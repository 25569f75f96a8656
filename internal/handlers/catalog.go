package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
	"github.com/avdeev/go-shop-server/internal/store"
)

func CreateCategory(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name" binding:"required"`
			ParentID *int64 `json:"parent_id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		category, err := store.CreateCategory(c.Request.Context(), db, input.Name, input.ParentID)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateName) || errors.Is(err, database.ErrCategoryNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

func ListCategories(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.ListCategories(c.Request.Context(), db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

func CreateProduct(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string            `json:"name" binding:"required"`
			Description *string           `json:"description"`
			Price       float64           `json:"price"`
			Stock       int               `json:"stock"`
			CategoryID  *int64            `json:"category_id"`
			Attributes  models.Attributes `json:"attributes"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		price := decimal.NewFromFloat(input.Price)
		product, err := store.CreateProduct(c.Request.Context(), db,
			input.Name, input.Description, price, input.Stock, input.CategoryID, input.Attributes)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateName) || errors.Is(err, database.ErrCategoryNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func ListProducts(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context(), db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

func ListRecommendations(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user_id"})
			return
		}

		products, err := store.ListRecommendations(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
