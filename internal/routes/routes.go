package routes

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/avdeev/go-shop-server/internal/auth"
	"github.com/avdeev/go-shop-server/internal/handlers"
	"github.com/avdeev/go-shop-server/internal/middleware"
)

// Register wires every endpoint. Only /users/me sits behind the token
// middleware; everything else takes user_id as a plain parameter.
func Register(r *gin.Engine, db *sql.DB, tokens *auth.Tokens) {
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	registerPages(r)

	r.POST("/register", handlers.Register(db))
	r.POST("/login", handlers.Login(db, tokens))
	r.GET("/users/me", middleware.AuthRequired(tokens), handlers.CurrentUser(db))
	r.GET("/users/:id", handlers.GetUser(db))

	r.POST("/categories", handlers.CreateCategory(db))
	r.GET("/categories", handlers.ListCategories(db))
	r.POST("/products", handlers.CreateProduct(db))
	r.GET("/products", handlers.ListProducts(db))
	r.GET("/recommendations", handlers.ListRecommendations(db))

	r.GET("/cart", handlers.GetCart(db))
	r.POST("/cart/items", handlers.AddCartItem(db))
	r.DELETE("/cart/items/:id", handlers.RemoveCartItem(db))

	r.POST("/orders", handlers.CreateOrder(db))
	r.GET("/orders/:id", handlers.GetOrder(db))
	r.POST("/purchase", handlers.Purchase(db))
}

// registerPages serves the demo storefront. The static directory ships with
// the deployment, not with this module.
func registerPages(r *gin.Engine) {
	pages := map[string]string{
		"/":            "static/index.html",
		"/login":       "static/login.html",
		"/shop":        "static/shop.html",
		"/recommended": "static/recommended.html",
		"/checkout":    "static/checkout.html",
		"/thank-you":   "static/thank-you.html",
	}
	for route, file := range pages {
		r.GET(route, func(file string) gin.HandlerFunc {
			return func(c *gin.Context) { c.File(file) }
		}(file))
	}
	r.Static("/static", "./static")
}
