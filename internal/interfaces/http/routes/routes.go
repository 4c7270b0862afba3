// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/newsletter"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
)

// Dependencies holds the services the API is built on
type Dependencies struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Catalog    *product.Catalog
	Cart       *cart.Service
	Checkout   *checkout.Service
	Newsletter *newsletter.Service
	Wishlist   *wishlist.Service
	Receipts   handlers.ReceiptRenderer
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/related", productHandler.GetRelated)
	}
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Catalog, deps.Config, deps.Logger)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps Dependencies) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, deps.Receipts, deps.Logger)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
		checkoutGroup.GET("/orders/:number", checkoutHandler.GetOrder)
		checkoutGroup.GET("/orders/:number/receipt", checkoutHandler.GetReceipt)
	}
}

// SetupNewsletterRoutes sets up subscriber and email-sequence routes
func SetupNewsletterRoutes(rg *gin.RouterGroup, deps Dependencies) {
	newsletterHandler := handlers.NewNewsletterHandler(deps.Newsletter, deps.Logger)

	newsletterGroup := rg.Group("/newsletter")
	{
		newsletterGroup.POST("/subscribers", newsletterHandler.AddSubscriber)
		newsletterGroup.GET("/subscribers", newsletterHandler.ListSubscribers)
		newsletterGroup.GET("/subscribers/:id/emails", newsletterHandler.GetSubscriberEmails)
		newsletterGroup.GET("/emails", newsletterHandler.ListEmails)
		newsletterGroup.POST("/emails/:id/send", newsletterHandler.SendEmail)
		newsletterGroup.POST("/dispatch", newsletterHandler.DispatchDue)
		newsletterGroup.GET("/stats", newsletterHandler.GetStats)
		newsletterGroup.GET("/templates", newsletterHandler.GetTemplates)
	}
}

// SetupWishlistRoutes sets up saved-product routes
func SetupWishlistRoutes(rg *gin.RouterGroup, deps Dependencies) {
	wishlistHandler := handlers.NewWishlistHandler(deps.Wishlist, deps.Logger)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.GET("/summary", wishlistHandler.GetWishlistSummary)
		wishlistGroup.POST("/items", wishlistHandler.AddToWishlist)
		wishlistGroup.POST("/items/bulk", wishlistHandler.BulkAddToWishlist)
		wishlistGroup.GET("/items/:id", wishlistHandler.CheckItemInWishlist)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
		wishlistGroup.POST("/items/:id/toggle", wishlistHandler.ToggleWishlist)
		wishlistGroup.POST("/items/:id/move-to-cart", wishlistHandler.MoveToCart)
		wishlistGroup.DELETE("", wishlistHandler.ClearWishlist)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupCheckoutRoutes(rg, deps)
	SetupNewsletterRoutes(rg, deps)
	SetupWishlistRoutes(rg, deps)
}
