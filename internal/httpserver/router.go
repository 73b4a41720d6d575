package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"tireshop/internal/domain"
	"tireshop/internal/payments"
	productrepo "tireshop/internal/repository/product"
	cartsvc "tireshop/internal/service/cart"
	checkoutsvc "tireshop/internal/service/checkout"
	"tireshop/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService lists the tire catalog.
type CatalogService interface {
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// CartService manages a user's cart.
type CartService interface {
	Get(ctx context.Context, userID string) (*cartsvc.Summary, error)
	Add(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

// CheckoutService runs the payment workflow.
type CheckoutService interface {
	CreateIntent(ctx context.Context, amount float64, currency, userID string) (string, error)
	HandleEvent(ctx context.Context, evt payments.Event) error
	Status(ctx context.Context, intentID string) (checkoutsvc.StatusResult, error)
}

// WebhookVerifier authenticates raw webhook payloads.
type WebhookVerifier interface {
	Verify(payload []byte, sigHeader string) (payments.Event, error)
}

// OrderLister reads a user's completed orders.
type OrderLister interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// FavoriteStore manages a user's favorite products.
type FavoriteStore interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
}

// ProfileStore reads and writes customer profiles.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}

// Deps groups the collaborators the router needs.
type Deps struct {
	CatalogSvc  CatalogService
	CartSvc     CartService
	CheckoutSvc CheckoutService
	Verifier    WebhookVerifier
	Orders      OrderLister
	Favorites   FavoriteStore
	Profiles    ProfileStore
}

// buildRouter wires routes for the API. CORS is engine-level so preflight
// requests are answered for every browser-facing route; it admits only the
// single storefront origin. The webhook is server-to-server and sends no
// Origin header, so it is unaffected.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, storefrontOrigin string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{storefrontOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "X-User-ID"},
		MaxAge:       time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/stripe/webhook", webhookHandler(logger, deps.Verifier, deps.CheckoutSvc))

	v := validation.New()

	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/:productID", getProductHandler(deps.CatalogSvc))

	router.POST("/checkout/payment-intent", createPaymentIntentHandler(logger, deps.CheckoutSvc, v))
	router.GET("/checkout/status/:intentID", checkoutStatusHandler(logger, deps.CheckoutSvc))

	user := router.Group("/")
	user.Use(requireUser())

	user.GET("/cart", getCartHandler(deps.CartSvc))
	user.POST("/cart/items", addCartItemHandler(deps.CartSvc, v))
	user.DELETE("/cart/items/:itemID", deleteCartItemHandler(deps.CartSvc))
	user.DELETE("/cart", clearCartHandler(deps.CartSvc))

	user.GET("/orders", listOrdersHandler(deps.Orders))

	user.GET("/favorites", listFavoritesHandler(deps.Favorites))
	user.PUT("/favorites/:productID", addFavoriteHandler(deps.Favorites))
	user.DELETE("/favorites/:productID", removeFavoriteHandler(deps.Favorites))

	user.GET("/profile", getProfileHandler(deps.Profiles))
	user.PUT("/profile", updateProfileHandler(deps.Profiles, v))

	return router
}

const userIDKey = "userID"

// requireUser pulls the caller identity set by the auth layer in front of
// this API. Routes behind it always have a non-empty user id.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user id required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}
