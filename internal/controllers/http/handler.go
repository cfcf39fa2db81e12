package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra/metrics"
	"storefront-service/internal/infra/ratelimit"
	"storefront-service/internal/services"
)

const (
	apiVersion       = "2.0.0"
	seedSecretHeader = "X-Seed-Secret"
	demoSuffix       = " (demo mode)"
)

var apiFeatures = []string{"auth", "products", "orders", "analytics", "messages"}

type Services struct {
	Catalog   *services.CatalogService
	Orders    *services.OrderService
	Analytics *services.AnalyticsService
	Auth      *services.AuthService
	Messages  *services.MessageService
	System    *services.SystemService
}

type Handler struct {
	catalog   *services.CatalogService
	orders    *services.OrderService
	analytics *services.AnalyticsService
	auth      *services.AuthService
	messages  *services.MessageService
	system    *services.SystemService
	limiter   ratelimit.Limiter
	metrics   *metrics.Metrics
	log       *zap.Logger
}

// NewHandler wires the services to gin. A nil limiter disables throttling
// and nil metrics leaves /metrics unmounted.
func NewHandler(svc Services, limiter ratelimit.Limiter, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		catalog:   svc.Catalog,
		orders:    svc.Orders,
		analytics: svc.Analytics,
		auth:      svc.Auth,
		messages:  svc.Messages,
		system:    svc.System,
		limiter:   limiter,
		metrics:   m,
		log:       logger,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(RequestID(), RequestLogger(h.log))
	if h.metrics != nil {
		r.Use(h.metrics.Middleware())
		r.GET("/metrics", h.metrics.Handler())
	}

	api := r.Group("/api")
	api.GET("", h.Root)
	api.GET("/health", h.Health)
	api.POST("/init-db", h.InitDB)

	authed := h.requireAuth()

	a := api.Group("/auth")
	a.POST("/register", h.rateLimit("register"), h.Register)
	a.POST("/login", h.rateLimit("login"), h.Login)
	a.POST("/seed-admin", h.rateLimit("seed-admin"), h.SeedAdmin)
	a.GET("/me", authed, h.Me)

	api.GET("/products", h.ListProducts)
	api.GET("/products/category/:category", h.ListProductsByCategory)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", authed, h.CreateProduct)
	api.PUT("/products/:id", authed, h.UpdateProduct)
	api.DELETE("/products/:id", authed, h.DeleteProduct)
	api.GET("/categories", h.Categories)

	api.POST("/orders", h.PlaceOrder)
	api.GET("/orders", authed, h.ListOrders)
	api.PATCH("/orders/:id/status", authed, h.UpdateOrderStatus)

	api.GET("/analytics", authed, h.Analytics)

	api.POST("/messages", h.CreateMessage)
	api.GET("/messages", authed, h.ListMessages)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{Message: "API is running", Version: apiVersion, Features: apiFeatures})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.system.Health(c.Request.Context()))
}

func (h *Handler) InitDB(c *gin.Context) {
	if err := h.system.InitDB(c.Request.Context()); err != nil {
		h.fail(c, err, "Failed to initialize database")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Database initialized successfully"})
}

func (h *Handler) Register(c *gin.Context) {
	var req services.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sess, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{
		Message: withDemo("Admin registered successfully", sess.Demo),
		Token:   sess.Token,
		User:    sess.User,
		Demo:    sess.Demo,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, AuthResponse{
		Message: withDemo("Login successful", sess.Demo),
		Token:   sess.Token,
		User:    sess.User,
		Demo:    sess.Demo,
	})
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.auth.Me(c.Request.Context(), identity(c))
	if err != nil {
		h.fail(c, err, "Auth check failed")
		return
	}
	c.JSON(http.StatusOK, MeResponse{User: u})
}

// SeedAdmin accepts an optional body overriding the default admin account.
func (h *Handler) SeedAdmin(c *gin.Context) {
	var req services.Credentials
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request body")
		return
	}

	res, err := h.auth.SeedAdmin(c.Request.Context(), c.GetHeader(seedSecretHeader), req)
	if err != nil {
		h.fail(c, err, "Failed to create admin user")
		return
	}
	if !res.Created {
		c.JSON(http.StatusOK, SeedResponse{
			Message:     "Admin user already exists",
			Credentials: SeedCredentials{Email: res.Email},
		})
		return
	}
	c.JSON(http.StatusCreated, SeedResponse{
		Message:     "Admin user created successfully",
		Token:       res.Session.Token,
		User:        &res.Session.User,
		Credentials: SeedCredentials{Email: res.Email, Password: res.Password},
	})
}

func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List(c.Request.Context()))
}

func (h *Handler) ListProductsByCategory(c *gin.Context) {
	products, err := h.catalog.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.fail(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req domain.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	p, isDemo, err := h.catalog.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create product")
		return
	}
	msg := "Product created successfully"
	if isDemo {
		msg = "Product created" + demoSuffix
	}
	c.JSON(http.StatusCreated, ProductResponse{Message: msg, Product: p, Demo: isDemo})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	p, err := h.catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, ProductResponse{Message: "Product updated successfully", Product: p})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories())
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req domain.PlaceOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid order payload")
		return
	}

	order, isDemo, err := h.orders.Place(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to save order")
		return
	}
	c.JSON(http.StatusCreated, OrderResponse{
		Message: withDemo("Order placed successfully", isDemo),
		Order:   order,
		Demo:    isDemo,
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid status")
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.fail(c, err, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, OrderResponse{Message: "Order status updated", Order: order})
}

// Analytics never fails; a broken store reads as zeros.
func (h *Handler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Dashboard(c.Request.Context()))
}

func (h *Handler) CreateMessage(c *gin.Context) {
	var req services.MessageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	m, isDemo, err := h.messages.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to save message")
		return
	}
	c.JSON(http.StatusCreated, MessageCreatedResponse{
		Message: withDemo("Message sent successfully", isDemo),
		Data:    m,
		Demo:    isDemo,
	})
}

func (h *Handler) ListMessages(c *gin.Context) {
	msgs, err := h.messages.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func withDemo(msg string, isDemo bool) string {
	if isDemo {
		return msg + demoSuffix
	}
	return msg
}
