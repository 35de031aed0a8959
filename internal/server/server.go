package server

import (
	"storefront-checkout/internal/handler"
	appmiddleware "storefront-checkout/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
}

func NewServer(checkoutHandler *handler.CheckoutHandler, webhookHandler *handler.WebhookHandler) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		checkoutHandler: checkoutHandler,
		webhookHandler:  webhookHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// paths mirror the hosted-platform function endpoints the storefront calls
	functions := s.echo.Group("/functions/v1")
	functions.POST("/create-checkout-session", s.checkoutHandler.CreateCheckoutSession, appmiddleware.RequireBearer())

	// authenticated by signature verification alone, safe to expose publicly
	functions.POST("/webhook", s.webhookHandler.HandleWebhook)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
