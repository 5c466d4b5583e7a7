package server

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"greengrow-storefront/internal/handler"
	"greengrow-storefront/internal/middleware"
)

type Server struct {
	echo           *echo.Echo
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	contactHandler *handler.ContactHandler
	catalogHandler *handler.CatalogHandler
	chatHandler    *handler.ChatHandler
}

func NewServer(
	jwtSecret string,
	log zerolog.Logger,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	contactHandler *handler.ContactHandler,
	catalogHandler *handler.CatalogHandler,
	chatHandler *handler.ChatHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(requestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.SessionMiddleware(jwtSecret))

	s := &Server{
		echo:           e,
		orderHandler:   orderHandler,
		paymentHandler: paymentHandler,
		contactHandler: contactHandler,
		catalogHandler: catalogHandler,
		chatHandler:    chatHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/orders", s.orderHandler.CreateOrder)
	api.GET("/orders", s.orderHandler.GetOrders)

	api.POST("/payments", s.paymentHandler.CreatePayment)

	api.POST("/contact", s.contactHandler.SubmitContact)

	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/knowledge-base", s.catalogHandler.ListArticles)
	api.GET("/knowledge-base/:id", s.catalogHandler.GetArticle)

	api.POST("/chat", s.chatHandler.Chat)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("http request")

			return nil
		}
	}
}

// Echo exposes the underlying router, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
