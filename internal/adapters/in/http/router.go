package http

import (
	"context"
	"log/slog"
	"net/http"

	"shop/api"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API, health, metrics and
// Swagger UI endpoints.
func NewRouter(ctx context.Context, server *Server, m *metrics.Metrics, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = server.HandleError

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(Metrics(m))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", validator)

	v1.POST("/users", server.RegisterUser)
	v1.GET("/users", server.ListUsers)
	v1.GET("/users/by-email", server.GetUserByEmail)
	v1.GET("/users/:userId", server.GetUser)
	v1.GET("/users/:userId/orders", server.ListUserOrders)

	v1.POST("/orders", server.CreateOrder)
	v1.GET("/orders", server.ListOrders)
	v1.GET("/orders/:orderId", server.GetOrder)
	v1.POST("/orders/:orderId/items", server.AddOrderItem)
	for _, action := range []commands.OrderAction{
		commands.PayOrder,
		commands.CancelOrder,
		commands.ShipOrder,
		commands.CompleteOrder,
	} {
		v1.POST("/orders/:orderId/"+string(action), server.ChangeOrderStatus(action))
	}

	return e, nil
}
