package http

import (
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	userID, err := kernel.UUIDFromBytes(body.UserID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrder(queries.NewOrderResponse(created)))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewListOrdersQuery())
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrder(found))
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body AddItemRequest
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("price", err))
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, body.ProductName, price, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.commands.AddOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrder(queries.NewOrderResponse(updated)))
}

// ChangeOrderStatus returns the handler of POST /api/v1/orders/{orderId}/<action>.
func (s *Server) ChangeOrderStatus(action commands.OrderAction) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := pathUUID(ctx, "orderId")
		if err != nil {
			return s.fail(ctx, err)
		}

		cmd, err := commands.NewChangeOrderStatusCommand(orderID, action)
		if err != nil {
			return s.fail(ctx, err)
		}

		updated, err := s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err)
		}

		return ctx.JSON(http.StatusOK, newOrder(queries.NewOrderResponse(updated)))
	}
}
