package http

import (
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body RegisterUserRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRegisterUserCommand(body.Email, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	registered, err := s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newUser(queries.NewUserResponse(registered)))
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.queries.ListUsers.Handle(ctx.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newUsers(users))
}

// GetUser handles GET /api/v1/users/{userId}.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetUserByIDQuery(userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.getUser(ctx, query)
}

// GetUserByEmail handles GET /api/v1/users/by-email?email=.
func (s *Server) GetUserByEmail(ctx echo.Context) error {
	var email string
	if err := runtime.BindQueryParameter("form", true, true, "email", ctx.QueryParams(), &email); err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause("email", err))
	}

	query, err := queries.NewGetUserByEmailQuery(email)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.getUser(ctx, query)
}

func (s *Server) getUser(ctx echo.Context, query queries.GetUserQuery) error {
	found, err := s.queries.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newUser(found))
}

// ListUserOrders handles GET /api/v1/users/{userId}/orders.
func (s *Server) ListUserOrders(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListUserOrdersQuery(userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.listOrders(ctx, query)
}
