package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CommandHandlers groups the write side used by the HTTP adapter.
type CommandHandlers struct {
	RegisterUser      commands.RegisterUserCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	AddOrderItem      commands.AddOrderItemCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
}

// QueryHandlers groups the read side used by the HTTP adapter.
type QueryHandlers struct {
	GetUser    queries.GetUserQueryHandler
	ListUsers  queries.ListUsersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
	ListOrders queries.ListOrdersQueryHandler
}

// Server handles the requests of api/openapi.json.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *slog.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "http_server"),
	}
}

// statusFor maps a failure to a status code by its generic kind.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// details are not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"route", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// HandleError is installed as echo's HTTPErrorHandler so routing errors and
// panics recovered by middleware share the Error body.
func (s *Server) HandleError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		_ = ctx.JSON(httpErr.Code, Error{Code: httpErr.Code, Message: message})
		return
	}

	_ = s.fail(ctx, err)
}

// pathUUID binds a UUID path parameter the way generated oapi-codegen
// servers do.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return kernel.UUIDFromBytes(raw[:])
}
