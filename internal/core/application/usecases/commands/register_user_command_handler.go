package commands

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
)

// ErrEmailAlreadyExists is the cause of the conflict returned when the email
// belongs to another user.
var ErrEmailAlreadyExists = errors.New("email already exists")

// RegisterUserCommandHandler registers users with unique emails.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	cmd, _ := NewRegisterUserCommand("alice@example.com", "Alice")
//
//	registered, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrEmailAlreadyExists) {
//	    // ask for another address
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler that opens one unit of work per call.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the email is free, creates the user and stores it.
// Two registrations racing for the same email are settled by the unique index:
// the loser's Save reports errs.ErrObjectAlreadyExists and gets the same
// ErrEmailAlreadyExists as the pre-check.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, emailTaken(cmd.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	registered, err := user.NewUser(cmd.Email(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Save(ctx, registered); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, emailTaken(cmd.Email())
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return registered, nil
}

func emailTaken(email string) error {
	return errs.NewObjectAlreadyExistsErrorWithCause("email", email, ErrEmailAlreadyExists)
}
