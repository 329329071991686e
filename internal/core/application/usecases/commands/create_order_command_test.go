package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(userID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, userID, cmd.UserID())
}

func TestNewCreateOrderCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
