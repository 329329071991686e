package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_Constructors(t *testing.T) {
	orderID := kernel.NewUUID()

	tests := []struct {
		construct func(kernel.UUID) (commands.ChangeOrderStatusCommand, error)
		action    commands.OrderAction
	}{
		{commands.NewPayOrderCommand, commands.PayOrder},
		{commands.NewCancelOrderCommand, commands.CancelOrder},
		{commands.NewShipOrderCommand, commands.ShipOrder},
		{commands.NewCompleteOrderCommand, commands.CompleteOrder},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			cmd, err := tt.construct(orderID)

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, orderID, cmd.OrderID())
			assert.Equal(t, tt.action, cmd.Action())
		})
	}
}

func TestNewChangeOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "refund")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseOrderAction(t *testing.T) {
	for _, s := range []string{"pay", "cancel", "ship", "complete"} {
		action, err := commands.ParseOrderAction(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(action))
	}

	_, err := commands.ParseOrderAction("PAY")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommand_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t,
		commands.ChangeOrderStatusCommand{}.Validate(),
		commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
