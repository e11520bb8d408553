package deck

import (
	"github.com/spf13/cobra"
)

// DeckCmd returns the deck parent command
func DeckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage stored decks",
	}

	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
