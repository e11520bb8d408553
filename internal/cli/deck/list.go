package deck

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"swipedeck/internal/cli"
	"swipedeck/internal/database"
	deckservice "swipedeck/internal/services/deck"
)

// ListCmd returns the deck list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored decks",
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	db, err := database.InitDB(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitError)
	}
	defer db.Close()

	svc := deckservice.NewService(database.NewDeckRepo(db))
	decks, err := svc.List(ctx)
	if err != nil {
		if fmtErr := formatter.Error("LIST_FAILED", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitError)
	}

	if jsonOutput {
		return formatter.Success(decks)
	}

	if len(decks) == 0 {
		fmt.Println("No stored decks. Import one with: swipedeck deck import <file>")
		return nil
	}

	for _, d := range decks {
		if quietMode {
			fmt.Println(d.Name)
			continue
		}
		fmt.Printf("%s (%d cards)\n", d.Name, d.CardCount)
	}
	return nil
}
