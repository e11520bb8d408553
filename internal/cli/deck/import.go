package deck

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"swipedeck/internal/cli"
	"swipedeck/internal/database"
	deckservice "swipedeck/internal/services/deck"
)

// ImportCmd returns the deck import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a deck from a YAML file",
		Long:  "Validate a deck YAML file and store it locally. A deck with the same name is replaced.",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress output")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	deck, err := database.LoadDeckFile(args[0])
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_DECK_FILE",
			err.Error(),
			"Deck files are YAML: a name and a list of cards"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitError)
	}
	defer db.Close()

	svc := deckservice.NewService(database.NewDeckRepo(db))
	if err := svc.Import(ctx, deck); err != nil {
		if fmtErr := formatter.Error("IMPORT_FAILED", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitError)
	}

	return formatter.Successf("Imported deck %q (%d cards)", deck.Name, len(deck.Cards))
}
