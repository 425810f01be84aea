package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var libraryJSON bool

var libraryCmd = &cobra.Command{
	Use:   "library [filter]",
	Short: "List the indexed manuals",
	Long: `Lists every manual in the loaded corpus with its page count.
An optional filter argument keeps only manuals whose name contains it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLibrary,
}

func init() {
	libraryCmd.Flags().BoolVar(&libraryJSON, "json", false, "output the list as JSON")
	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	filter := ""
	if len(args) == 1 {
		filter = args[0]
	}

	if assistantService == nil {
		if err := initServices(); err != nil {
			return err
		}
	}

	docs, err := assistantService.Library(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("library failed: %w", err)
	}

	if libraryJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal library: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No manuals matched.")
		return nil
	}

	cmd.Printf("%d manuals:\n", len(docs))
	for _, d := range docs {
		cmd.Printf("  %s (%d pages)\n", d.Document, d.Pages)
	}
	return nil
}
