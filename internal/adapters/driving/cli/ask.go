package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
)

var (
	askLimit int
	askSteps int
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Answer an operational query",
	Long: `Evaluates a query against the loaded manual corpus and prints the
suggested menu command, step-by-step instructions, and source pages.
Queries may mix Hindi (Devanagari), Hinglish, and English.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askLimit, "limit", "n", 10, "maximum number of cited source pages")
	askCmd.Flags().IntVar(&askSteps, "steps", 8, "maximum number of extracted steps")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]

	if assistantService == nil {
		if err := initServices(); err != nil {
			return err
		}
	}

	ctx := context.Background()
	opts := domain.AnswerOptions{
		Limit:    askLimit,
		MaxSteps: askSteps,
	}

	answer, err := assistantService.Answer(ctx, query, opts)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCorpusNotReady):
			cmd.Println("Corpus not loaded yet. Build the index first and point --index at it.")
			return nil
		case errors.Is(err, domain.ErrMissingReferenceDocument):
			cmd.Println("This enquiry has a fixed procedure, but no booklet manual was found in the corpus.")
			cmd.Println("Add the menu booklet PDF to the indexed set and rebuild the index.")
			return nil
		}
		return fmt.Errorf("answer failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}
	if answer.Enquiry != nil {
		return outputEnquiryCard(cmd, query, answer.Enquiry)
	}
	return outputAnswer(cmd, query, answer)
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputEnquiryCard renders a fixed enquiry route answer.
func outputEnquiryCard(cmd *cobra.Command, query string, card *domain.EnquiryCard) error {
	title := color.New(color.Bold)
	menu := color.New(color.FgYellow, color.Bold)
	dim := color.New(color.Faint)

	cmd.Println(title.Sprint(card.Title))
	cmd.Printf("Query: %s\n\n", query)

	cmd.Printf("Menu / Command: %s\n\n", menu.Sprint(card.MenuCode))

	cmd.Println("Steps:")
	for i, s := range card.Steps {
		cmd.Printf("  %d. %s\n", i+1, s)
	}
	cmd.Println()

	if card.Note != "" {
		cmd.Println(dim.Sprint(card.Note))
		cmd.Println()
	}

	cmd.Printf("Reference: %s (page %d)\n", card.ReferenceDocument, card.ReferencePage)
	return nil
}

// outputAnswer renders a statistical answer bundle.
func outputAnswer(cmd *cobra.Command, query string, answer *domain.Answer) error {
	title := color.New(color.Bold)
	menu := color.New(color.FgYellow, color.Bold)
	dim := color.New(color.Faint)

	cmd.Println(title.Sprint("Answer"))
	cmd.Printf("Query: %s  (intent: %s)\n\n", query, answer.Intent)

	if len(answer.MenuCandidates) > 0 {
		cmd.Println("Suggested menu / command:")
		for i, m := range answer.MenuCandidates {
			if i == 0 {
				cmd.Printf("  * %s\n", menu.Sprint(m))
			} else {
				cmd.Printf("    %s\n", m)
			}
		}
		cmd.Println(dim.Sprint("  Try the starred menu first; verify on the cited pages."))
		cmd.Println()
	} else {
		cmd.Println("No strong menu code detected for this query.")
		cmd.Println()
	}

	if len(answer.Steps) > 0 {
		cmd.Println("Steps from the manuals:")
		for i, s := range answer.Steps {
			cmd.Printf("  %d. %s\n", i+1, s)
		}
		cmd.Println()
	} else {
		cmd.Println("No matching step text found in the indexed manuals.")
		cmd.Println(dim.Sprint("  Some manuals may be scanned images. Try a menu code as the query."))
		cmd.Println()
	}

	if answer.Fallback != nil {
		cmd.Printf("Quick template (verify with the manuals): %s / %s\n",
			answer.Fallback.TitlePrimary, answer.Fallback.TitleSecondary)
		for i, s := range answer.Fallback.Steps {
			cmd.Printf("  %d. %s\n", i+1, s)
		}
		cmd.Println()
	}

	if len(answer.Sources) == 0 {
		cmd.Println("No manual pages matched. Try different keywords or run 'finassist library'.")
		return nil
	}

	cmd.Println("Sources:")
	for i, src := range answer.Sources {
		ref := src.Ref()
		cmd.Printf("  [%d] %s (page %d)\n", i+1, ref.File, ref.Page)
		if snip := snippet(src.Text, query); snip != "" {
			cmd.Printf("      %s\n", dim.Sprint(snip))
		}
	}
	return nil
}
