package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lazypower/nexus/internal/engine"
	"github.com/lazypower/nexus/internal/llm"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich [contact-id] [raw text...]",
	Short: "Enrich a contact from raw text (bio, signature, notes)",
	Long:  "Extracts contact fields from pasted text with the configured LLM and merges them onto the contact. Reads stdin when no text argument is given.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	rawText := strings.Join(args[1:], " ")
	if rawText == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		rawText = strings.TrimSpace(string(data))
	}
	if rawText == "" {
		return fmt.Errorf("no text to enrich from")
	}

	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	state, kv, err := openState(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	enricher := engine.New(state, llmClient, time.Duration(cfg.LLM.Timeout)*time.Second)
	merged, err := enricher.Enrich(context.Background(), args[0], rawText)
	if err != nil {
		return err
	}

	fmt.Printf("enriched %s:\n", merged.FullName())
	if merged.Title != "" {
		fmt.Printf("  title:    %s\n", merged.Title)
	}
	if merged.CompanyID != "" {
		fmt.Printf("  company:  %s\n", merged.CompanyID)
	}
	if merged.Location != "" {
		fmt.Printf("  location: %s\n", merged.Location)
	}
	if len(merged.Tags) > 0 {
		fmt.Printf("  tags:     %s\n", strings.Join(merged.Tags, ", "))
	}
	return nil
}
