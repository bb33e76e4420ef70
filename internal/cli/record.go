package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/lazypower/nexus/internal/crm"
	"github.com/spf13/cobra"
)

var (
	recordType string
	recordDate string
)

var recordCmd = &cobra.Command{
	Use:   "record [contact-id] [notes...]",
	Short: "Record an interaction with a contact",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRecord,
}

func init() {
	recordCmd.Flags().StringVarP(&recordType, "type", "t", "Note", "Interaction type (Email, Call, Meeting, LinkedIn, Note)")
	recordCmd.Flags().StringVarP(&recordDate, "date", "d", "", "Interaction date (YYYY-MM-DD, default today)")
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	state, kv, err := openState(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	date := time.Now()
	if recordDate != "" {
		date, err = time.Parse("2006-01-02", recordDate)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", recordDate, err)
		}
	}

	in, err := state.RecordInteraction(crm.Interaction{
		ContactID: args[0],
		Date:      date,
		Type:      crm.InteractionType(recordType),
		Notes:     strings.Join(args[1:], " "),
	})
	if err != nil {
		return err
	}

	fmt.Printf("recorded %s (%s) for contact %s\n", in.ID, in.Type, in.ContactID)
	if c := state.GetContact(in.ContactID); c == nil {
		fmt.Println("note: no contact with that id — interaction kept for later reconciliation")
	}
	return nil
}
