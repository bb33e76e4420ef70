package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List contacts due for follow-up, most urgent first",
	RunE:  runDue,
}

func runDue(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	state, kv, err := openState(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	due := state.Due(time.Now())
	if len(due) == 0 {
		fmt.Println("No follow-ups due. Good job.")
		return nil
	}

	for _, c := range due {
		last := "never"
		if c.LastContacted != nil {
			last = c.LastContacted.Format("2006-01-02")
		}
		fmt.Printf("%-28s %-16s last: %-10s every %d days\n",
			c.FullName(), c.Status, last, c.FollowUpFrequencyDays)
	}
	return nil
}
