package triplo

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all loaded facts",
	Long: `Load the fact directory and print every fact as a plain-text line,
"{subject} {relation} {object}", in insertion order.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	for _, fact := range client.ListFacts() {
		fmt.Fprintln(cmd.OutOrStdout(), fact)
	}
	return nil
}
