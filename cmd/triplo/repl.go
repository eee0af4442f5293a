package triplo

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive JSON query loop",
	Long: `Load the fact directory, display the loaded facts, and read JSON
queries line by line from stdin until 'quit', 'exit', or end of input.

Each line must be a complete JSON query document, for example:

  {"queryType": "retrieve_fact", "subject": "Hypertension", "relation": "treated_by"}
  {"queryType": "retrieve_fact_reverse", "object": "ACE Inhibitor", "relation": "treated_by"}`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Startup diagnostics: every loaded fact, insertion order.
	fmt.Fprintln(out, "Loaded Knowledge Graph Facts:")
	for _, fact := range client.ListFacts() {
		fmt.Fprintf(out, " - %s\n", fact)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Ready to process JSON queries. Enter a JSON-formatted query, or type 'quit' to exit.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "Enter your JSON query: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		}

		fmt.Fprintf(out, "Output: %s\n", client.ProcessJSON([]byte(line)))
	}
}
