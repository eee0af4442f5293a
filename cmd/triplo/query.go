package triplo

import (
	"encoding/json"
	"fmt"

	"github.com/soundprediction/triplo/pkg/query"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a single fact query",
	Long: `Run one forward or reverse query against the loaded knowledge graph
and print the result as JSON.

A forward query looks up objects by subject and relation:

  triplo query --subject Hypertension --relation treated_by

A reverse query looks up subjects by object and relation:

  triplo query --object "ACE Inhibitor" --relation treated_by`,
	RunE: runQuery,
}

var (
	querySubject  string
	queryObject   string
	queryRelation string
)

// queryDocument is the printed output: the query inputs echoed back
// alongside the response list.
type queryDocument struct {
	QueryType string   `json:"queryType"`
	Subject   string   `json:"subject,omitempty"`
	Object    string   `json:"object,omitempty"`
	Relation  string   `json:"relation"`
	Response  []string `json:"response"`
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&querySubject, "subject", "", "subject for a forward query")
	queryCmd.Flags().StringVar(&queryObject, "object", "", "object for a reverse query")
	queryCmd.Flags().StringVar(&queryRelation, "relation", "", "relation label")
	queryCmd.MarkFlagsMutuallyExclusive("subject", "object")
	queryCmd.MarkFlagsOneRequired("subject", "object")
	queryCmd.MarkFlagRequired("relation")
}

func runQuery(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	doc := queryDocument{Relation: queryRelation}
	if querySubject != "" {
		doc.QueryType = query.TypeForward
		doc.Subject = querySubject
		doc.Response = client.QueryForward(querySubject, queryRelation)
	} else {
		doc.QueryType = query.TypeReverse
		doc.Object = queryObject
		doc.Response = client.QueryReverse(queryObject, queryRelation)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
