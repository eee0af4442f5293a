package dto

import "github.com/soundprediction/triplo/pkg/factstore"

// QueryRequest is the body of POST /api/v1/query. It mirrors the
// query-adapter wire format: queryType selects the direction, forward
// queries use subject, reverse queries use object.
type QueryRequest struct {
	QueryType string `json:"queryType"`
	Subject   string `json:"subject,omitempty"`
	Object    string `json:"object,omitempty"`
	Relation  string `json:"relation,omitempty"`
}

// FactsResponse lists stored facts in insertion order.
type FactsResponse struct {
	Facts []factstore.Fact `json:"facts"`
	Total int              `json:"total"`
}

// StatsResponse reports aggregate store counts.
type StatsResponse struct {
	Facts     int `json:"facts"`
	Nodes     int `json:"nodes"`
	Relations int `json:"relations"`
}
