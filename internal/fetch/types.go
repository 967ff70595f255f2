package fetch

// SearchRequest is the RCSB search API query body
type SearchRequest struct {
	Query          SearchQuery    `json:"query"`
	ReturnType     string         `json:"return_type"`
	RequestOptions RequestOptions `json:"request_options"`
}

// SearchQuery is a terminal full-text node
type SearchQuery struct {
	Type       string           `json:"type"`
	Service    string           `json:"service"`
	Parameters SearchParameters `json:"parameters"`
}

// SearchParameters carries the search text
type SearchParameters struct {
	Value string `json:"value"`
}

// RequestOptions controls paging of the result set
type RequestOptions struct {
	Paginate Paginate `json:"paginate"`
}

// Paginate is the first page window
type Paginate struct {
	Start int `json:"start"`
	Rows  int `json:"rows"`
}

// SearchResponse is the subset of the RCSB search reply that is read
type SearchResponse struct {
	QueryID    string         `json:"query_id"`
	ResultType string         `json:"result_type"`
	TotalCount int            `json:"total_count"`
	ResultSet  []SearchResult `json:"result_set"`
}

// SearchResult is one hit
type SearchResult struct {
	Identifier string  `json:"identifier"`
	Score      float64 `json:"score"`
}

func newSearchRequest(text string, rows int) *SearchRequest {
	return &SearchRequest{
		Query: SearchQuery{
			Type:       "terminal",
			Service:    "full_text",
			Parameters: SearchParameters{Value: text},
		},
		ReturnType: "entry",
		RequestOptions: RequestOptions{
			Paginate: Paginate{Start: 0, Rows: rows},
		},
	}
}
