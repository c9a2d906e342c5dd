package model

// StatusSuccess is the status reported for a completed research query.
const StatusSuccess = "success"

// ResearchQuery is the body accepted by the research endpoint.
type ResearchQuery struct {
	Query *string `json:"query"`
}

// ResearchResult is the payload returned for a research query.
type ResearchResult struct {
	Status          string    `json:"status"`
	LiveDataResults []Article `json:"live_data_results"`
}

// NewResearchResult wraps matches in a success payload. A nil slice is
// replaced so the results always encode as a JSON array.
func NewResearchResult(matches []Article) ResearchResult {
	if matches == nil {
		matches = []Article{}
	}
	return ResearchResult{
		Status:          StatusSuccess,
		LiveDataResults: matches,
	}
}
