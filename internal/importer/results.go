package importer

// Action describes what the importer did with one record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
)

// ItemResult is the per-item, per-phase outcome record. One entry is
// appended for every external record processed, failures included.
type ItemResult struct {
	Type       string   `json:"type"`
	ExternalID int      `json:"externalId"`
	Title      string   `json:"title"`
	Success    bool     `json:"success"`
	Action     Action   `json:"action,omitempty"`
	Slug       string   `json:"slug,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// PhaseSummary aggregates the outcome list of one phase.
type PhaseSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Created    int `json:"created"`
	Updated    int `json:"updated"`
}

// Summary holds the per-phase counts for a whole run.
type Summary struct {
	Users      PhaseSummary `json:"users"`
	Categories PhaseSummary `json:"categories"`
	Articles   PhaseSummary `json:"articles"`
}

// Report collects every outcome of one import run.
type Report struct {
	Users      []ItemResult `json:"users"`
	Categories []ItemResult `json:"categories"`
	Articles   []ItemResult `json:"articles"`
}

// Summary derives the per-phase counts from the outcome lists.
func (r *Report) Summary() Summary {
	return Summary{
		Users:      summarize(r.Users),
		Categories: summarize(r.Categories),
		Articles:   summarize(r.Articles),
	}
}

// HasFailures reports whether any item in any phase failed.
func (r *Report) HasFailures() bool {
	for _, phase := range [][]ItemResult{r.Users, r.Categories, r.Articles} {
		for _, item := range phase {
			if !item.Success {
				return true
			}
		}
	}
	return false
}

func summarize(items []ItemResult) PhaseSummary {
	s := PhaseSummary{Total: len(items)}
	for _, item := range items {
		if item.Success {
			s.Successful++
		} else {
			s.Failed++
		}
		switch item.Action {
		case ActionCreated:
			s.Created++
		case ActionUpdated:
			s.Updated++
		}
	}
	return s
}
