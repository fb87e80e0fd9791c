package core

import (
	"fmt"
	"strings"
)

// SearchProposal is the AI-generated interpretation of a natural-language
// inventory question as console query parameters. It is normalized and
// validated before anything acts on it.
type SearchProposal struct {
	Search     string  `json:"search" jsonschema_description:"Free-text term to match against part number, description, supplier name, and warehouse name. Empty matches everything."`
	Status     string  `json:"status" jsonschema_description:"Stock status filter: one of 'All', 'IN_STOCK', 'LOW_STOCK', 'OUT_OF_STOCK'."`
	SortKey    string  `json:"sort_key" jsonschema_description:"Sort column: one of 'part_number', 'quantity', 'status', 'description', or empty for no sorting."`
	Direction  string  `json:"direction" jsonschema_description:"Sort direction 'asc' or 'desc'. Leave empty for the column default."`
	Confidence float64 `json:"confidence" jsonschema_description:"Confidence score between 0.0 and 1.0"`
	Reasoning  string  `json:"reasoning" jsonschema_description:"Short explanation of how the question maps to these parameters"`
}

// Normalize cleans up common formatting issues in model output.
func (p *SearchProposal) Normalize() {
	p.Search = strings.TrimSpace(p.Search)
	p.Status = strings.TrimSpace(p.Status)
	p.SortKey = strings.ToLower(strings.TrimSpace(p.SortKey))
	p.Direction = strings.ToLower(strings.TrimSpace(p.Direction))

	if strings.EqualFold(p.Status, "all") || strings.EqualFold(p.Status, "null") {
		p.Status = "All"
	} else {
		p.Status = strings.ToUpper(strings.ReplaceAll(p.Status, " ", "_"))
	}
	if p.SortKey == "null" {
		p.SortKey = ""
	}
	if p.Direction == "null" {
		p.Direction = ""
	}
}

// Validate rejects proposals that name parameters outside the fixed sets
// the query engine accepts.
func (p *SearchProposal) Validate() error {
	if !ValidStatusFilter(p.Status) {
		return fmt.Errorf("invalid status filter %q", p.Status)
	}
	switch SortKey(p.SortKey) {
	case "", SortByPartNumber, SortByQuantity, SortByStatus, SortByDescription:
	default:
		return fmt.Errorf("invalid sort key %q", p.SortKey)
	}
	switch SortDirection(p.Direction) {
	case "", SortAsc, SortDesc:
	default:
		return fmt.Errorf("invalid sort direction %q", p.Direction)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("confidence %.2f out of range [0,1]", p.Confidence)
	}
	return nil
}

// Params converts a validated proposal into query engine parameters.
func (p *SearchProposal) Params() QueryParams {
	return QueryParams{
		Search:    p.Search,
		Status:    p.Status,
		SortKey:   SortKey(p.SortKey),
		Direction: SortDirection(p.Direction),
	}
}
