package ingest

import "errors"

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Item is one per-record outcome: either a success carrying the stored
// identifiers and the action taken, or a failure carrying the error.
type Item struct {
	SeriesID   int64        `json:"seriesId,omitempty"`
	ShortID    string       `json:"shortId,omitempty"`
	ExternalID string       `json:"externalId,omitempty"`
	Action     Action       `json:"action,omitempty"`
	Error      string       `json:"error,omitempty"`
	Details    []FieldError `json:"details,omitempty"`
}

func (i Item) Failed() bool {
	return i.Error != ""
}

type Summary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
	Total   int `json:"total"`
}

// Response is the uniform envelope for single and batch ingestion alike.
type Response struct {
	Summary Summary `json:"summary"`
	Items   []Item  `json:"items"`
}

// FailureItem turns a per-record error into a failed item, surfacing
// field-level details when the error carries them.
func FailureItem(externalID string, err error) Item {
	item := Item{
		ExternalID: externalID,
		Error:      err.Error(),
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		item.Details = ve.Details
	}

	return item
}

// NewResponse wraps items in a response envelope with tallied summary counts.
func NewResponse(items []Item) *Response {
	summary := Summary{Total: len(items)}
	for _, item := range items {
		switch {
		case item.Failed():
			summary.Failed++
		case item.Action == ActionCreated:
			summary.Created++
		case item.Action == ActionUpdated:
			summary.Updated++
		}
	}

	return &Response{Summary: summary, Items: items}
}

// NormalizeSingle coerces a single-record outcome into the same envelope the
// batch endpoint produces, so callers always parse one shape.
func NormalizeSingle(externalID string, item Item, err error) *Response {
	if err != nil {
		return NewResponse([]Item{FailureItem(externalID, err)})
	}
	return NewResponse([]Item{item})
}
