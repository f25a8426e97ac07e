package domain

import (
	"context"
	"encoding/json"
)

// LumaEventRecord is one element of the Luma export: the event sits under an "event" wrapper.
// It is kept as a raw object so the wrapper key matches exactly, never case-insensitively.
type LumaEventRecord map[string]json.RawMessage

// Event returns the value under the exact "event" key, or nil.
func (r LumaEventRecord) Event() json.RawMessage {
	return r["event"]
}

// PublicEvent is the flattened event exposed by GET /events.
// Pass-through fields stay raw JSON so absent values encode as null and any
// value type is copied verbatim.
type PublicEvent struct {
	APIID       json.RawMessage `json:"api_id" swaggertype:"string"`
	Name        json.RawMessage `json:"name" swaggertype:"string"`
	CoverURL    json.RawMessage `json:"cover_url" swaggertype:"string"`
	Timezone    json.RawMessage `json:"timezone" swaggertype:"string"`
	URL         json.RawMessage `json:"url" swaggertype:"string"`
	City        json.RawMessage `json:"city" swaggertype:"string"`
	FullAddress json.RawMessage `json:"full_address" swaggertype:"string"`
	StartAt     json.RawMessage `json:"start_at" swaggertype:"string"`
	EndAt       json.RawMessage `json:"end_at" swaggertype:"string"`
}

// FeedSource returns the raw Luma export (a JSON array of LumaEventRecord).
type FeedSource interface {
	Load(ctx context.Context) ([]byte, error)
}

// LumaEventService lists the public view of the Luma export.
type LumaEventService interface {
	List(ctx context.Context) ([]PublicEvent, error)
}
