package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"businessghat/internal/domain"
)

var emptyJSONString = json.RawMessage(`""`)

type lumaEventService struct {
	source domain.FeedSource
}

// NewLumaEventService returns a LumaEventService that re-reads source on every call.
func NewLumaEventService(source domain.FeedSource) domain.LumaEventService {
	return &lumaEventService{source: source}
}

// List loads the export and projects it. Every failure wraps domain.ErrFeedUnavailable.
func (s *lumaEventService) List(ctx context.Context) ([]domain.PublicEvent, error) {
	raw, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFeedUnavailable, err)
	}
	events, err := ProjectEvents(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFeedUnavailable, err)
	}
	return events, nil
}

// ProjectEvents parses a Luma export (a JSON array of {"event": {...}}) and
// flattens each record into a PublicEvent, keeping input order.
//
// A top-level value that is not an array, or an element without an "event"
// object wrapper, is an error. Anything below the wrapper is best effort:
// missing or oddly typed fields never fail the projection.
func ProjectEvents(raw []byte) ([]domain.PublicEvent, error) {
	var records []domain.LumaEventRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse luma export: %w", err)
	}
	if records == nil {
		return nil, errors.New("parse luma export: top-level value is not an array")
	}

	out := make([]domain.PublicEvent, 0, len(records))
	for i, rec := range records {
		if isNullish(rec.Event()) {
			return nil, fmt.Errorf("luma export record %d: missing event", i)
		}
		out = append(out, projectEvent(objectFields(rec.Event())))
	}
	return out, nil
}

func projectEvent(event map[string]json.RawMessage) domain.PublicEvent {
	var geo map[string]json.RawMessage
	if g := event["geo_address_info"]; truthy(g) {
		geo = objectFields(g)
	}

	return domain.PublicEvent{
		APIID:       event["api_id"],
		Name:        event["name"],
		CoverURL:    event["cover_url"],
		Timezone:    event["timezone"],
		URL:         event["url"],
		City:        firstTruthy(geo["city"], geo["city_state"]),
		FullAddress: firstTruthy(geo["full_address"]),
		StartAt:     event["start_at"],
		EndAt:       event["end_at"],
	}
}

// objectFields returns the members of a JSON object. Non-object values have no members.
func objectFields(v json.RawMessage) map[string]json.RawMessage {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(v, &m); err != nil {
		return nil
	}
	return m
}

// firstTruthy returns the first truthy candidate verbatim, or "".
func firstTruthy(candidates ...json.RawMessage) json.RawMessage {
	for _, c := range candidates {
		if truthy(c) {
			return c
		}
	}
	return emptyJSONString
}

func isNullish(v json.RawMessage) bool {
	s := bytes.TrimSpace(v)
	return len(s) == 0 || string(s) == "null"
}

// truthy reports whether v is neither absent, null, false, zero nor the empty string.
func truthy(v json.RawMessage) bool {
	s := bytes.TrimSpace(v)
	switch string(s) {
	case "", "null", "false", `""`:
		return false
	}
	if c := s[0]; c == '-' || (c >= '0' && c <= '9') {
		if f, err := strconv.ParseFloat(string(s), 64); err == nil && f == 0 {
			return false
		}
	}
	return true
}
