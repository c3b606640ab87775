// Package pubsub publishes meetup events to Google Cloud Pub/Sub, or to a
// local HTTP endpoint that receives push-formatted messages during development.
package pubsub

import (
	"encoding/json"

	"skillswap/internal/domain/service"

	"github.com/pkg/errors"
)

// message is a MeetupEvent encoded for the wire. Both publishers send the same
// payload and attributes so subscribers cannot tell them apart.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeEvent(event *service.MeetupEvent) (*message, error) {
	if event == nil {
		return nil, errors.New("meetup event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode meetup event")
	}

	attributes := map[string]string{
		"event_type":   event.EventType,
		"meetup_id":    event.MeetupID,
		"requester_id": event.RequesterID,
		"partner_id":   event.PartnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &message{
		data:       data,
		attributes: attributes,
		// a partner receives proposals in the order they were made
		orderingKey: event.PartnerID,
	}, nil
}
