// Package bus carries dbwd's input feeds and actuation commands over gomsgq
// shared-memory channels, one named channel per feed. Events are JSON-encoded
// structs; subscribers conflate so a reader always observes the latest value.
package bus

import (
	"encoding/json"

	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
)

type Subscriber[T any] struct {
	Sub gomsgq.MsgqSubscriber
}

// Read returns the most recent event on the channel, or success == false when
// nothing new arrived or the payload could not be decoded.
func (s *Subscriber[T]) Read() (obj T, success bool) {
	return decode[T](s.Sub.Read())
}

func decode[T any](data []byte) (obj T, success bool) {
	if len(data) == 0 {
		return obj, false
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return obj, false
	}
	return obj, true
}

func NewSubscriber[T any](name string, conflate bool) (subscriber Subscriber[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, GetSegmentSize(name))
	if err != nil {
		panic(err)
	}
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	subscriber.Sub = sub
	return subscriber
}

type Publisher[T any] struct {
	Pub gomsgq.MsgqPublisher
}

func (p *Publisher[T]) Send(obj T) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return errors.Wrap(err, "could not marshal event")
	}
	p.Pub.Send(b)
	return nil
}

func NewPublisher[T any](name string) (publisher Publisher[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, GetSegmentSize(name))
	if err != nil {
		panic(err)
	}
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	publisher.Pub = pub
	return publisher
}
