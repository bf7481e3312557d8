package eventbus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/ghazalrb98/sep/pkg/eventbus"
)

type createdEvent struct {
	ID int
}

type updatedEvent struct {
	ID int
}

func newBus() eventbus.EventBus {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return eventbus.NewEventPublisher(log)
}

func TestEventBus_PublishMatchesSignature(t *testing.T) {
	bus := newBus()

	var created []createdEvent
	var updated []updatedEvent
	bus.Subscribe(func(e createdEvent) { created = append(created, e) })
	bus.Subscribe(func(e updatedEvent) { updated = append(updated, e) })

	bus.Publish(createdEvent{ID: 1})
	bus.Publish(createdEvent{ID: 2})
	bus.Publish(updatedEvent{ID: 3})

	assert.Equal(t, []createdEvent{{ID: 1}, {ID: 2}}, created)
	assert.Equal(t, []updatedEvent{{ID: 3}}, updated)
}

func TestEventBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := newBus()

	calls := 0
	bus.Subscribe(func(e createdEvent) { panic("boom") })
	bus.Subscribe(func(e createdEvent) { calls++ })

	assert.NotPanics(t, func() {
		bus.Publish(createdEvent{ID: 1})
	})
	assert.Equal(t, 1, calls)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := newBus()

	calls := 0
	handler := func(e createdEvent) { calls++ }
	bus.Subscribe(handler)
	assert.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	assert.Equal(t, 0, bus.SubscribersCount())

	bus.Publish(createdEvent{ID: 1})
	assert.Equal(t, 0, calls)
}

func TestEventBus_Clear(t *testing.T) {
	bus := newBus()
	bus.Subscribe(func(e createdEvent) {})
	bus.Subscribe(func(e updatedEvent) {})
	bus.Clear()
	assert.Equal(t, 0, bus.SubscribersCount())
}

func TestEventBus_SubscribeRejectsNonFunction(t *testing.T) {
	bus := newBus()
	assert.Panics(t, func() {
		bus.Subscribe("not a function")
	})
}
