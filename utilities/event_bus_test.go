package utilities_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"prepwise-backend/utilities"
)

func TestEventBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := utilities.NewEventBus()

	var calls int64
	bus.Subscribe("thing_happened", func(interface{}) { atomic.AddInt64(&calls, 1) })
	bus.Subscribe("thing_happened", func(interface{}) { atomic.AddInt64(&calls, 1) })
	bus.Subscribe("other_thing", func(interface{}) { atomic.AddInt64(&calls, 100) })

	bus.Publish("thing_happened", nil)
	bus.Wait()

	require.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestEventBus_PayloadDelivered(t *testing.T) {
	bus := utilities.NewEventBus()

	got := make(chan interface{}, 1)
	bus.Subscribe("thing_happened", func(data interface{}) { got <- data })

	bus.Publish("thing_happened", "payload")
	bus.Wait()

	require.Equal(t, "payload", <-got)
}

func TestEventBus_PublishWithoutSubscribers(t *testing.T) {
	bus := utilities.NewEventBus()

	bus.Publish("nobody_listens", 42)
	bus.Wait()
}
