package messagestream_test

import (
	"context"
	"testing"

	"booking-gateway/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	handler := func(msg *message.Message) error {
		return nil
	}

	router, err := messagestream.NewRouter(pubSub, "poisoned_booking", "mirror_booking", "booking_forwarded", pubSub, handler)
	require.NoError(t, err)
	assert.NotNil(t, router)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = router.Run(ctx)
	}()
	<-router.Running()

	err = router.Close()
	assert.NoError(t, err)
}
