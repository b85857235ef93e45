package message

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipInvalidEventsMiddleware(t *testing.T) {
	var handled bool
	handler := skipInvalidEventsMiddleware(func(msg *message.Message) ([]*message.Message, error) {
		handled = true
		return nil, nil
	})

	t.Run("invalid payload is acknowledged without handling", func(t *testing.T) {
		handled = false
		msg := message.NewMessage("1", []byte("{not json"))

		_, err := handler(msg)

		require.NoError(t, err)
		assert.False(t, handled)
	})

	t.Run("valid payload passes through", func(t *testing.T) {
		handled = false
		msg := message.NewMessage("2", []byte(`{"header":{}}`))

		_, err := handler(msg)

		require.NoError(t, err)
		assert.True(t, handled)
	})
}

func TestCorrelationIDMiddleware(t *testing.T) {
	handler := correlationIDMiddleware(func(msg *message.Message) ([]*message.Message, error) {
		return nil, nil
	})

	msg := message.NewMessage("1", []byte(`{}`))
	_, err := handler(msg)
	require.NoError(t, err)

	assert.NotEmpty(t, middleware.MessageCorrelationID(msg))
}
