package message_test

import (
	"context"
	"testing"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/testutil"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_StoresVerbatim(t *testing.T) {
	repo := testutil.NewMemMessageRepo()
	uc := message.NewMessageUseCase(repo)

	ack, err := uc.Send(context.Background(), domain.Message{
		"from_userId": "a",
		"to_userId":   "b",
		"message":     "hi",
		"extra_field": 42,
	})
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.NotEmpty(t, ack.InsertedID)

	got, err := uc.GetDirected(context.Background(), "a", "b")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hi", got[0]["message"])
	assert.Equal(t, 42, got[0]["extra_field"], "arbitrary fields survive untouched")
}

func TestGetDirected_ExcludesReverse(t *testing.T) {
	repo := testutil.NewMemMessageRepo()
	uc := message.NewMessageUseCase(repo)

	for _, m := range []domain.Message{
		{"from_userId": "a", "to_userId": "b", "message": "one"},
		{"from_userId": "b", "to_userId": "a", "message": "two"},
	} {
		_, err := uc.Send(context.Background(), m)
		require.NoError(t, err)
	}

	got, err := uc.GetDirected(context.Background(), "a", "b")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "one", got[0]["message"])

	got, err = uc.GetDirected(context.Background(), "b", "a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "two", got[0]["message"])
}
