package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
	"wager-ledger/internal/model"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Publish_PlainTopic(t *testing.T) {
	ctx := context.Background()
	client, rmock := redismock.NewClientMock()
	payload := []byte(`{"spin_id":"s-1"}`)

	rmock.ExpectPublish("wager:events:spin_resolved", payload).SetVal(1)

	p := NewRedisPublisher(client, "wager:events:", "wager:feed", 3)
	err := p.Publish(ctx, model.TopicSpinResolved, "s-1", payload)

	assert.NoError(t, err)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisPublisher_Publish_LargeWinIsCapped(t *testing.T) {
	ctx := context.Background()
	client, rmock := redismock.NewClientMock()
	payload := []byte(`{"spin_id":"s-2","prize_amount":50000}`)

	rmock.ExpectPublish("wager:events:large_win", payload).SetVal(0)
	rmock.ExpectLPush("wager:feed", payload).SetVal(1)
	rmock.ExpectLTrim("wager:feed", 0, 2).SetVal("OK")

	p := NewRedisPublisher(client, "wager:events:", "wager:feed", 3)
	err := p.Publish(ctx, model.TopicLargeWin, "s-2", payload)

	assert.NoError(t, err)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisPublisher_Publish_Error(t *testing.T) {
	ctx := context.Background()
	client, rmock := redismock.NewClientMock()
	payload := []byte(`{}`)

	rmock.ExpectPublish("wager:events:spin_resolved", payload).SetErr(errors.New("connection refused"))

	p := NewRedisPublisher(client, "wager:events:", "wager:feed", 3)
	err := p.Publish(ctx, model.TopicSpinResolved, "", payload)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRedisFeed_Recent(t *testing.T) {
	ctx := context.Background()
	client, rmock := redismock.NewClientMock()

	win := model.LargeWin{SpinID: "s-9", AccountID: 7, PrizeAmount: 25000, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	raw, err := json.Marshal(win)
	require.NoError(t, err)

	rmock.ExpectLRange("wager:feed", 0, 9).SetVal([]string{string(raw), "not-json"})

	feed := NewRedisFeed(client, "wager:feed")
	wins, err := feed.Recent(ctx, 10)

	require.NoError(t, err)
	require.Len(t, wins, 1)
	assert.Equal(t, "s-9", wins[0].SpinID)
	assert.Equal(t, int64(25000), wins[0].PrizeAmount)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisFeed_Recent_NonPositive(t *testing.T) {
	client, _ := redismock.NewClientMock()
	feed := NewRedisFeed(client, "wager:feed")

	wins, err := feed.Recent(context.Background(), 0)

	assert.NoError(t, err)
	assert.Empty(t, wins)
}
