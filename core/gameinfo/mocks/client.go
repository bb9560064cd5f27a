package mocks

import (
	"context"

	"lootledger/core/gameinfo"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of gameinfo.Client
type Client struct {
	mock.Mock
}

func (m *Client) ItemName(ctx context.Context, itemID string) (string, error) {
	args := m.Called(ctx, itemID)
	return args.String(0), args.Error(1)
}

func (m *Client) PlayerID(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *Client) DeathEvents(ctx context.Context, playerID string) ([]int64, error) {
	args := m.Called(ctx, playerID)
	if ids, ok := args.Get(0).([]int64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Event(ctx context.Context, eventID int64) (*gameinfo.Event, error) {
	args := m.Called(ctx, eventID)
	if event, ok := args.Get(0).(*gameinfo.Event); ok {
		return event, args.Error(1)
	}
	return nil, args.Error(1)
}
