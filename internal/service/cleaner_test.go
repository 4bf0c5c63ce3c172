package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	servermocks "github.com/dtroode/watchlist-server/internal/mocks"
	"github.com/dtroode/watchlist-server/internal/testutil"
)

func TestStartSessionCleaner(t *testing.T) {
	tests := []struct {
		name    string
		removed int64
		err     error
	}{
		{name: "removes sessions", removed: 3},
		{name: "nothing to remove", removed: 0},
		{name: "store failure is logged", err: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := servermocks.NewSessionStore(t)
			called := make(chan struct{}, 1)
			store.On("DeleteExpired", mock.Anything, mock.AnythingOfType("time.Time")).
				Run(func(mock.Arguments) {
					select {
					case called <- struct{}{}:
					default:
					}
				}).
				Return(tt.removed, tt.err)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			StartSessionCleaner(ctx, store, 5*time.Millisecond, testutil.MakeNoopLogger())

			select {
			case <-called:
			case <-time.After(time.Second):
				t.Fatal("cleaner did not run")
			}
		})
	}
}
