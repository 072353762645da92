package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndDrain(t *testing.T) {
	svc := NewService(time.Minute)
	ctx := context.Background()

	svc.Push(ctx, "p1", "Appointment booked", "first")
	svc.Push(ctx, "p1", "Appointment booked", "second")
	svc.Push(ctx, "d1", "New appointment", "other user")

	got := svc.Drain(ctx, "p1")
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, "second", got[1].Message)

	// A drain clears the bucket.
	assert.Empty(t, svc.Drain(ctx, "p1"))

	// Other users are untouched.
	assert.Len(t, svc.Drain(ctx, "d1"), 1)
}

func TestDrainEmpty(t *testing.T) {
	svc := NewService(time.Minute)
	assert.Empty(t, svc.Drain(context.Background(), "nobody"))
}

func TestNotificationsExpire(t *testing.T) {
	svc := NewService(20 * time.Millisecond)
	ctx := context.Background()

	svc.Push(ctx, "p1", "Appointment booked", "goes away")
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, svc.Drain(ctx, "p1"))
}
