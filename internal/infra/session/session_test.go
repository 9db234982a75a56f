package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"

	"ratesmart/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore(ttl)
	store.now = clock.now

	return store, clock
}

func TestStore_GetExtendsLifetime(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	store.Save("a", Data{AccessToken: "tok"})

	clock.t = clock.t.Add(50 * time.Second)
	data, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "tok", data.AccessToken)

	clock.t = clock.t.Add(50 * time.Second)
	_, ok = store.Get("a")
	assert.True(t, ok, "touched session must survive a second interval")

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok = store.Get("a")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestStore_Sweep(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	store.Save("old", Data{})
	clock.t = clock.t.Add(30 * time.Second)
	store.Save("new", Data{})

	clock.t = clock.t.Add(45 * time.Second)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get("new")
	assert.True(t, ok)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	store.Save("a", Data{AccessToken: "tok"})

	data, _ := store.Get("a")
	data.AccessToken = "changed"

	again, _ := store.Get("a")
	assert.Equal(t, "tok", again.AccessToken)
}

func TestData_FlashIsSingleShot(t *testing.T) {
	var data Data
	data.SetFlash(FlashError, "first")
	data.SetFlash(FlashSuccess, "second")

	flash := data.TakeFlash()
	require.NotNil(t, flash)
	assert.Equal(t, Flash{Kind: FlashSuccess, Message: "second"}, *flash)
	assert.Nil(t, data.TakeFlash())
}

func TestData_Logout(t *testing.T) {
	data := Data{AccessToken: "a", IsAdmin: true, Pending: &Confirmation{Action: "reset"}}
	data.SetFlash(FlashSuccess, "bye")

	data.Logout()

	assert.False(t, data.LoggedInAdmin())
	assert.Nil(t, data.Pending)
	assert.Equal(t, "bye", data.Flash.Message)
}

func TestData_IsEmpty(t *testing.T) {
	var data Data
	assert.True(t, data.IsEmpty())

	data.SetFlash(FlashError, "Please log in.")
	assert.False(t, data.IsEmpty())

	data.TakeFlash()
	assert.True(t, data.IsEmpty())

	assert.False(t, (&Data{Pending: &Confirmation{Action: "reset"}}).IsEmpty())
	assert.False(t, (&Data{AccessToken: "tok"}).IsEmpty())
}

func TestSweeper_InvalidSpec(t *testing.T) {
	_, err := newSweeper("every now and then", NewStore(time.Minute), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}

func TestSweeper_Lifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Web: &config.WebConfig{SweepSpec: "@every 1h"}}

	_, err := NewSweeper(SweeperParams{
		Lc:     lc,
		Config: cfg,
		Store:  NewStore(time.Minute),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	lc.RequireStop()
}

func TestSweeper_StopHonoursContext(t *testing.T) {
	s, err := newSweeper("@every 1h", NewStore(time.Minute), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	s.Start()
	assert.NoError(t, s.Stop(context.Background()))
}
