package recordstore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLCache(t *testing.T) {
	c := NewTTLCache[string, int](50 * time.Millisecond)

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.Eventually(t, func() bool {
		_, ok := c.Get("a")
		return !ok
	}, time.Second, 10*time.Millisecond, "entry must expire at ttl even when read")

	c.Set("b", 2)
	c.Invalidate("b")
	_, ok = c.Get("b")
	require.False(t, ok)
}

func TestTTLCache_GetOrLoad(t *testing.T) {
	c := NewTTLCache[string, int](time.Minute)
	loads := 0
	load := func() (int, error) {
		loads++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", load)
		require.NoError(t, err)
		require.Equal(t, 42, v)
	}
	require.Equal(t, 1, loads)

	boom := errors.New("boom")
	_, err := c.GetOrLoad("other", func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	_, ok := c.Get("other")
	require.False(t, ok, "errors must not be cached")
}

func TestTTLCache_ZeroTTLDisablesCaching(t *testing.T) {
	c := NewTTLCache[string, int](0)
	c.Set("a", 1)
	_, ok := c.Get("a")
	require.False(t, ok)
}

func TestTTLCache_LoadRacingInvalidateIsNotStored(t *testing.T) {
	c := NewTTLCache[string, int](time.Minute)

	v, err := c.GetOrLoad("quotes", func() (int, error) {
		// a writer invalidates while the stale read is in flight
		c.Invalidate("quotes")
		return 1, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, v)
	_, ok := c.Get("quotes")
	require.False(t, ok, "stale load must not be cached")

	v, err = c.GetOrLoad("quotes", func() (int, error) { return 2, nil })
	require.NoError(t, err)
	require.Equal(t, 2, v)
	v, ok = c.Get("quotes")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
