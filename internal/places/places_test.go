package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, calls *int32, inputs *[]string, mu *sync.Mutex) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if inputs != nil {
			mu.Lock()
			*inputs = append(*inputs, r.URL.Query().Get("input"))
			mu.Unlock()
		}
		w.Write([]byte(`{"predictions":[{"description":"28 May küç. 5, Baku","place_id":"p1"}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAutocompleteLookup(t *testing.T) {
	var calls int32
	srv := testServer(t, &calls, nil, nil)

	c := NewClient(srv.URL, "secret-key", zerolog.Nop())
	c.debounce = time.Millisecond

	got, err := c.Autocomplete(context.Background(), "sess-1", "28 May")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "28 May küç. 5, Baku", got[0].Description)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAutocompleteDebounceTrailing(t *testing.T) {
	var calls int32
	var mu sync.Mutex
	var inputs []string
	srv := testServer(t, &calls, &inputs, &mu)

	c := NewClient(srv.URL, "secret-key", zerolog.Nop())
	c.debounce = 200 * time.Millisecond

	var wg sync.WaitGroup
	var firstResult []Suggestion

	wg.Add(1)
	go func() {
		defer wg.Done()
		res, err := c.Autocomplete(context.Background(), "sess-1", "2")
		require.NoError(t, err)
		firstResult = res
	}()

	// A second keystroke arrives inside the debounce window.
	time.Sleep(50 * time.Millisecond)
	second, err := c.Autocomplete(context.Background(), "sess-1", "28 May")
	require.NoError(t, err)
	wg.Wait()

	// Only the trailing query reached the upstream.
	assert.Nil(t, firstResult)
	require.Len(t, second, 1)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"28 May"}, inputs)
}

func TestAutocompleteSeparateKeysDoNotInterfere(t *testing.T) {
	var calls int32
	srv := testServer(t, &calls, nil, nil)

	c := NewClient(srv.URL, "secret-key", zerolog.Nop())
	c.debounce = 50 * time.Millisecond

	var wg sync.WaitGroup
	for _, key := range []string{"sess-1", "sess-2"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			res, err := c.Autocomplete(context.Background(), key, "query")
			assert.NoError(t, err)
			assert.Len(t, res, 1)
		}(key)
	}
	wg.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestAutocompleteCancelledContext(t *testing.T) {
	var calls int32
	srv := testServer(t, &calls, nil, nil)

	c := NewClient(srv.URL, "secret-key", zerolog.Nop())
	c.debounce = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Autocomplete(ctx, "sess-1", "query")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestAutocompleteUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "secret-key", zerolog.Nop())
	c.debounce = time.Millisecond

	got, err := c.Autocomplete(context.Background(), "sess-1", "query")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestStaticMapKeyStaysServerSide(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "secret-key", zerolog.Nop())

	img, contentType, err := c.StaticMap(context.Background(), "28 May küç. 5")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("png-bytes"), img)
}
