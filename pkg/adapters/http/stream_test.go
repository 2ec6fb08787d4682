package http_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/zerohour"
	"github.com/aretw0/zerohour/internal/logging"
	httpadapter "github.com/aretw0/zerohour/pkg/adapters/http"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamManager_Broadcast(t *testing.T) {
	sm := httpadapter.NewStreamManager(logging.NewNop())
	ch, cancel := sm.Subscribe()
	assert.Equal(t, 1, sm.Subscribers())

	sm.Broadcast("hello")
	assert.Equal(t, "hello", <-ch)

	cancel()
	assert.Equal(t, 0, sm.Subscribers())
	_, ok := <-ch
	assert.False(t, ok)

	// A second cancel is a no-op.
	cancel()
}

func TestStreamManager_DropsWhenFull(t *testing.T) {
	sm := httpadapter.NewStreamManager(logging.NewNop())
	ch, cancel := sm.Subscribe()
	defer cancel()

	for i := 0; i < 20; i++ {
		sm.Broadcast("x")
	}
	assert.Len(t, ch, 10)
}

func TestSubscribeEvents(t *testing.T) {
	sm := httpadapter.NewStreamManager(logging.NewNop())
	dash := newDashboard(t, zerohour.WithLifecycleHooks(sm.Hooks()))
	srv := httptest.NewServer(httpadapter.NewHandler(dash, httpadapter.WithStreams(sm)))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/scenario/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readData := func() string {
		t.Helper()
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "data: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "data: "))
			}
		}
	}

	assert.Equal(t, "connected", readData())
	require.Eventually(t, func() bool { return sm.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	_, err = dash.SetState(domain.StateSignalConvergence)
	require.NoError(t, err)

	data := readData()
	assert.Contains(t, data, `"kind":"state"`)
	assert.Contains(t, data, `"state":"signal_convergence"`)
}
