//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeMarketplace is an in-process stand-in for the upstream API. It
// serves canned payloads under the real URL layout and enforces the
// authentication headers so a header regression fails loudly here.
type fakeMarketplace struct {
	mu     sync.RWMutex
	trips  map[string]json.RawMessage
	rfqs   map[string]json.RawMessage
	quotes map[string]json.RawMessage
	server *httptest.Server
}

func newFakeMarketplace(t *testing.T) *fakeMarketplace {
	m := &fakeMarketplace{
		trips:  map[string]json.RawMessage{},
		rfqs:   map[string]json.RawMessage{},
		quotes: map[string]json.RawMessage{},
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

func (m *fakeMarketplace) SetTrip(id string, payload string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[id] = json.RawMessage(payload)
}

func (m *fakeMarketplace) SetRFQ(id string, payload string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rfqs[id] = json.RawMessage(payload)
}

func (m *fakeMarketplace) SetQuote(id string, payload string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[id] = json.RawMessage(payload)
}

func (m *fakeMarketplace) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Avinode-ApiToken") == "" || !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/"), "/")
	if len(parts) != 2 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var store map[string]json.RawMessage
	switch parts[0] {
	case "trips":
		store = m.trips
	case "rfqs":
		store = m.rfqs
	case "quotes":
		store = m.quotes
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	payload, ok := store[parts[1]]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	envelope := map[string]json.RawMessage{"data": payload}
	_ = json.NewEncoder(w).Encode(envelope)
}
