//go:build unit

package usecase_test

import (
	"testing"

	"tripflow/internal/infra/avinode"
	"tripflow/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDeepLink(t *testing.T) {
	const selectionURL = "https://sandbox.avinode.com/marketplace/mvc/trips/selection/atrip-65262230"
	const viewURL = "https://sandbox.avinode.com/marketplace/mvc/trips/view/atrip-65262230"

	payload := func(actions map[string]avinode.Link) *avinode.TripPayload {
		return &avinode.TripPayload{ID: "atrip-65262230", Actions: actions}
	}

	t.Run("searchInAvinode preferred over viewInAvinode", func(t *testing.T) {
		got := usecase.ExtractDeepLink(payload(map[string]avinode.Link{
			"searchInAvinode": {Href: selectionURL},
			"viewInAvinode":   {Href: viewURL},
		}))
		require.NotNil(t, got)
		assert.Equal(t, selectionURL, *got)
	})

	t.Run("falls back to viewInAvinode", func(t *testing.T) {
		got := usecase.ExtractDeepLink(payload(map[string]avinode.Link{
			"viewInAvinode": {Href: viewURL},
		}))
		require.NotNil(t, got)
		assert.Equal(t, viewURL, *got)
	})

	t.Run("foreign hosts rejected", func(t *testing.T) {
		got := usecase.ExtractDeepLink(payload(map[string]avinode.Link{
			"searchInAvinode": {Href: "https://evil.example.com/trips/view/atrip-1"},
		}))
		assert.Nil(t, got)
	})

	t.Run("lookalike host rejected", func(t *testing.T) {
		got := usecase.ExtractDeepLink(payload(map[string]avinode.Link{
			"searchInAvinode": {Href: "https://avinode.com.evil.example/trips"},
		}))
		assert.Nil(t, got)
	})

	t.Run("unrelated actions ignored", func(t *testing.T) {
		got := usecase.ExtractDeepLink(payload(map[string]avinode.Link{
			"cancelTrip": {Href: selectionURL},
		}))
		assert.Nil(t, got)
	})

	t.Run("nil payload and empty actions", func(t *testing.T) {
		assert.Nil(t, usecase.ExtractDeepLink(nil))
		assert.Nil(t, usecase.ExtractDeepLink(payload(nil)))
	})
}
