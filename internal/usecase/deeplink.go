package usecase

import (
	"regexp"

	"tripflow/internal/infra/avinode"
)

// deepLinkPattern matches the marketplace's public selection URLs. Links
// pointing anywhere else (operator consoles, static assets) are ignored.
var deepLinkPattern = regexp.MustCompile(`^https://([a-z0-9-]+\.)*avinode\.com/`)

// deepLinkActions are scanned in order; searchInAvinode is the link the
// customer completes selection with, viewInAvinode the read-only view.
var deepLinkActions = []string{"searchInAvinode", "viewInAvinode"}

// ExtractDeepLink scans the already-fetched trip payload for the
// marketplace selection URL. A nil result is the expected state while
// operators are still responding, not a failure.
func ExtractDeepLink(payload *avinode.TripPayload) *string {
	if payload == nil || len(payload.Actions) == 0 {
		return nil
	}
	for _, action := range deepLinkActions {
		link, ok := payload.Actions[action]
		if !ok || link.Href == "" {
			continue
		}
		if deepLinkPattern.MatchString(link.Href) {
			href := link.Href
			return &href
		}
	}
	return nil
}
