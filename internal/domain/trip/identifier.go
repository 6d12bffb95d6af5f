package trip

import "strings"

// Marketplace identifiers circulate in two forms: a bare numeric token
// ("65262230") and a resource-prefixed one ("atrip-65262230"). Different
// upstream endpoints accept different forms, so callers must be prepared
// to try both.
const (
	TripIDPrefix  = "atrip-"
	RFQIDPrefix   = "arfq-"
	QuoteIDPrefix = "aquote-"
)

var knownPrefixes = []string{TripIDPrefix, RFQIDPrefix, QuoteIDPrefix}

// Bare strips any known resource prefix from an identifier.
func Bare(id string) string {
	for _, p := range knownPrefixes {
		if strings.HasPrefix(id, p) {
			return strings.TrimPrefix(id, p)
		}
	}
	return id
}

// TripIDForms returns the identifier forms to try when fetching a trip:
// the caller's form as given, then the alternate. The upstream is not
// consistent about which form a given endpoint expects.
func TripIDForms(id string) []string {
	bare := Bare(id)
	prefixed := TripIDPrefix + bare
	if id == prefixed {
		return []string{prefixed, bare}
	}
	return []string{id, prefixed}
}

// RFQIDForms returns the forms to try for an RFQ fetch, prefixed first.
func RFQIDForms(id string) []string {
	bare := Bare(id)
	return []string{RFQIDPrefix + bare, bare}
}

// QuoteIDForms returns the forms to try for a quote fetch. The prefixed
// form is authoritative; the bare numeric form is the fallback.
func QuoteIDForms(id string) []string {
	bare := Bare(id)
	return []string{QuoteIDPrefix + bare, bare}
}
