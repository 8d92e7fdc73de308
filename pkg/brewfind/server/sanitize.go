package server

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	linkPolicyOnce sync.Once
	linkPolicy     *bluemonday.Policy
)

// websiteLink renders the outbound "Visit Website" anchor for a brewery.
// URLs that are not absolute http(s) links yield an empty string.
func websiteLink(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	anchor := `<a href="` + html.EscapeString(trimmed) + `">Visit Website</a>`
	cleaned := linkSanitizer().Sanitize(anchor)
	if !strings.Contains(cleaned, "href=") {
		return ""
	}
	return cleaned
}

func linkSanitizer() *bluemonday.Policy {
	linkPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireParseableURLs(true)
		policy.AllowRelativeURLs(false)
		policy.AllowURLSchemes("http", "https")
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		policy.RequireNoReferrerOnFullyQualifiedLinks(true)
		linkPolicy = policy
	})
	return linkPolicy
}
