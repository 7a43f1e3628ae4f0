// Package sanitizer cleans user-authored HTML before it is stored.
package sanitizer

import (
	"aiclub/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer builds a sanitizer on the bluemonday UGC policy. Blog bodies
// keep headings, lists, tables, links and images; scripts, styles, iframes and
// event handler attributes are removed. External links open in a new tab
// without a referrer.
func NewHTMLSanitizer() service.HTMLSanitizer {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	return &htmlSanitizer{policy: p}
}

// Sanitize returns the safe subset of html. The policy is safe for concurrent use.
func (s *htmlSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
