package service

// HTMLSanitizer strips unsafe markup from user-authored HTML.
type HTMLSanitizer interface {
	Sanitize(html string) string
}
