package domain

import (
	"fmt"
	"net/url"
)

// DefaultFavicon is used when the bookmark URL cannot be parsed.
const DefaultFavicon = "icons/icon16.png"

const faviconService = "https://www.google.com/s2/favicons?domain=%s&sz=32"

// FaviconURL derives the favicon address for a bookmark URL from the
// fixed favicon-service template.
func FaviconURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return DefaultFavicon
	}
	return fmt.Sprintf(faviconService, u.Hostname())
}
