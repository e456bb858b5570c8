package storage

import (
	"net/url"
	"strings"
)

const pathMarker = "/o/"

// ObjectKeyFromURL bir public download URL'inden storage key'ini çözer.
// Kontrat: URL'de /o/ segmenti aranır, query string'e kadar olan kısım
// URL-decode edilir. Beklenmeyen her şekilde (marker yok, boş path, bozuk
// encoding) ok=false döner — asla panic ya da error yok, fail closed.
func ObjectKeyFromURL(rawURL string) (key string, ok bool) {
	idx := strings.Index(rawURL, pathMarker)
	if idx < 0 {
		return "", false
	}

	encoded := rawURL[idx+len(pathMarker):]
	if q := strings.IndexByte(encoded, '?'); q >= 0 {
		encoded = encoded[:q]
	}
	if encoded == "" {
		return "", false
	}

	decoded, err := url.PathUnescape(encoded)
	if err != nil || decoded == "" {
		return "", false
	}

	return decoded, true
}
