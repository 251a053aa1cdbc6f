// Package storage holds the object naming scheme shared by the blob drivers.
//
// Every stored object is named <unix-millis>.<ext> and exposed to clients
// under the locator /uploads/<name>.
package storage

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// PublicPrefix is the URL path under which stored objects are served.
const PublicPrefix = "/uploads/"

// MaxNameAttempts bounds how many successive timestamps a driver tries
// before giving up on a colliding name.
const MaxNameAttempts = 100

var allowedExt = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {},
}

// Ext returns the lowercased extension of a client filename, without the
// dot. Anything but a known image type yields domain.ErrUnsupportedFileType.
func Ext(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if _, ok := allowedExt[ext]; !ok {
		return "", fmt.Errorf("%q: %w", filename, domain.ErrUnsupportedFileType)
	}
	return ext, nil
}

// ObjectName builds the name for attempt n (0-based) at time t.
func ObjectName(t time.Time, n int, ext string) string {
	return strconv.FormatInt(t.UnixMilli()+int64(n), 10) + "." + ext
}

// Locator returns the public locator for an object name.
func Locator(name string) string {
	return PublicPrefix + name
}

// NameFromLocator extracts the object name from a locator. It rejects
// locators outside PublicPrefix and names with path components.
func NameFromLocator(locator string) (string, error) {
	name, ok := strings.CutPrefix(locator, PublicPrefix)
	if !ok || name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid locator %q", locator)
	}
	return name, nil
}

// ContentType maps an allowed extension to its MIME type.
func ContentType(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
