package db

import (
	"fmt"
	"strings"
)

// Driver identifies a document store backend
type Driver string

const (
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DriverFromURL picks the backend from the connection string scheme
func DriverFromURL(url string) (Driver, error) {
	url = strings.TrimSpace(url)
	switch {
	case url == "":
		return "", fmt.Errorf("database URL is empty")
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return DriverMongo, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database URL scheme in %q", MaskURL(url))
	}
}

// SQLitePath extracts the file path from a sqlite:// or file: URL
func SQLitePath(url string) string {
	url = strings.TrimSpace(url)
	if strings.HasPrefix(url, "sqlite://") {
		return strings.TrimPrefix(url, "sqlite://")
	}
	return url
}

// MaskURL hides credentials so a connection string can be logged
func MaskURL(url string) string {
	schemeEnd := strings.Index(url, "://")
	at := strings.LastIndex(url, "@")
	if schemeEnd < 0 || at < schemeEnd {
		return url
	}
	return url[:schemeEnd+3] + "***" + url[at:]
}
