package domain

import "time"

// AppContract carries the deployment-fixed runtime contract of the
// application sherpa compiles for. Sherpa validates presence and shape
// at build time and threads the values into emitted artifacts; it never
// interprets their business meaning.
type AppContract struct {
	AppName       string
	ShortName     string
	AppVersion    string
	ThemeColor    string
	MapsAPIKey    string
	SheetsAPIKey  string
	SpreadsheetID string

	CacheTTL       time.Duration
	RequestTimeout time.Duration
	BatchSize      int
	RetryCount     int
}
