package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/zerr"
)

// appContractEnv is the environment shape of the deployment contract.
// Strings stay empty when unset; durations and integers carry documented
// defaults so a bare environment still yields a usable contract.
type appContractEnv struct {
	AppName       string `env:"SHERPA_APP_NAME"        envDefault:"sherpa application"`
	ShortName     string `env:"SHERPA_APP_SHORT_NAME"  envDefault:"sherpa"`
	AppVersion    string `env:"SHERPA_APP_VERSION"`
	ThemeColor    string `env:"SHERPA_THEME_COLOR"     envDefault:"#ffffff"`
	MapsAPIKey    string `env:"SHERPA_MAPS_API_KEY"`
	SheetsAPIKey  string `env:"SHERPA_SHEETS_API_KEY"`
	SpreadsheetID string `env:"SHERPA_SPREADSHEET_ID"`

	CacheTTL       time.Duration `env:"SHERPA_CACHE_TTL"       envDefault:"24h"`
	RequestTimeout time.Duration `env:"SHERPA_REQUEST_TIMEOUT" envDefault:"10s"`
	BatchSize      int           `env:"SHERPA_BATCH_SIZE"      envDefault:"25"`
	RetryCount     int           `env:"SHERPA_RETRY_COUNT"     envDefault:"3"`
}

// LoadAppContract reads the SHERPA_* deployment contract from the
// environment. A set-but-malformed value is an error; the contract's
// business meaning is never interpreted here.
func LoadAppContract() (domain.AppContract, error) {
	var contract appContractEnv
	if err := env.Parse(&contract); err != nil {
		return domain.AppContract{}, zerr.Wrap(err, domain.ErrEnvContractInvalid.Error())
	}

	return domain.AppContract{
		AppName:        contract.AppName,
		ShortName:      contract.ShortName,
		AppVersion:     contract.AppVersion,
		ThemeColor:     contract.ThemeColor,
		MapsAPIKey:     contract.MapsAPIKey,
		SheetsAPIKey:   contract.SheetsAPIKey,
		SpreadsheetID:  contract.SpreadsheetID,
		CacheTTL:       contract.CacheTTL,
		RequestTimeout: contract.RequestTimeout,
		BatchSize:      contract.BatchSize,
		RetryCount:     contract.RetryCount,
	}, nil
}
