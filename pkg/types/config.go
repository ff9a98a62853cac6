package types

import "errors"

// Summary output formats.
const (
	SummaryFormatText = "text"
	SummaryFormatJSON = "json"
)

// MemoryJournal is the journal DSN that keeps the journal in process memory.
const MemoryJournal = ":memory:"

// DefaultSeedCount is the number of items in the default seed list.
const DefaultSeedCount = 8

// Config holds the settings a quadboard session starts from.
type Config struct {
	SeedItems     []Item `json:"seed_items" yaml:"seed_items"`
	JournalDSN    string `json:"journal_dsn" yaml:"journal_dsn"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	Strict        bool   `json:"strict" yaml:"strict"`
	SummaryFormat string `json:"summary_format" yaml:"summary_format"`
}

// Config validation errors.
var (
	ErrNoSeedItems          = errors.New("seed items must not be empty")
	ErrSummaryFormatUnknown = errors.New("unknown summary format")
)

// knownSummaryFormats lists the formats that Validate accepts.
var knownSummaryFormats = map[string]bool{
	SummaryFormatText: true,
	SummaryFormatJSON: true,
}

// DefaultConfig returns the configuration used when no config file sets a
// value.
func DefaultConfig() Config {
	return Config{
		SeedItems:     DefaultSeedItems(DefaultSeedCount),
		JournalDSN:    MemoryJournal,
		LogLevel:      "warn",
		Strict:        false,
		SummaryFormat: SummaryFormatText,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if len(c.SeedItems) == 0 {
		return ErrNoSeedItems
	}
	if err := ValidateSeed(c.SeedItems); err != nil {
		return err
	}
	if !knownSummaryFormats[c.SummaryFormat] {
		return ErrSummaryFormatUnknown
	}
	return nil
}
