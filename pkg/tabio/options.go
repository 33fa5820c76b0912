package tabio

import (
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Option configures loading and writing.
type Option func(*config)

// config carries the settings for one load or write.
type config struct {
	delimiter rune
	na        tables.NATokens
	sheet     string
}

// defaultConfig returns the settings used when no options are given.
func defaultConfig() config {
	return config{na: tables.DefaultNATokens()}
}

// apply folds the options into the default configuration.
func apply(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDelimiter overrides the field delimiter for delimited text
// formats. The default is a comma for CSV and a tab for TSV.
func WithDelimiter(d rune) Option {
	return func(c *config) {
		c.delimiter = d
	}
}

// WithNATokens replaces the token set mapped to missing cells during
// loading. A nil set keeps the defaults.
func WithNATokens(na tables.NATokens) Option {
	return func(c *config) {
		if na != nil {
			c.na = na
		}
	}
}

// WithSheet selects the worksheet of a workbook. Loading defaults to
// the first sheet, writing to "Sheet1".
func WithSheet(name string) Option {
	return func(c *config) {
		c.sheet = name
	}
}
