// Package constants provides shared constants used throughout the tabfuse
// codebase. This includes file permissions, default column names, and other
// configuration values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default values
const (
	// DefaultKeyColumn is the entity key column used when none is specified
	DefaultKeyColumn = "Patient"

	// DefaultSourceColumn is the provenance column recording each row's
	// originating table
	DefaultSourceColumn = "TABLENAME"

	// DefaultXLSXSheet is the worksheet name used when writing spreadsheets
	DefaultXLSXSheet = "Sheet1"
)

// Path constants
const (
	// DefaultConfigName is the base name of the user configuration file
	DefaultConfigName = ".tabfuse"

	// DefaultConfigType is the format of the user configuration file
	DefaultConfigType = "yaml"
)

// Buffer constants
const (
	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096
)
