package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/tabfuse/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "merge",
			Message:   "output path cannot be empty",
		}
		assert.Contains(t, err.Error(), "merge")
		assert.Contains(t, err.Error(), "output path cannot be empty")
	})

	t.Run("without component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{Message: "no inputs"}
		assert.Equal(t, "configuration error: no inputs", err.Error())
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("discover", "path unreadable", nil)
		assert.Contains(t, err.Error(), "discover")
		assert.Contains(t, err.Error(), "path unreadable")
		assert.True(t, pkgerrors.IsConfig(err))
	})

	t.Run("key column", func(t *testing.T) {
		err := pkgerrors.NewKeyColumnError("visits.csv", "Patient")
		assert.Contains(t, err.Error(), "visits.csv")
		assert.Contains(t, err.Error(), "Patient")
		assert.True(t, errors.Is(err, pkgerrors.ErrKeyColumnMissing))
		assert.True(t, pkgerrors.IsKeyColumnMissing(err))
		assert.True(t, pkgerrors.IsConfig(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "policy",
			Message: "unknown policy name",
		}
		assert.Equal(t, "validation failed for field policy: unknown policy name", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "conflicting values between tables",
		}
		assert.Equal(t, "validation failed: conflicting values between tables", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("key", "Patient ", "contains trailing whitespace")
		assert.Contains(t, err.Error(), "key")
		assert.Contains(t, err.Error(), "trailing whitespace")
	})
}

func TestUnsupportedFormatError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := &pkgerrors.UnsupportedFormatError{
			Path:      "data/legacy.xls",
			Extension: ".xls",
		}
		assert.Contains(t, err.Error(), ".xls")
		assert.Contains(t, err.Error(), "data/legacy.xls")
		assert.True(t, errors.Is(err, pkgerrors.ErrUnsupportedFormat))
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.UnsupportedFormatError{Extension: ".parquet"}
		assert.Contains(t, err.Error(), ".parquet")
		assert.NotContains(t, err.Error(), "for ")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewUnsupportedFormatError("notes.txt", ".txt")
		assert.True(t, pkgerrors.IsUnsupportedFormat(err))
	})
}

func TestNotADirectoryError(t *testing.T) {
	err := pkgerrors.NewNotADirectoryError("/tmp/patients.csv")
	assert.Equal(t, "/tmp/patients.csv is not a directory", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrNotADirectory))
	assert.True(t, pkgerrors.IsNotADirectory(err))
}

func TestParseError(t *testing.T) {
	t.Run("with file and position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "visits.csv",
			Line:    12,
			Column:  3,
			Message: "bare quote in field",
		}
		assert.Contains(t, err.Error(), "csv")
		assert.Contains(t, err.Error(), "visits.csv")
		assert.Contains(t, err.Error(), "12:3")
		assert.Contains(t, err.Error(), "bare quote in field")
	})

	t.Run("with file only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "xlsx",
			File:    "cohort.xlsx",
			Message: "sheet not found",
		}
		assert.Contains(t, err.Error(), "xlsx")
		assert.Contains(t, err.Error(), "cohort.xlsx")
		assert.Contains(t, err.Error(), "sheet not found")
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "tsv",
			Message: "missing header row",
		}
		assert.Contains(t, err.Error(), "tsv parse error")
		assert.Contains(t, err.Error(), "missing header row")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("csv", "empty.csv", "unexpected end", baseErr)
		assert.Contains(t, err.Error(), "csv")
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("tsv", "data.tsv", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "tsv", parseErr.Format)
		assert.Equal(t, "data.tsv", parseErr.File)
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/data/visits.csv",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/data/visits.csv")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/merged.csv", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("no such file")
		err := pkgerrors.WrapIO("open", "missing.tsv", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "open", ioErr.Operation)
		assert.Equal(t, "missing.tsv", ioErr.Path)
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsConflict", func(t *testing.T) {
		assert.True(t, pkgerrors.IsConflict(pkgerrors.ErrConflicts))
		assert.False(t, pkgerrors.IsConflict(errors.New("conflicting values")))
	})

	t.Run("IsUnsupportedFormat", func(t *testing.T) {
		err1 := pkgerrors.NewUnsupportedFormatError("a.txt", ".txt")
		err2 := errors.New("unsupported")

		assert.True(t, pkgerrors.IsUnsupportedFormat(err1))
		assert.False(t, pkgerrors.IsUnsupportedFormat(err2))
		assert.True(t, pkgerrors.IsUnsupportedFormat(pkgerrors.ErrUnsupportedFormat))
	})

	t.Run("IsNotADirectory", func(t *testing.T) {
		assert.True(t, pkgerrors.IsNotADirectory(pkgerrors.NewNotADirectoryError("x")))
	})

	t.Run("IsCanceled", func(t *testing.T) {
		assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	})

	t.Run("IsConfig distinguishes classes", func(t *testing.T) {
		assert.True(t, pkgerrors.IsConfig(pkgerrors.NewConfigError("cli", "bad flag", nil)))
		assert.False(t, pkgerrors.IsConfig(pkgerrors.NewValidationError("f", nil, "m")))
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("delimiter", errors.New("must be one rune"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "delimiter")
		assert.Contains(t, err.Error(), "must be one rune")

		// nil error returns nil
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("WrapIO", func(t *testing.T) {
		err := pkgerrors.WrapIO("write", "/tmp/out.csv", errors.New("disk full"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/out.csv")

		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapConfig", func(t *testing.T) {
		base := errors.New("env var unset")
		err := pkgerrors.WrapConfig("app", base)
		assert.NotNil(t, err)
		assert.True(t, pkgerrors.IsConfig(err))
		assert.True(t, errors.Is(err, base))

		assert.Nil(t, pkgerrors.WrapConfig("app", nil))
	})
}

func TestErrorChaining(t *testing.T) {
	t.Run("multiple wrapping", func(t *testing.T) {
		baseErr := errors.New("connection reset")
		ioErr := pkgerrors.WrapIO("read", "shared/visits.csv", baseErr)
		cfgErr := &pkgerrors.ConfigError{
			Component: "loader",
			Message:   "cannot read input",
			Err:       ioErr,
		}

		assert.Equal(t, ioErr, cfgErr.Unwrap())

		var targetIOErr *pkgerrors.IOError
		assert.True(t, errors.As(cfgErr, &targetIOErr))
		assert.Equal(t, "read", targetIOErr.Operation)
		assert.True(t, errors.Is(cfgErr, baseErr))
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNoInputs", pkgerrors.ErrNoInputs},
		{"ErrInvalidInput", pkgerrors.ErrInvalidInput},
		{"ErrKeyColumnMissing", pkgerrors.ErrKeyColumnMissing},
		{"ErrUnsupportedFormat", pkgerrors.ErrUnsupportedFormat},
		{"ErrNotADirectory", pkgerrors.ErrNotADirectory},
		{"ErrConflicts", pkgerrors.ErrConflicts},
		{"ErrCanceled", pkgerrors.ErrCanceled},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
