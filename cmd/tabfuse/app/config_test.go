package app

import (
	"os"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel stays empty here (triggers precedence logic in logger.go)
	if config.KeyColumn == "" {
		t.Error("KeyColumn not set to default")
	}
	if config.Policy == "" {
		t.Error("Policy not set to default")
	}
	if config.SourceColumn == "" {
		t.Error("SourceColumn not set to default")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_Defaults verifies the shipped default values.
func TestConfig_Defaults(t *testing.T) {
	// Clear any ambient overrides
	for _, envVar := range []string{"TABFUSE_KEY_COLUMN", "TABFUSE_POLICY", "TABFUSE_SOURCE_COLUMN"} {
		old := os.Getenv(envVar)
		os.Setenv(envVar, "")
		defer os.Setenv(envVar, old)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.KeyColumn != "Patient" {
		t.Errorf("KeyColumn = %s, want Patient", config.KeyColumn)
	}
	if config.Policy != "override" {
		t.Errorf("Policy = %s, want override", config.Policy)
	}
	if config.SourceColumn != "TABLENAME" {
		t.Errorf("SourceColumn = %s, want TABLENAME", config.SourceColumn)
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	// Save original env
	oldVerbose := os.Getenv("TABFUSE_VERBOSE")
	oldFormat := os.Getenv("TABFUSE_FORMAT")
	defer func() {
		os.Setenv("TABFUSE_VERBOSE", oldVerbose)
		os.Setenv("TABFUSE_FORMAT", oldFormat)
	}()

	// Set test environment variables
	os.Setenv("TABFUSE_VERBOSE", "true")
	os.Setenv("TABFUSE_FORMAT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("TABFUSE_VERBOSE environment variable not loaded")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
}

// TestConfig_ReconciliationSettings verifies the merge defaults load from env.
func TestConfig_ReconciliationSettings(t *testing.T) {
	// Save original env
	oldKey := os.Getenv("TABFUSE_KEY_COLUMN")
	oldPolicy := os.Getenv("TABFUSE_POLICY")
	oldSource := os.Getenv("TABFUSE_SOURCE_COLUMN")
	defer func() {
		os.Setenv("TABFUSE_KEY_COLUMN", oldKey)
		os.Setenv("TABFUSE_POLICY", oldPolicy)
		os.Setenv("TABFUSE_SOURCE_COLUMN", oldSource)
	}()

	// Set test values
	os.Setenv("TABFUSE_KEY_COLUMN", "SampleID")
	os.Setenv("TABFUSE_POLICY", "fail")
	os.Setenv("TABFUSE_SOURCE_COLUMN", "ORIGIN")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.KeyColumn != "SampleID" {
		t.Errorf("KeyColumn = %s, want SampleID", config.KeyColumn)
	}
	if config.Policy != "fail" {
		t.Errorf("Policy = %s, want fail", config.Policy)
	}
	if config.SourceColumn != "ORIGIN" {
		t.Errorf("SourceColumn = %s, want ORIGIN", config.SourceColumn)
	}
}

// TestConfig_NATokens verifies missing-value markers parse from env.
func TestConfig_NATokens(t *testing.T) {
	// Save original env
	oldTokens := os.Getenv("TABFUSE_NA_TOKENS")
	defer os.Setenv("TABFUSE_NA_TOKENS", oldTokens)

	// Space-separated list
	os.Setenv("TABFUSE_NA_TOKENS", "NA ND -")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if len(config.NATokens) != 3 {
		t.Fatalf("NATokens = %v, want 3 tokens", config.NATokens)
	}
	if config.NATokens[0] != "NA" || config.NATokens[1] != "ND" || config.NATokens[2] != "-" {
		t.Errorf("NATokens = %v, want [NA ND -]", config.NATokens)
	}
}

// TestConfig_LoggingOptions verifies logging configuration.
func TestConfig_LoggingOptions(t *testing.T) {
	// Save original env
	oldFormat := os.Getenv("LOG_FORMAT")
	oldOutput := os.Getenv("LOG_OUTPUT")
	defer func() {
		os.Setenv("LOG_FORMAT", oldFormat)
		os.Setenv("LOG_OUTPUT", oldOutput)
	}()

	// Set test values
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", config.LogFormat)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %s, want stdout", config.LogOutput)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "table",
		LogLevel: "",
	}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if config.Quiet {
		t.Error("Quiet flag applied, want false")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
}

// TestConfig_UpdateFromFlags_EmptyPreserves verifies unset string flags
// keep the configured values.
func TestConfig_UpdateFromFlags_EmptyPreserves(t *testing.T) {
	config := &Config{
		Format:   "yaml",
		LogLevel: "warn",
	}

	config.UpdateFromFlags(false, false, false, "", "")

	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml (preserved)", config.Format)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn (preserved)", config.LogLevel)
	}
}
