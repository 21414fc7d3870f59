package config

import (
	"log"
	"os"
	"strconv"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port     string
	LogLevel string

	GCPProjectID string
	GCPLocation  string
	ModelName    string

	StorageBackend string // "memory", "sqlite" or "firestore"
	SQLitePath     string
	CatalogPath    string // optional YAML override of the embedded catalog
	UseVertexMuse  bool   // false = deterministic phrasing only

	// Trainer tuning constants.
	BanishThreshold  int // word count at which banishment triggers
	RepetitionWindow int // K most recent signatures compared
	CohesionGap      int // lines of silence before a theme goes stale
	SignaturePrefix  int // tokens in the structural signature prefix
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("GYM_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port:     getEnv("GYM_PORT", "8080"),
		LogLevel: getEnv("GYM_LOG_LEVEL", "info"),

		GCPProjectID: getEnv("GYM_GCP_PROJECT", ""),
		GCPLocation:  getEnv("GYM_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("GYM_MODEL_NAME", "gemini-2.5-flash"),

		StorageBackend: getEnv("GYM_STORAGE_BACKEND", "memory"),
		SQLitePath:     getEnv("GYM_SQLITE_PATH", "gymnasion.db"),
		CatalogPath:    getEnv("GYM_CATALOG_PATH", ""),
		UseVertexMuse:  getBoolEnv("GYM_USE_VERTEX_MUSE", false),

		BanishThreshold:  getIntEnv("GYM_BANISH_THRESHOLD", 3),
		RepetitionWindow: getIntEnv("GYM_REPETITION_WINDOW", 3),
		CohesionGap:      getIntEnv("GYM_COHESION_GAP", 5),
		SignaturePrefix:  getIntEnv("GYM_SIGNATURE_PREFIX", 4),
	}

	// Minimal validation in GCP mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("GYM_GCP_PROJECT must be set in gcp mode")
	}

	return cfg
}
