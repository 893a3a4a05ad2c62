// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Layer optional YAML file and SKYQUIZ_-prefixed env vars over defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Store backend names accepted by StoreBackend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"required|in:debug,info,warn,error"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// StoreBackend selects the persistence backend: sqlite or file.
	StoreBackend string `koanf:"store_backend" validate:"required|in:sqlite,file"`

	// SQLitePath is the database file used when the backend is sqlite.
	SQLitePath string `koanf:"sqlite_path" validate:"required"`

	// FileStoreDir is the directory used when the backend is file.
	FileStoreDir string `koanf:"file_store_dir" validate:"required"`

	// RoundLength is the default number of questions per round. It must fall
	// inside [RoundLengthMin, RoundLengthMax].
	RoundLength int `koanf:"round_length" validate:"min:1"`

	// RoundLengthMin and RoundLengthMax bound the per-round override accepted
	// by the API.
	RoundLengthMin int `koanf:"round_length_min" validate:"min:1"`
	RoundLengthMax int `koanf:"round_length_max" validate:"min:1"`

	// QuestionTimeLimitSec is the per-question countdown in seconds.
	QuestionTimeLimitSec int `koanf:"question_time_limit_sec" validate:"min:3|max:120"`

	// SessionTTLSec evicts rounds idle for longer than this many seconds.
	SessionTTLSec int `koanf:"session_ttl_sec" validate:"min:60"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit" validate:"min:1"`

	// ImageSummaryBase, ImageMediaListBase and ImageQueryBase point the image
	// lookup tiers at their endpoints. Empty values keep the built-in defaults.
	ImageSummaryBase   string `koanf:"image_summary_base"`
	ImageMediaListBase string `koanf:"image_media_list_base"`
	ImageQueryBase     string `koanf:"image_query_base"`

	// ImageTimeoutSec bounds each external image lookup.
	ImageTimeoutSec int `koanf:"image_timeout_sec" validate:"min:1|max:60"`

	// ImageHotCacheBytes sizes the in-process image URL cache.
	ImageHotCacheBytes int `koanf:"image_hot_cache_bytes" validate:"min:32768"`

	// PrefetchQueueSize bounds the image warm-up queue.
	PrefetchQueueSize int `koanf:"prefetch_queue_size" validate:"min:1"`

	// PrefetchWorkers sets the number of image warm-up workers.
	PrefetchWorkers int `koanf:"prefetch_workers" validate:"min:1|max:64"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8080",
		StoreBackend:         BackendSQLite,
		SQLitePath:           "skyquiz.db",
		FileStoreDir:         "data",
		RoundLength:          10,
		RoundLengthMin:       5,
		RoundLengthMax:       20,
		QuestionTimeLimitSec: 15,
		SessionTTLSec:        1800,
		MaxLeaderboardLimit:  10,
		ImageTimeoutSec:      8,
		ImageHotCacheBytes:   1 << 20,
		PrefetchQueueSize:    256,
		PrefetchWorkers:      4,
	}
}
