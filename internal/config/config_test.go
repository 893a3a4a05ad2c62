package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nahubn1/airplane-recognition-quiz/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				key := kv[:i]
				if len(key) > 8 && key[:8] == "SKYQUIZ_" {
					t.Setenv(key, "")
					os.Unsetenv(key)
				}
				break
			}
		}
	}
}

func TestDefaults(t *testing.T) {
	Convey("Given no file and no environment", t, func() {
		clearEnv(t)

		Convey("When loading", func() {
			cfg, err := config.Load()

			Convey("Then defaults apply and validate", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.StoreBackend, ShouldEqual, config.BackendSQLite)
				So(cfg.RoundLength, ShouldEqual, 10)
				So(cfg.RoundLengthMin, ShouldEqual, 5)
				So(cfg.RoundLengthMax, ShouldEqual, 20)
				So(cfg.QuestionTimeLimitSec, ShouldEqual, 15)
			})
		})
	})
}

func TestEnvOverridesFile(t *testing.T) {
	Convey("Given a config file and an overlapping env var", t, func() {
		clearEnv(t)

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte("addr: \":9000\"\nround_length: 8\nstore_backend: file\n")
		So(os.WriteFile(path, content, 0o600), ShouldBeNil)

		t.Setenv("SKYQUIZ_CONFIG", path)
		t.Setenv("SKYQUIZ_ADDR", ":7000")

		Convey("When loading", func() {
			cfg, err := config.Load()

			Convey("Then env beats file beats defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7000")
				So(cfg.RoundLength, ShouldEqual, 8)
				So(cfg.StoreBackend, ShouldEqual, config.BackendFile)
				So(cfg.SessionTTLSec, ShouldEqual, 1800)
			})
		})
	})
}

func TestValidationRejectsBadValues(t *testing.T) {
	Convey("Given configurations that break constraints", t, func() {
		clearEnv(t)

		Convey("An unknown store backend is rejected", func() {
			t.Setenv("SKYQUIZ_STORE_BACKEND", "redis")
			_, err := config.Load()
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("A round length outside its bounds is rejected", func() {
			t.Setenv("SKYQUIZ_ROUND_LENGTH", "25")
			_, err := config.Load()
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("Inverted round length bounds are rejected", func() {
			t.Setenv("SKYQUIZ_ROUND_LENGTH_MIN", "12")
			t.Setenv("SKYQUIZ_ROUND_LENGTH_MAX", "6")
			t.Setenv("SKYQUIZ_ROUND_LENGTH", "6")
			_, err := config.Load()
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("An unknown log level is rejected", func() {
			t.Setenv("SKYQUIZ_LOG_LEVEL", "verbose")
			_, err := config.Load()
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("A missing config file is reported as a load failure", func() {
			t.Setenv("SKYQUIZ_CONFIG", "/nonexistent/config.yaml")
			_, err := config.Load()
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})
}
