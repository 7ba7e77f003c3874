package config_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/okian/emojisnap/internal/config"
	"github.com/samber/lo"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("EMOJISNAP_SOURCE_URL", "https://api.emojitracker.com/v1/rankings")
			_ = os.Setenv("EMOJISNAP_FETCH_TIMEOUT_MS", "5000")
			_ = os.Setenv("EMOJISNAP_PACKAGE", "fakefeeder")
			_ = os.Setenv("EMOJISNAP_EXPORTED_FIELDS", "true")
			_ = os.Setenv("EMOJISNAP_ASCII_ONLY", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.SourceURL, convey.ShouldEqual, config.EmojitrackerV1APIRankingsURL)
				convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.Package, convey.ShouldEqual, "fakefeeder")
				convey.So(cfg.ExportedFields, convey.ShouldBeTrue)
				convey.So(cfg.ASCIIOnly, convey.ShouldBeTrue)
				convey.So(cfg.TypeName, convey.ShouldEqual, config.DefaultTypeName) // From defaults
			})
		})

		convey.Convey("When loading config with a YAML file given by path", func() {
			tmpFile := createTempConfigFile(`
package: rankings
type_name: Ranking
var_name: snapshotData
accessor: Snapshot
exported_fields: true
log_level: debug
`)
			defer func() { _ = os.Remove(tmpFile) }()

			cfg, err := config.Load(ctx, tmpFile)

			convey.Convey("Then it should load from the file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Package, convey.ShouldEqual, "rankings")
				convey.So(cfg.TypeName, convey.ShouldEqual, "Ranking")
				convey.So(cfg.VarName, convey.ShouldEqual, "snapshotData")
				convey.So(cfg.Accessor, convey.ShouldEqual, "Snapshot")
				convey.So(cfg.ExportedFields, convey.ShouldBeTrue)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.SourceURL, convey.ShouldEqual, config.EmojitrackerRankingsURL)
			})
		})

		convey.Convey("When the file comes from EMOJISNAP_CONFIG and env overrides it", func() {
			tmpFile := createTempConfigFile("package: rankings\nvar_name: fromFile\n")
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv(config.EnvConfigFile, tmpFile)
			_ = os.Setenv("EMOJISNAP_VAR_NAME", "fromEnv")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then environment variables should win over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Package, convey.ShouldEqual, "rankings") // From file
				convey.So(cfg.VarName, convey.ShouldEqual, "fromEnv")  // Overridden by env
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			cfg, err := config.Load(ctx, tmpFile)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			cfg, err := config.Load(ctx, "/non/existent/file.yaml")

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("EMOJISNAP_FETCH_TIMEOUT_MS", "soon")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty source url", func() {
			_ = os.Setenv("EMOJISNAP_SOURCE_URL", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "source_url must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := config.Load(cctx, "")

			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})
	})
}

var configKeys = []string{
	"config",
	"log_level",
	"source_url",
	"fetch_timeout_ms",
	"package",
	"type_name",
	"var_name",
	"accessor",
	"exported_fields",
	"ascii_only",
	"metrics_textfile",
}

func clearConfigEnvVars() {
	envVars := lo.Map(configKeys, func(k string, _ int) string {
		return config.EnvPrefix + strings.ToUpper(k)
	})
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "emojisnap-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
