package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/plot/vg"

	"ecommerce-eda-lab/internal/data"
	"ecommerce-eda-lab/internal/render"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a run. Each field can be overridden from the
// environment; the defaults reproduce the stock dataset and image.
type Config struct {
	Rows int    `env:"EDA_ROWS" env-default:"1000"`
	Seed uint64 `env:"EDA_SEED" env-default:"42"`

	Output       string  `env:"EDA_OUTPUT" env-default:"eda_visualizations.png"`
	DPI          int     `env:"EDA_DPI" env-default:"150"`
	WidthInches  float64 `env:"EDA_WIDTH_INCHES" env-default:"24"`
	HeightInches float64 `env:"EDA_HEIGHT_INCHES" env-default:"24"`

	LogLevel string `env:"EDA_LOG_LEVEL" env-default:"info"`
}

// Load reads the EDA_* environment variables and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return errors.Wrapf(ErrInvalidConfig, "EDA_ROWS must be positive, got %d", c.Rows)
	case strings.TrimSpace(c.Output) == "":
		return errors.Wrap(ErrInvalidConfig, "EDA_OUTPUT is empty")
	case c.DPI <= 0:
		return errors.Wrapf(ErrInvalidConfig, "EDA_DPI must be positive, got %d", c.DPI)
	case c.WidthInches <= 0 || c.HeightInches <= 0:
		return errors.Wrapf(ErrInvalidConfig, "canvas must be positive, got %gx%g in", c.WidthInches, c.HeightInches)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "EDA_LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

func (c *Config) Seeding() data.SeedConfig {
	return data.SeedConfig{Rows: c.Rows, Seed: c.Seed}
}

func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Path:   c.Output,
		Width:  vg.Length(c.WidthInches) * vg.Inch,
		Height: vg.Length(c.HeightInches) * vg.Inch,
		DPI:    c.DPI,
	}
}
