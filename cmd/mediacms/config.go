package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/noorus/mediacms/pkg/content"
	"github.com/noorus/mediacms/pkg/db"
	"github.com/noorus/mediacms/pkg/logger"
)

type config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`

	MountPath     string           `env:"MEDIA_MOUNT_PATH" envDefault:"/media"`
	IntroPosition content.Position `env:"MEDIA_INTRO_POSITION" envDefault:"3"`
	MaxUploadSize int64            `env:"UPLOAD_MAX_BYTES" envDefault:"1048576"`
	StaticDir     string           `env:"STATIC_DIR"`

	DB  db.Config
	Log logger.Config
}

func loadConfig() (config, error) {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.IntroPosition < 0 {
		return config{}, fmt.Errorf("parse env: MEDIA_INTRO_POSITION must not be negative")
	}
	return cfg, nil
}
