package config

import (
	"github.com/JaimeStill/quarx/pkg/database"
	"github.com/JaimeStill/quarx/pkg/logging"
	"github.com/JaimeStill/quarx/pkg/storage"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	SSLMode:         "DATABASE_SSL_MODE",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
	AutoMigrate:     "DATABASE_AUTO_MIGRATE",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

var storageEnv = &storage.Env{
	BasePath:     "STORAGE_BASE_PATH",
	MaxAssetSize: "STORAGE_MAX_ASSET_SIZE",
}
