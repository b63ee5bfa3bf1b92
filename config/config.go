package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"memorymap/internal/infrastructure/database"
	"memorymap/internal/infrastructure/keyvalue"
	"memorymap/internal/infrastructure/minio"
	"memorymap/pkg/logger"
)

type DefaultConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment   string               `yaml:"environment"`
	Default       DefaultConfig        `yaml:"default"`
	MinIOClient   minio.ClientConfig   `yaml:"minio_client"`
	MinIOUploader minio.UploaderConfig `yaml:"minio_uploader"`
	MinIOGetter   minio.GetterConfig   `yaml:"minio_getter"`
	MinIORemover  minio.RemoverConfig  `yaml:"minio_remover"`
	DBConfig      database.Config      `yaml:"db_config"`
	KVConfig      keyvalue.Config      `yaml:"keyvalue_config"`
	Logger        logger.Config        `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		// a missing .env file is fine for local runs
		_ = godotenv.Load()
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.KVConfig.URI = os.Getenv("KEYVALUE_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return Error{reason: "default.address must be set"}
	}
	if c.MinIOClient.Bucket == "" {
		return Error{reason: "minio_client.bucket must be set"}
	}

	return nil
}
