package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "data/config.yaml"
	configPathEnvKey  = "CONFIG_PATH"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Api       ApiConfig       `yaml:"api"`
	App       AppConfig       `yaml:"app"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	s := &Service{}

	path := os.Getenv(configPathEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Api() *ApiConfig {
	return &s.config.Api
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
