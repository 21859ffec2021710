package config

const defaultApiTimeoutSeconds = 10

type ApiConfig struct {
	Url            string `yaml:"base-url"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
}

func (a *ApiConfig) BaseURL() string {
	return a.Url
}

func (a *ApiConfig) Timeout() int64 {
	if a.TimeoutSeconds <= 0 {
		return defaultApiTimeoutSeconds
	}
	return a.TimeoutSeconds
}
