package config

const (
	defaultRecentCount = 5
	defaultMetricsAddr = ":9100"
)

type AppConfig struct {
	RecentTransactions int    `yaml:"recent-transactions"`
	MetricsListenAddr  string `yaml:"metrics-addr"`
}

func (s *AppConfig) RecentCount() int {
	if s.RecentTransactions <= 0 {
		return defaultRecentCount
	}
	return s.RecentTransactions
}

func (s *AppConfig) MetricsAddr() string {
	if s.MetricsListenAddr == "" {
		return defaultMetricsAddr
	}
	return s.MetricsListenAddr
}
