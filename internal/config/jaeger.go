package config

type JaegerConfig struct {
	Service   string `yaml:"service-name"`
	AgentAddr string `yaml:"agent-addr"`
}

func (j *JaegerConfig) ServiceName() string {
	return j.Service
}

func (j *JaegerConfig) AgentHostPort() string {
	return j.AgentAddr
}
