package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	ExpTopic   string   `yaml:"exports-topic"`
	ResTopic   string   `yaml:"results-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) ExportsTopic() string {
	return s.ExpTopic
}

func (s *KafkaConfig) ResultsTopic() string {
	return s.ResTopic
}
