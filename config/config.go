package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort       string
	MetricsPort       string
	Environment       string
	MongoDBConfig     MongoDBConfig
	KafkaConfig       KafkaConfig
	SMTPConfig        SMTPConfig
	TracingConfig     TracingConfig
	JWTSecret         string
	CartRetentionDays int
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err != nil {
	}

	conf.KafkaConfig.BrokerPartition = brokerPartition

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
	}

	conf.SMTPConfig.Port = smtpPort

	retentionDays, err := strconv.Atoi(os.Getenv("CART_RETENTION_DAYS"))
	if err != nil || retentionDays <= 0 {
		retentionDays = 30
	}

	conf.CartRetentionDays = retentionDays

	return &conf
}
