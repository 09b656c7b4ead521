package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Server   ServerConfig
	RabbitMQ RabbitMQConfig
	Consul   ConsulConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	ServiceName    string
	ServiceAddress string
	ServiceID      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

type ConsulConfig struct {
	// Empty address disables registration.
	Address string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "9300"),
			Host:           getEnv("HOST", "0.0.0.0"),
			ServiceName:    getEnv("LIBRAS_SERVICE_NAME", "libras-service"),
			ServiceAddress: getEnv("LIBRAS_SERVICE_ADDRESS", "libras-service"),
			ServiceID:      getEnv("LIBRAS_SERVICE_NAME", "libras-service") + "-" + getEnv("HOSTNAME", "libras"),
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      getEnv("RABBITMQ_URI", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", ""),
		},
		Consul: ConsulConfig{
			Address: getEnv("CONSUL_ADDR", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("error retrieving duration env var %s: %s", key, err)
			return defaultValue
		}
		return d
	}
	return defaultValue
}
