// Package config loads the demo host configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
	"github.com/cwbudde/algo-hilocut/dsp/hilocut"
)

// Config is the demo host configuration. Every field has an environment
// variable with the HILOCUT_ prefix.
type Config struct {
	SampleRate    int
	BlockSize     int
	NoiseLevel    float64
	MeterInterval time.Duration

	// MQTTBroker is empty when remote control is disabled.
	MQTTBroker   string
	MQTTPort     int
	MQTTUser     string
	MQTTPassword string
	MQTTTopic    string

	Settings hilocut.Settings
}

// Load reads the configuration from the environment.
func Load() *Config {
	broker := getEnv("HILOCUT_MQTT_BROKER", "")
	if broker != "" && !strings.HasPrefix(broker, "tcp://") && !strings.HasPrefix(broker, "ssl://") {
		broker = "tcp://" + broker
	}

	settings := hilocut.DefaultSettings()
	settings.LowCutFreq = getEnvFloat("HILOCUT_LOWCUT_FREQ", settings.LowCutFreq)
	settings.HighCutFreq = getEnvFloat("HILOCUT_HIGHCUT_FREQ", settings.HighCutFreq)
	settings.LowCutSlope = getEnvSlope("HILOCUT_LOWCUT_SLOPE", settings.LowCutSlope)
	settings.HighCutSlope = getEnvSlope("HILOCUT_HIGHCUT_SLOPE", settings.HighCutSlope)

	cfg := &Config{
		SampleRate:    getEnvInt("HILOCUT_SAMPLE_RATE", 48000),
		BlockSize:     getEnvInt("HILOCUT_BLOCK_SIZE", 512),
		NoiseLevel:    getEnvFloat("HILOCUT_NOISE_LEVEL", 0.25),
		MeterInterval: getEnvDuration("HILOCUT_METER_INTERVAL", 2*time.Second),
		MQTTBroker:    broker,
		MQTTPort:      getEnvInt("HILOCUT_MQTT_PORT", 1883),
		MQTTUser:      getEnv("HILOCUT_MQTT_USER", ""),
		MQTTPassword:  getEnv("HILOCUT_MQTT_PASSWORD", ""),
		MQTTTopic:     getEnv("HILOCUT_MQTT_TOPIC", "hilocut"),
		Settings:      settings.Clamped(),
	}

	if cfg.MQTTBroker != "" {
		log.Printf("Config: %d Hz / %d, MQTT=%s:%d, Topic=%s",
			cfg.SampleRate, cfg.BlockSize, cfg.MQTTBroker, cfg.MQTTPort, cfg.MQTTTopic)
	} else {
		log.Printf("Config: %d Hz / %d, MQTT disabled", cfg.SampleRate, cfg.BlockSize)
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Ignoring %s=%q: not an integer", key, value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Ignoring %s=%q: not a number", key, value)
	}
	return defaultValue
}

func getEnvSlope(key string, defaultValue cut.Slope) cut.Slope {
	if value := os.Getenv(key); value != "" {
		if s, err := cut.ParseSlope(value); err == nil {
			return s
		}
		log.Printf("Ignoring %s=%q: not a slope", key, value)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Ignoring %s=%q: not a duration", key, value)
	}
	return defaultValue
}
