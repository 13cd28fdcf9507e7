package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DBDir         string `env:"DB_DIR" envDefault:"database"`
	DBName        string `env:"DB_NAME" envDefault:"mental_health_chat.db"`
	LLMAPIKey     string `env:"LLM_API_KEY"`
	LLMBaseURL    string `env:"LLM_BASE_URL" envDefault:"http://localhost:11434/v1"`
	LLMModel      string `env:"LLM_MODEL" envDefault:"llama3.2:1b"`
	SpeechBaseURL string `env:"SPEECH_BASE_URL"`
	SpeechAPIKey  string `env:"SPEECH_API_KEY"`
	SpeechLang    string `env:"SPEECH_LANG" envDefault:"en-US"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
