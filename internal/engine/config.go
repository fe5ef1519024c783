package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно. Зерно партии = Seed + хеш токена клиента,
	// поэтому при фиксированном Seed подземелья воспроизводимы.
	Seed int64

	// Addr - адрес HTTP/WebSocket сервера.
	Addr string

	Tuning Tuning
}

// Tuning - необязательные ручки, читаются из YAML файла.
type Tuning struct {
	// MaxSessions ограничивает число одновременных партий.
	MaxSessions int `yaml:"maxSessions"`

	// CommandBuffer - глубина канала входящих команд.
	CommandBuffer int `yaml:"commandBuffer"`

	// SessionTTL - сколько партия живет без команд перед выселением.
	SessionTTL Duration `yaml:"sessionTTL"`
}

// Duration добавляет time.Duration разбор YAML строк вида "30m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
		Addr: ":8080",
		Tuning: Tuning{
			MaxSessions:   256,
			CommandBuffer: 100,
			SessionTTL:    Duration(30 * time.Minute),
		},
	}
}

// LoadTuning накладывает YAML файл поверх дефолтных ручек.
// Пустой путь - остаются дефолты.
func (c *Config) LoadTuning(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c.Tuning); err != nil {
		return fmt.Errorf("parse tuning file: %w", err)
	}
	return nil
}
