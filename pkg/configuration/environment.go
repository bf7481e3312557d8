package configuration

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		panic(err)
	}
	return c
})

// LoadEnv loads environment variables from the given files, skipping the
// ones that do not exist. Returns how many files were loaded.
func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type RepositoryOptions struct {
	// Driver selects the request store backend: "remote" talks to the
	// external events API, "memory" runs against the seeded in-process store.
	Driver  string        `env:"REPOSITORY_DRIVER" envDefault:"remote"`
	BaseURL string        `env:"REPOSITORY_API_URL" envDefault:"http://localhost:8090"`
	Token   string        `env:"REPOSITORY_API_TOKEN"`
	Timeout time.Duration `env:"REPOSITORY_TIMEOUT" envDefault:"15s"`
}

func (r *RepositoryOptions) Validate() error {
	if r.Driver != "remote" && r.Driver != "memory" {
		return fmt.Errorf("repository driver must be 'remote' or 'memory', got '%s'", r.Driver)
	}
	if r.Driver == "remote" && r.BaseURL == "" {
		return fmt.Errorf("repository base URL is required when driver is 'remote'")
	}
	return nil
}

type Configuration struct {
	Repository RepositoryOptions

	ServerPort       int           `env:"PORT" envDefault:"3200"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	GoAppEnvironment string        `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`

	logger *logrus.Logger
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) Address() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

func (c *Configuration) load(envFiles []string) error {
	if _, err := LoadEnv(envFiles); err != nil {
		return err
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.Repository.Validate(); err != nil {
		return err
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if c.GoAppEnvironment == Production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logger.SetOutput(os.Stdout)
	c.logger = logger
	return nil
}
