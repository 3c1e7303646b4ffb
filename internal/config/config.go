package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	SecretKey string
	Database  struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}
	Mail struct {
		Server   string
		Port     int
		UseTLS   bool
		Username string
		Password string
		Sender   string
	}
	Admins        []string
	PostsPerPage  int
	Languages     []string
	TranslatorKey string
}

// Load reads configuration from environment variables and optional config files.
func Load() (*Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("MICROBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("secretkey", "you-will-never-guess")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "microblog")
	v.SetDefault("database.password", "microblog")
	v.SetDefault("database.name", "microblog")
	v.SetDefault("mail.server", "")
	v.SetDefault("mail.port", 25)
	v.SetDefault("mail.usetls", false)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.sender", "no-reply@microblog.local")
	v.SetDefault("admins", []string{})
	v.SetDefault("postsperpage", 3)
	v.SetDefault("languages", []string{"en", "es"})
	v.SetDefault("translatorkey", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DSN assembles the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
