package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	Enabled          bool    `toml:"enabled"`
	TelegramApiToken string  `toml:"telegram_apitoken"`
	Admins           []int64 `toml:"admins"`
}

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`
	CertFile   string `toml:"cert_file"`
	KeyFile    string `toml:"key_file"`
}

// Addr is the listen address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s Server) TLS() bool {
	return s.CertFile != "" && s.KeyFile != ""
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func defaultServer() Server {
	return Server{
		Host:       "0.0.0.0",
		Port:       3000,
		SqliteFile: "puzzleboard.sqlite",
	}
}

// New reads the server and bot configs. An empty botPath leaves the bot
// disabled.
func New(serverPath, botPath string) (Config, error) {
	serverCfg := defaultServer()
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, fmt.Errorf("server config: %w", err)
	}

	var tgBotCfg TgBot
	if botPath != "" {
		_, err = toml.DecodeFile(botPath, &tgBotCfg)
		if err != nil {
			return Config{}, fmt.Errorf("bot config: %w", err)
		}
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}
	if tgBotCfg.Enabled && tgBotCfg.TelegramApiToken == "" {
		return Config{}, fmt.Errorf("bot config: bot enabled without telegram_apitoken")
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
