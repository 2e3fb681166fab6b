package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	WhatsApp         WhatsApp         `mapstructure:",squash"`
	Analytics        Analytics        `mapstructure:",squash"`
	MessageRetention MessageRetention `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Admin            Admin            `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// WhatsApp concentra as credenciais da Cloud API (Graph API da Meta).
type WhatsApp struct {
	BaseURL       string `mapstructure:"whatsapp_base_url"`
	URL           string `mapstructure:"-"`
	Version       string `mapstructure:"whatsapp_version"`
	PhoneNumberID string `mapstructure:"whatsapp_phone_number_id"`
	AccessToken   string `mapstructure:"whatsapp_access_token"`
	VerifyToken   string `mapstructure:"whatsapp_verify_token"`
}

// Analytics define o escopo das consultas financeiras. O CompanyID
// restringe quais registros entram nas somas; hoje o bot atende uma
// única empresa, mas o escopo é parametrizado, não um literal no código.
type Analytics struct {
	CompanyID int `mapstructure:"analytics_company_id"`
}

type MessageRetention struct {
	CronSchedule string `mapstructure:"message_retention_cron"`
	Days         int    `mapstructure:"message_retention_days"`
	Enabled      bool   `mapstructure:"message_retention_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Admin é o operador inicial criado quando a tabela operators está vazia.
type Admin struct {
	Email    string `mapstructure:"admin_email"`
	Password string `mapstructure:"admin_password"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3021)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("WHATSAPP_VERSION", "v17.0")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "your_phone_number_id")
	viper.SetDefault("WHATSAPP_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("WHATSAPP_VERIFY_TOKEN", "HiitsVerify")

	viper.SetDefault("ANALYTICS_COMPANY_ID", 100)

	// Defaults para limpeza do log de mensagens
	viper.SetDefault("MESSAGE_RETENTION_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("MESSAGE_RETENTION_DAYS", 90)
	viper.SetDefault("MESSAGE_RETENTION_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("ADMIN_PASSWORD", "") // vazio desabilita o bootstrap do operador

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.WhatsApp.URL = fmt.Sprintf("%s/%s", config.WhatsApp.BaseURL, config.WhatsApp.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
