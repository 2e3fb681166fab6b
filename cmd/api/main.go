package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-bot-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-bot-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/analytics-bot-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/vfg2006/analytics-bot-api/infrastructure/migration"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/internal/api"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/scheduler"
	"github.com/vfg2006/analytics-bot-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytics-bot-api/internal/usecases/interpreting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Prepara o esquema e os dados iniciais
	if err := migration.Run(ctx, pgConn, cfg); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o banco de dados")
	}

	financialRepo := repository.NewFinancialRepository(pgConn)
	selectionRepo := repository.NewUserSelectionRepository(pgConn)
	messageRepo := repository.NewMessageRepository(pgConn)
	operatorRepo := repository.NewOperatorRepository(pgConn)

	authenticator := authenticating.NewService(operatorRepo, cfg)

	whatsappClient := whatsappclient.NewClient(cfg)
	notifier := whatsapp.New(cfg, whatsappClient)

	interpreter := interpreting.NewService(cfg, financialRepo, selectionRepo)

	// Inicializa o agendador de retenção do log de mensagens
	messageRetentionService := scheduler.NewMessageRetentionService(messageRepo, cfg)

	if err := messageRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção do log de mensagens")
	} else {
		logrus.Info("Agendador de retenção do log de mensagens iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		interpreter,
		messageRepo,
		notifier,
		authenticator,
		messageRetentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
