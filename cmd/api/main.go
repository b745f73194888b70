package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-analyst-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/gscclient"
	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/openrouter/openrouterclient"
	"github.com/vfg2006/seo-analyst-api/infrastructure/repository"
	"github.com/vfg2006/seo-analyst-api/internal/api"
	"github.com/vfg2006/seo-analyst-api/internal/config"
	"github.com/vfg2006/seo-analyst-api/internal/scheduler"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/analyzing"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/chatting"
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sessionRepo := repository.NewSessionRepository(pgConn)

	authenticator := authenticating.NewService(cfg, sessionRepo)

	gscClient := gscclient.NewClient(cfg)
	searchConsole := gsc.New(cfg, gscClient, sessionRepo)

	llmClient := openrouterclient.NewClient(cfg)
	analyst := analyzing.NewService(cfg, llmClient)

	chatService := chatting.NewService(cfg, analyst, searchConsole)

	// Limpeza periódica de sessões vencidas
	sessionCleanupService := scheduler.NewSessionCleanupService(sessionRepo, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		chatService,
		searchConsole,
		authenticator,
		sessionCleanupService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
