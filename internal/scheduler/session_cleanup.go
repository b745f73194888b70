package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-analyst-api/infrastructure/repository"
	"github.com/vfg2006/seo-analyst-api/internal/config"
)

// SessionCleanupConfig representa a configuração do agendador de limpeza de sessões
type SessionCleanupConfig struct {
	CronSchedule   string
	CleanupEnabled bool
}

// SessionCleanupService gerencia o agendamento e execução da limpeza de sessões expiradas
type SessionCleanupService struct {
	scheduler          *gocron.Scheduler
	config             SessionCleanupConfig
	sessionRepo        repository.SessionRepository
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewSessionCleanupService cria uma nova instância do serviço de limpeza de sessões
func NewSessionCleanupService(
	sessionRepo repository.SessionRepository,
	appConfig *config.Config,
) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule:   appConfig.SessionCleanup.CronSchedule,
		CleanupEnabled: appConfig.SessionCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:   scheduler,
		config:      cleanupConfig,
		sessionRepo: sessionRepo,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupExpiredSessions remove do banco as sessões já vencidas
func (s *SessionCleanupService) cleanupExpiredSessions() {
	startTime := time.Now()

	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.lastRunStartedAt = startTime
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	logrus.Info("Iniciando limpeza de sessões expiradas")

	removed, err := s.sessionRepo.DeleteExpired(time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sessões expiradas do banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":         time.Since(startTime).String(),
		"sessions_removed": removed,
	}).Info("Limpeza de sessões expiradas concluída")

	s.cleanupMutex.Lock()
	s.lastRunCompletedAt = time.Now()
	s.cleanupMutex.Unlock()
}

// TriggerManualCleanup inicia manualmente uma limpeza de sessões
func (s *SessionCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go s.cleanupExpiredSessions()
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_enabled":       s.config.CleanupEnabled,
		"cleanup_cron":          s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
