package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/repository"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/config"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/insighting"
	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReviewSyncer é a superfície usada pelos handlers de cron
type ReviewSyncer interface {
	// TriggerManualSync retorna false se já existe uma execução em andamento
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// ReviewSyncConfig representa a configuração do agendador de revisão de relatórios
type ReviewSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// ReviewSyncResult resume a última execução
type ReviewSyncResult struct {
	Companies int `json:"companies"`
	Generated int `json:"generated"`
	Failed    int `json:"failed"`
}

// ReviewSyncService regenera os relatórios cuja next_review_date já passou
type ReviewSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReviewSyncConfig
	reportRepo          repository.InsightReportRepository
	generator           insighting.ReportGenerator
	now                 func() time.Time
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          ReviewSyncResult
}

// NewReviewSyncService cria uma nova instância do serviço de revisão periódica
func NewReviewSyncService(
	reportRepo repository.InsightReportRepository,
	generator insighting.ReportGenerator,
	appConfig *config.Config,
) *ReviewSyncService {
	syncConfig := ReviewSyncConfig{
		CronSchedule:      appConfig.ReviewSync.CronSchedule,
		MaxConcurrentJobs: appConfig.ReviewSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.ReviewSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("review-sync: configuration loaded")

	return &ReviewSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		reportRepo: reportRepo,
		generator:  generator,
		now:        time.Now,
		baseCtx:    context.Background(),
	}
}

// WithClock substitui o relógio usado para decidir quais empresas estão vencidas
func (s *ReviewSyncService) WithClock(now func() time.Time) *ReviewSyncService {
	s.now = now
	return s
}

// Start inicia o agendador
func (s *ReviewSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("review-sync: disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("review-sync: starting scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.tryAcquire() {
			logrus.Info("review-sync: sync already running, skipping")
			return
		}
		defer s.release()
		s.syncReports(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "review-sync: failed to schedule job")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("review-sync: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReviewSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *ReviewSyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// syncReports regenera os relatórios vencidos. Deve ser chamado com o flag de execução adquirido.
func (s *ReviewSyncService) syncReports(ctx context.Context) ReviewSyncResult {
	startTime := time.Now()
	result := ReviewSyncResult{}

	companies, err := s.reportRepo.ListCompaniesDueForReview(ctx, s.now())
	if err != nil {
		logrus.WithError(err).Error("review-sync: failed to list companies due for review")
		s.finish(result)
		return result
	}

	result.Companies = len(companies)
	if len(companies) == 0 {
		logrus.Info("review-sync: no company due for review")
		s.finish(result)
		return result
	}

	var generated, failed atomic.Int64

	g := errgroup.Group{}
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, companyID := range companies {
		g.Go(func() error {
			report, err := s.generator.GenerateCompanyReport(ctx, companyID)
			if err != nil {
				failed.Add(1)
				logrus.WithError(err).WithField("company_id", companyID).Error("review-sync: failed to regenerate report")
				return nil
			}

			generated.Add(1)
			logrus.WithFields(logrus.Fields{
				"company_id": companyID,
				"report_id":  report.ID,
			}).Debug("review-sync: report regenerated")
			return nil
		})
	}

	// as goroutines nunca retornam erro; falhas ficam só no contador
	_ = g.Wait()

	result.Generated = int(generated.Load())
	result.Failed = int(failed.Load())

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"companies": result.Companies,
		"generated": result.Generated,
		"failed":    result.Failed,
	}).Info("review-sync: sync completed")

	s.finish(result)
	return result
}

func (s *ReviewSyncService) finish(result ReviewSyncResult) {
	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma revisão dos relatórios vencidos
func (s *ReviewSyncService) TriggerManualSync() bool {
	if !s.tryAcquire() {
		logrus.Info("review-sync: sync already running, ignoring manual request")
		return false
	}

	logrus.Info("review-sync: manual sync started")
	go func() {
		defer s.release()
		s.syncReports(s.baseCtx)
	}()

	return true
}

// GetStatus retorna o status atual da sincronização
func (s *ReviewSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"max_concurrent_jobs":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
