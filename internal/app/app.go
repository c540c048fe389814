package app

import (
	"context"
	"fmt"
	"os"

	"github.com/Gio-ZA/task-manager-project/config"
	"github.com/Gio-ZA/task-manager-project/internal/console"
	credentialRepo "github.com/Gio-ZA/task-manager-project/internal/credentialrepo/file"
	"github.com/Gio-ZA/task-manager-project/internal/interfaces"
	"github.com/Gio-ZA/task-manager-project/internal/reports"
	"github.com/Gio-ZA/task-manager-project/internal/session"
	taskRepo "github.com/Gio-ZA/task-manager-project/internal/taskrepo/file"
	"github.com/Gio-ZA/task-manager-project/internal/taskservice"
	"github.com/Gio-ZA/task-manager-project/internal/userservice"
	"github.com/Gio-ZA/task-manager-project/pkg/metrics"
	"github.com/Gio-ZA/task-manager-project/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	promclient "github.com/prometheus/client_model/go"
	"golang.org/x/time/rate"
)

// App represents the main application, containing the session and
// configuration. It initializes from a config file, validates settings,
// and wires the stores, services and session driver together.
type App struct {
	Config  *config.ServiceConfig
	Session *session.Session
	Logger  interfaces.Logger
	Metrics interfaces.Metrics
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)
	logger = logger.WithContext(map[string]interface{}{"session_id": uuid.NewString()})

	metricsInstance := initializeMetrics(cfg.ServiceName)

	credentials := credentialRepo.NewCredentialRepository(cfg.Storage.UserFile, logger)
	tasks := taskRepo.NewTaskRepository(cfg.Storage.TaskFile, logger)

	userService := userservice.NewUserService(credentials, logger, validator)
	taskService := taskservice.NewTaskService(tasks, userService, logger, validator)
	generator := reports.NewGenerator(tasks, credentials, logger,
		cfg.Storage.TaskOverviewFile, cfg.Storage.UserOverviewFile)

	limiter := rate.NewLimiter(rate.Limit(cfg.Login.AttemptsPerSecond), cfg.Login.Burst)
	terminal := console.New(os.Stdin, os.Stdout)

	sessionInstance := session.NewSession(terminal, userService, taskService,
		generator, metricsInstance, logger, limiter, cfg.AdminUsername)

	return &App{
		Config:  cfg,
		Session: sessionInstance,
		Logger:  logger,
		Metrics: metricsInstance,
	}, nil
}

// Run drives one interactive session to completion, then logs a
// summary of the session counters.
func (a *App) Run() error {
	err := a.Session.Run(context.Background())
	a.logMetricsSummary()
	return err
}

func initializeMetrics(serviceName string) interfaces.Metrics {
	appMetrics := metrics.NewMetrics(serviceName)
	appMetrics.RegisterCounter(session.LoginAttemptsTotal, session.LoginAttemptsTotalHelp)
	appMetrics.RegisterCounter(session.LoginSuccessTotal, session.LoginSuccessTotalHelp)
	appMetrics.RegisterCounter(session.LoginFailedTotal, session.LoginFailedTotalHelp)
	appMetrics.RegisterCounter(session.LoginRateLimitedTotal, session.LoginRateLimitedTotalHelp)
	appMetrics.RegisterCounter(session.UsersRegisteredTotal, session.UsersRegisteredTotalHelp)
	appMetrics.RegisterCounter(session.TasksAddedTotal, session.TasksAddedTotalHelp)
	appMetrics.RegisterCounter(session.TasksCompletedTotal, session.TasksCompletedTotalHelp)
	appMetrics.RegisterCounter(session.TasksEditedTotal, session.TasksEditedTotalHelp)
	appMetrics.RegisterCounter(session.TasksDeletedTotal, session.TasksDeletedTotalHelp)
	appMetrics.RegisterCounter(session.ReportsGeneratedTotal, session.ReportsGeneratedTotalHelp)
	appMetrics.RegisterHistogram(
		session.ReportDurationSeconds,
		session.ReportDurationSecondsHelp,
		session.ReportDurationSecondsBuckets)

	return appMetrics
}

// logMetricsSummary gathers the session registry and logs every
// counter that moved during the session.
func (a *App) logMetricsSummary() {
	families, err := a.Metrics.GetRegistry().Gather()
	if err != nil {
		a.Logger.Warn("Failed to gather session metrics", "error", err)
		return
	}

	for _, family := range families {
		if family.GetType() != promclient.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value > 0 {
				a.Logger.Info("Session counter", "name", family.GetName(), "value", value)
			}
		}
	}
}
