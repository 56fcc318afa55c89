package app

import (
	"fmt"
	"sync"

	appointmentRepository "github.com/hospitalos/opdqueue/internal/appointment/repository"
	queueHTTP "github.com/hospitalos/opdqueue/internal/queue/http"
	queueRepository "github.com/hospitalos/opdqueue/internal/queue/repository"
	queueService "github.com/hospitalos/opdqueue/internal/queue/service"
	queueUseCase "github.com/hospitalos/opdqueue/internal/queue/usecase"
)

// queueContainer holds the lazily initialized queue components.
type queueContainer struct {
	tokenRepoInit       sync.Once
	tokenRepo           *queueRepository.PostgreSQLTokenRepository
	appointmentRepoInit sync.Once
	appointmentRepo     *appointmentRepository.PostgreSQLAppointmentRepository
	estimatorInit       sync.Once
	estimator           queueService.Estimator
	queueUseCaseInit    sync.Once
	queueUseCase        queueUseCase.QueueUseCase
	viewUseCaseInit     sync.Once
	viewUseCase         queueUseCase.QueueViewUseCase
	tokenHandlerInit    sync.Once
	tokenHandler        *queueHTTP.TokenHandler
	queueHandlerInit    sync.Once
	queueHandler        *queueHTTP.QueueHandler
}

// TokenRepository returns the token repository instance.
func (c *Container) TokenRepository() (*queueRepository.PostgreSQLTokenRepository, error) {
	c.queueInit.tokenRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["tokenRepo"] = fmt.Errorf("failed to get database for token repository: %w", err)
			return
		}
		c.queueInit.tokenRepo = queueRepository.NewPostgreSQLTokenRepository(db)
	})
	if storedErr, exists := c.initErrors["tokenRepo"]; exists {
		return nil, storedErr
	}
	return c.queueInit.tokenRepo, nil
}

// AppointmentRepository returns the appointment repository instance.
func (c *Container) AppointmentRepository() (*appointmentRepository.PostgreSQLAppointmentRepository, error) {
	c.queueInit.appointmentRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["appointmentRepo"] = fmt.Errorf("failed to get database for appointment repository: %w", err)
			return
		}
		c.queueInit.appointmentRepo = appointmentRepository.NewPostgreSQLAppointmentRepository(db)
	})
	if storedErr, exists := c.initErrors["appointmentRepo"]; exists {
		return nil, storedErr
	}
	return c.queueInit.appointmentRepo, nil
}

// Estimator returns the wait estimator selected by configuration.
func (c *Container) Estimator() queueService.Estimator {
	c.queueInit.estimatorInit.Do(func() {
		ruleBased := queueService.NewRuleBasedEstimator(
			c.config.AverageConsultationMinutes,
			c.config.WaitBufferMinutes,
		)

		if c.config.HeuristicEstimatorEnabled {
			c.queueInit.estimator = queueService.NewHeuristicEstimator(ruleBased, nil)
			return
		}
		c.queueInit.estimator = ruleBased
	})
	return c.queueInit.estimator
}

// QueueUseCase returns the queue use case instance.
func (c *Container) QueueUseCase() (queueUseCase.QueueUseCase, error) {
	c.queueInit.queueUseCaseInit.Do(func() {
		useCase, err := c.initQueueUseCase()
		if err != nil {
			c.initErrors["queueUseCase"] = err
			return
		}
		c.queueInit.queueUseCase = useCase
	})
	if storedErr, exists := c.initErrors["queueUseCase"]; exists {
		return nil, storedErr
	}
	return c.queueInit.queueUseCase, nil
}

// QueueViewUseCase returns the queue read projection use case instance.
func (c *Container) QueueViewUseCase() (queueUseCase.QueueViewUseCase, error) {
	c.queueInit.viewUseCaseInit.Do(func() {
		tokenRepo, err := c.TokenRepository()
		if err != nil {
			c.initErrors["queueViewUseCase"] = fmt.Errorf("failed to get token repository for queue view use case: %w", err)
			return
		}
		c.queueInit.viewUseCase = queueUseCase.NewQueueViewUseCase(tokenRepo)
	})
	if storedErr, exists := c.initErrors["queueViewUseCase"]; exists {
		return nil, storedErr
	}
	return c.queueInit.viewUseCase, nil
}

// TokenHandler returns the HTTP handler for token lifecycle operations.
func (c *Container) TokenHandler() (*queueHTTP.TokenHandler, error) {
	c.queueInit.tokenHandlerInit.Do(func() {
		useCase, err := c.QueueUseCase()
		if err != nil {
			c.initErrors["tokenHandler"] = fmt.Errorf("failed to get queue use case for token handler: %w", err)
			return
		}
		c.queueInit.tokenHandler = queueHTTP.NewTokenHandler(useCase, c.Logger(), nil)
	})
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.queueInit.tokenHandler, nil
}

// QueueHandler returns the HTTP handler for per-doctor queue operations.
func (c *Container) QueueHandler() (*queueHTTP.QueueHandler, error) {
	c.queueInit.queueHandlerInit.Do(func() {
		useCase, err := c.QueueUseCase()
		if err != nil {
			c.initErrors["queueHandler"] = fmt.Errorf("failed to get queue use case for queue handler: %w", err)
			return
		}

		viewUseCase, err := c.QueueViewUseCase()
		if err != nil {
			c.initErrors["queueHandler"] = fmt.Errorf("failed to get queue view use case for queue handler: %w", err)
			return
		}

		c.queueInit.queueHandler = queueHTTP.NewQueueHandler(useCase, viewUseCase, c.Logger(), nil)
	})
	if storedErr, exists := c.initErrors["queueHandler"]; exists {
		return nil, storedErr
	}
	return c.queueInit.queueHandler, nil
}

// initQueueUseCase creates the queue use case with all its dependencies.
func (c *Container) initQueueUseCase() (queueUseCase.QueueUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for queue use case: %w", err)
	}

	tokenRepo, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for queue use case: %w", err)
	}

	doctorRepo, err := c.DoctorRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor repository for queue use case: %w", err)
	}

	appointmentRepo, err := c.AppointmentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment repository for queue use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for queue use case: %w", err)
	}

	baseUseCase := queueUseCase.NewQueueUseCase(
		txManager,
		tokenRepo,
		doctorRepo,
		appointmentRepo,
		outboxRepo,
		c.Estimator(),
		nil,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for queue use case: %w", err)
		}
		return queueUseCase.NewQueueUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
