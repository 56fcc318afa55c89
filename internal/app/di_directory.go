package app

import (
	"fmt"
	"sync"

	directoryHTTP "github.com/hospitalos/opdqueue/internal/directory/http"
	directoryRepository "github.com/hospitalos/opdqueue/internal/directory/repository"
	directoryUseCase "github.com/hospitalos/opdqueue/internal/directory/usecase"
)

// directoryContainer holds the lazily initialized directory components.
type directoryContainer struct {
	doctorRepoInit    sync.Once
	doctorRepo        *directoryRepository.PostgreSQLDoctorRepository
	doctorUseCaseInit sync.Once
	doctorUseCase     directoryUseCase.DoctorUseCase
	doctorHandlerInit sync.Once
	doctorHandler     *directoryHTTP.DoctorHandler
}

// DoctorRepository returns the doctor repository instance.
func (c *Container) DoctorRepository() (*directoryRepository.PostgreSQLDoctorRepository, error) {
	c.directoryInit.doctorRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["doctorRepo"] = fmt.Errorf("failed to get database for doctor repository: %w", err)
			return
		}
		c.directoryInit.doctorRepo = directoryRepository.NewPostgreSQLDoctorRepository(db)
	})
	if storedErr, exists := c.initErrors["doctorRepo"]; exists {
		return nil, storedErr
	}
	return c.directoryInit.doctorRepo, nil
}

// DoctorUseCase returns the doctor use case instance.
func (c *Container) DoctorUseCase() (directoryUseCase.DoctorUseCase, error) {
	c.directoryInit.doctorUseCaseInit.Do(func() {
		useCase, err := c.initDoctorUseCase()
		if err != nil {
			c.initErrors["doctorUseCase"] = err
			return
		}
		c.directoryInit.doctorUseCase = useCase
	})
	if storedErr, exists := c.initErrors["doctorUseCase"]; exists {
		return nil, storedErr
	}
	return c.directoryInit.doctorUseCase, nil
}

// DoctorHandler returns the HTTP handler for doctor directory operations.
func (c *Container) DoctorHandler() (*directoryHTTP.DoctorHandler, error) {
	c.directoryInit.doctorHandlerInit.Do(func() {
		doctorUseCase, err := c.DoctorUseCase()
		if err != nil {
			c.initErrors["doctorHandler"] = fmt.Errorf("failed to get doctor use case for doctor handler: %w", err)
			return
		}
		c.directoryInit.doctorHandler = directoryHTTP.NewDoctorHandler(doctorUseCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["doctorHandler"]; exists {
		return nil, storedErr
	}
	return c.directoryInit.doctorHandler, nil
}

// initDoctorUseCase creates the doctor use case with all its dependencies.
func (c *Container) initDoctorUseCase() (directoryUseCase.DoctorUseCase, error) {
	doctorRepo, err := c.DoctorRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor repository for doctor use case: %w", err)
	}

	baseUseCase := directoryUseCase.NewDoctorUseCase(doctorRepo, nil)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for doctor use case: %w", err)
		}
		return directoryUseCase.NewDoctorUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
