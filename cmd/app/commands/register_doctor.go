package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	directoryUseCase "github.com/hospitalos/opdqueue/internal/directory/usecase"
)

// RunRegisterDoctor registers a new doctor in the directory and prints the
// resulting profile in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunRegisterDoctor(
	ctx context.Context,
	doctorUseCase directoryUseCase.DoctorUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	specialization string,
	maxPatientsPerDay int,
	averageConsultationMinutes int,
	format string,
) error {
	if name == "" {
		return fmt.Errorf("doctor name is required")
	}
	if maxPatientsPerDay < 0 {
		return fmt.Errorf("max patients per day cannot be negative")
	}
	if averageConsultationMinutes < 0 {
		return fmt.Errorf("average consultation minutes cannot be negative")
	}

	logger.Info("registering doctor", slog.String("name", name))

	doctor, err := doctorUseCase.Register(ctx, directoryUseCase.RegisterDoctorInput{
		FullName:                   name,
		Specialization:             specialization,
		MaxPatientsPerDay:          maxPatientsPerDay,
		AverageConsultationMinutes: averageConsultationMinutes,
	})
	if err != nil {
		return fmt.Errorf("failed to register doctor: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doctor); err != nil {
			return fmt.Errorf("failed to encode doctor: %w", err)
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Doctor registered\n")
		_, _ = fmt.Fprintf(writer, "  ID:             %s\n", doctor.ID)
		_, _ = fmt.Fprintf(writer, "  Name:           %s\n", doctor.FullName)
		if doctor.Specialization != "" {
			_, _ = fmt.Fprintf(writer, "  Specialization: %s\n", doctor.Specialization)
		}
		if doctor.MaxPatientsPerDay > 0 {
			_, _ = fmt.Fprintf(writer, "  Daily cap:      %d patients\n", doctor.MaxPatientsPerDay)
		}
	}

	logger.Info("doctor registered successfully",
		slog.String("doctor_id", doctor.ID.String()),
		slog.String("name", name),
	)

	return nil
}
