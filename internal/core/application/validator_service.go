// Package application contains the core application service logic for the LEI validation service.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lei_validator/internal/config"
	"lei_validator/internal/core/domain"
	"lei_validator/internal/core/domain/repository"
	"lei_validator/internal/logger"
	"lei_validator/internal/metrics"
	"lei_validator/pkg/lei"
	"lei_validator/pkg/leiservice"
)

// ValidatorServiceImpl implements the leiservice.Validator interface and
// contains the core application logic.
type ValidatorServiceImpl struct {
	identifierRepo repository.IdentifierRepository
	logger         logger.AppLogger
	metrics        *metrics.Metrics

	looseParsing bool
	now          func() time.Time
}

// Compile-time check to ensure ValidatorServiceImpl implements leiservice.Validator
var _ leiservice.Validator = (*ValidatorServiceImpl)(nil)

// NewValidatorService creates a new instance of ValidatorServiceImpl.
func NewValidatorService(
	identifierRepo repository.IdentifierRepository,
	appLogger logger.AppLogger,
	appMetrics *metrics.Metrics,
	cfg config.ValidatorConfig,
) (*ValidatorServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewValidatorService: appLogger is nil")
	}
	if identifierRepo == nil {
		appLogger.Error("NewValidatorService: identifierRepo is nil")
		return nil, errors.New("NewValidatorService: identifierRepo is nil")
	}
	if appMetrics == nil {
		appLogger.Error("NewValidatorService: appMetrics is nil")
		return nil, errors.New("NewValidatorService: appMetrics is nil")
	}

	return &ValidatorServiceImpl{
		identifierRepo: identifierRepo,
		logger:         appLogger,
		metrics:        appMetrics,
		looseParsing:   cfg.LooseParsing,
		now:            time.Now,
	}, nil
}

// Validate classifies a candidate string and returns a structured report.
// Rejection of malformed input is part of the report, not an error.
func (s *ValidatorServiceImpl) Validate(_ context.Context, input string) (leiservice.ValidationReport, error) {
	parse := lei.Parse
	if s.looseParsing {
		parse = lei.ParseLoose
	}

	code, err := parse(input)
	if err != nil {
		s.metrics.ObserveValidation(false)
		s.logger.Debug("Identifier rejected", "error", err)
		return mapErrorToReport(err), nil
	}

	s.metrics.ObserveValidation(true)
	s.logger.Debug("Identifier accepted", "lei", code.String())
	return mapLEIToReport(code), nil
}

// Build assembles a complete LEI from a LOU ID and an entity ID.
func (s *ValidatorServiceImpl) Build(_ context.Context, louID, entityID string) (string, error) {
	code, err := lei.BuildFromParts(louID, entityID)
	if err != nil {
		return "", fmt.Errorf("identifier build failed: %w", err)
	}

	s.metrics.IncrementIdentifiersBuilt()
	s.logger.Info("Identifier built", "lei", code.String())
	return code.String(), nil
}

// Register validates an identifier strictly and adds it to the roster.
func (s *ValidatorServiceImpl) Register(ctx context.Context, input string) error {
	code, err := lei.Parse(input)
	if err != nil {
		return fmt.Errorf("identifier validation failed: %w", err)
	}

	loggerWithCode := s.logger.With("lei", code.String())

	exists, err := s.identifierRepo.Exists(ctx, code)
	if err != nil {
		loggerWithCode.Error("Failed to check roster for identifier", "error", err)
		return fmt.Errorf("failed to check roster for identifier: %w", err)
	}
	if exists {
		loggerWithCode.Debug("Identifier already registered")
		return nil
	}

	entry := domain.NewRegisteredIdentifier(code, s.now().UTC())
	if err := s.identifierRepo.Add(ctx, entry); err != nil {
		loggerWithCode.Error("Failed to register identifier in repository", "error", err)
		return fmt.Errorf("failed to register identifier in repository: %w", err)
	}

	s.metrics.IncrementIdentifiersRegistered()
	loggerWithCode.Info("Identifier registered")
	return nil
}

// ListRegistered returns all identifiers on the roster.
func (s *ValidatorServiceImpl) ListRegistered(ctx context.Context) ([]leiservice.RegisteredIdentifier, error) {
	entries, err := s.identifierRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Error fetching registered identifiers", "error", err)
		return nil, fmt.Errorf("failed to get identifiers from repository: %w", err)
	}

	apiEntries := make([]leiservice.RegisteredIdentifier, 0, len(entries))
	for _, entry := range entries {
		apiEntries = append(apiEntries, mapDomainToAPIIdentifier(entry))
	}
	return apiEntries, nil
}
