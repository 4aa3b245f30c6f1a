package application_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lei_validator/internal/adapters/storage/memory/identifier"
	"lei_validator/internal/config"
	"lei_validator/internal/core/application"
	applogger "lei_validator/internal/logger"
	"lei_validator/internal/metrics"
	"lei_validator/pkg/lei"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLEI = "YZ83GD8L7GG84979J516"

func TestValidatorService_Validate_Valid(t *testing.T) {
	service, m := setupService(t, config.ValidatorConfig{})

	report, err := service.Validate(context.Background(), validLEI)
	require.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Equal(t, validLEI, report.LEI)
	assert.Equal(t, "YZ83", report.LOUID)
	assert.Equal(t, "GD8L7GG84979J5", report.EntityID)
	assert.Equal(t, "16", report.CheckDigits)
	assert.Empty(t, report.ErrorKind)
	assert.Empty(t, report.Reason)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationsValid))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ValidationsInvalid))
}

func TestValidatorService_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind string
	}{
		{"Too short", "YZ83GD8L7GG84979J51", "invalid_length"},
		{"Lowercase", "yz83GD8L7GG84979J516", "invalid_character"},
		{"Letter in check digits", "YZ83GD8L7GG84979J5A6", "invalid_check_digit_format"},
		{"Wrong check digits", "YZ83GD8L7GG84979J517", "invalid_check_digits"},
	}

	service, m := setupService(t, config.ValidatorConfig{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.Validate(context.Background(), tt.input)
			require.NoError(t, err, "rejection must be a report, not an error")

			assert.False(t, report.Valid)
			assert.Equal(t, tt.wantKind, report.ErrorKind)
			assert.NotEmpty(t, report.Reason)
			assert.Empty(t, report.LEI)
		})
	}

	assert.Equal(t, float64(len(tests)), testutil.ToFloat64(m.ValidationsInvalid))
}

func TestValidatorService_Validate_LooseParsing(t *testing.T) {
	strict, _ := setupService(t, config.ValidatorConfig{LooseParsing: false})
	loose, _ := setupService(t, config.ValidatorConfig{LooseParsing: true})

	input := "  yz83gd8l7gg84979j516 "

	report, err := strict.Validate(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, report.Valid)

	report, err = loose.Validate(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, validLEI, report.LEI)
}

func TestValidatorService_Build(t *testing.T) {
	service, m := setupService(t, config.ValidatorConfig{})

	code, err := service.Build(context.Background(), "YZ83", "GD8L7GG84979J5")
	require.NoError(t, err)
	assert.Equal(t, validLEI, code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IdentifiersBuilt))

	_, err = service.Build(context.Background(), "YZ8", "GD8L7GG84979J5")
	assert.ErrorIs(t, err, lei.ErrInvalidLOUIDLength)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IdentifiersBuilt))
}

func TestValidatorService_RegisterAndList(t *testing.T) {
	service, m := setupService(t, config.ValidatorConfig{})
	ctx := context.Background()

	err := service.Register(ctx, validLEI)
	require.NoError(t, err)

	// Registering the same identifier again is a no-op.
	err = service.Register(ctx, validLEI)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IdentifiersRegistered))

	err = service.Register(ctx, "635400B4JJBON4TCHF02")
	require.NoError(t, err)

	identifiers, err := service.ListRegistered(ctx)
	require.NoError(t, err)
	require.Len(t, identifiers, 2)

	assert.Equal(t, "635400B4JJBON4TCHF02", identifiers[0].LEI)
	assert.Equal(t, validLEI, identifiers[1].LEI)
	assert.Equal(t, "YZ83", identifiers[1].LOUID)
	assert.Equal(t, "GD8L7GG84979J5", identifiers[1].EntityID)
	assert.False(t, identifiers[1].RegisteredAt.IsZero())
}

func TestValidatorService_Register_Invalid(t *testing.T) {
	service, m := setupService(t, config.ValidatorConfig{})

	err := service.Register(context.Background(), "YZ83GD8L7GG84979J517")
	assert.ErrorIs(t, err, lei.ErrInvalidCheckDigits)

	// Registration is always strict, regardless of the loose parsing flag.
	looseService, _ := setupService(t, config.ValidatorConfig{LooseParsing: true})
	err = looseService.Register(context.Background(), " yz83gd8l7gg84979j516 ")
	assert.ErrorIs(t, err, lei.ErrInvalidLength)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.IdentifiersRegistered))
}

// setupService builds a service on the real in-memory roster with an isolated
// metrics registry and a discarded logger.
func setupService(t *testing.T, cfg config.ValidatorConfig) (*application.ValidatorServiceImpl, *metrics.Metrics) {
	t.Helper()

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testAppLogger := applogger.NewSlogAdapter(discardLogger)
	testMetrics := metrics.New(prometheus.NewRegistry())

	service, err := application.NewValidatorService(
		identifier.NewInMemoryIdentifierRepo(),
		testAppLogger,
		testMetrics,
		cfg,
	)
	require.NoError(t, err)
	return service, testMetrics
}
