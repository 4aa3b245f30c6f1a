package identifier_test

import (
	"context"
	"testing"
	"time"

	"lei_validator/internal/adapters/storage/memory/identifier"
	"lei_validator/internal/core/domain"
	"lei_validator/pkg/lei"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdentifierRepo_AddExistsFindAll(t *testing.T) {
	repo := identifier.NewInMemoryIdentifierRepo()
	ctx := context.Background()

	code1, err1 := lei.Parse("YZ83GD8L7GG84979J516")
	require.NoError(t, err1)
	code2, err2 := lei.Parse("635400B4JJBON4TCHF02")
	require.NoError(t, err2)

	now := time.Now().UTC()
	entry1 := domain.NewRegisteredIdentifier(code1, now)
	entry2 := domain.NewRegisteredIdentifier(code2, now.Add(time.Second))

	initial, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, initial)

	exists1, err := repo.Exists(ctx, code1)
	require.NoError(t, err)
	assert.False(t, exists1)

	err = repo.Add(ctx, entry1)
	require.NoError(t, err)

	exists1, err = repo.Exists(ctx, code1)
	require.NoError(t, err)
	assert.True(t, exists1)

	after1, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after1, 1)
	assert.Equal(t, entry1, after1[0])

	err = repo.Add(ctx, entry2)
	require.NoError(t, err)

	// Re-adding keeps the original entry and its timestamp.
	err = repo.Add(ctx, domain.NewRegisteredIdentifier(code1, now.Add(time.Hour)))
	require.NoError(t, err)

	after2, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, after2, 2)

	// FindAll orders by canonical string.
	assert.Equal(t, code2, after2[0].Code)
	assert.Equal(t, code1, after2[1].Code)
	assert.Equal(t, now, after2[1].RegisteredAt)
}
