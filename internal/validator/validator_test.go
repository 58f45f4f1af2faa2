package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/watersort/internal/domain"
)

func TestValidateSortableBoard(t *testing.T) {
	b, err := domain.NewBoardFromColors([][]domain.Color{
		{domain.Red, domain.Blue, domain.Red, domain.Blue},
		{domain.Blue, domain.Red, domain.Blue, domain.Red},
		nil,
	})
	require.NoError(t, err)
	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
	assert.Equal(t, b.CanBeSorted(), ok)
}

func TestValidateReportsConflictsInCodeOrder(t *testing.T) {
	b, err := domain.NewBoardFromColors([][]domain.Color{
		{domain.Orange, domain.Blue, domain.Blue},
		{domain.Green, domain.Green, domain.Green, domain.Green},
		{domain.Orange, domain.Orange, domain.Orange, domain.Orange},
	})
	require.NoError(t, err)
	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.ColorConflict{
		{Color: domain.Blue, Count: 2},
		{Color: domain.Orange, Count: 5},
	}, conf)
	assert.False(t, b.CanBeSorted())
}
