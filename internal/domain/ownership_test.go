package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangmn/catalog-api/internal/domain"
)

func TestCheckOwnership(t *testing.T) {
	t.Parallel()

	category, err := domain.NewCategory("Books", "Printed matter", 7)
	require.NoError(t, err)

	item, err := domain.NewItem("Dune", "A science fiction novel", 1, 7)
	require.NoError(t, err)

	tests := []struct {
		name     string
		resource domain.Owned
		userID   int64
		wantErr  error
	}{
		{
			name:     "category owner allowed",
			resource: category,
			userID:   7,
			wantErr:  nil,
		},
		{
			name:     "category non-owner forbidden",
			resource: category,
			userID:   8,
			wantErr:  domain.ErrForbidden,
		},
		{
			name:     "item owner allowed",
			resource: item,
			userID:   7,
			wantErr:  nil,
		},
		{
			name:     "item non-owner forbidden",
			resource: item,
			userID:   8,
			wantErr:  domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := domain.CheckOwnership(tt.resource, tt.userID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
