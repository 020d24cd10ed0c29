//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cermartin/sr/internal/domain/order"
	"github.com/cermartin/sr/internal/infra"
	"github.com/cermartin/sr/internal/infra/repository"
	"github.com/cermartin/sr/tests/common/builder"
	repositorymock "github.com/cermartin/sr/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRow stands in for the single row a QueryRow returns.
type fakeRow struct {
	scan func(dest ...any) error
}

func (r *fakeRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

// =============================================================================
// Insert Tests
// =============================================================================

func TestOrderRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockDB)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: order inserted successfully",
			setupMock: func(db *repositorymock.MockDB) {
				db.EXPECT().Exec(ctx, gomock.Any(), gomock.Any()).Return(pgconn.CommandTag{}, nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(db *repositorymock.MockDB) {
				db.EXPECT().Exec(ctx, gomock.Any(), gomock.Any()).Return(pgconn.CommandTag{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := repositorymock.NewMockDB(ctrl)
			repo := repository.NewOrderRepository(mockDB)

			tc.setupMock(mockDB)

			actualError := repo.Insert(ctx, builder.NewOrderBuilder().BuildDomain())

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindBySessionID Tests
// =============================================================================

func TestOrderRepository_FindBySessionID(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewOrderBuilder().
		With(func(b *builder.OrderBuilder) {
			b.ShippingPence = 500
			b.Lines = append(b.Lines, order.Line{
				ProductName: "Coastal Hex",
				Quantity:    2,
				UnitPence:   2000,
			})
			b.SubtotalPence = 24000
		}).
		BuildDomain()

	testCases := []struct {
		name          string
		scan          func(dest ...any) error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:          "success: order found by session id",
			scan:          scanOrderRow(t, stored),
			expectedError: false,
		},
		{
			name: "error: order not found",
			scan: func(dest ...any) error {
				return pgx.ErrNoRows
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			scan: func(dest ...any) error {
				return errors.New("database connection error")
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: stored items are not valid json",
			scan: func(dest ...any) error {
				*(dest[10].(*[]byte)) = []byte("{not json")
				return nil
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := repositorymock.NewMockDB(ctrl)
			mockDB.EXPECT().QueryRow(ctx, gomock.Any(), stored.PaymentSessionID).Return(&fakeRow{scan: tc.scan})
			repo := repository.NewOrderRepository(mockDB)

			found, actualError := repo.FindBySessionID(ctx, stored.PaymentSessionID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				return
			}

			require.NoError(t, actualError)
			assert.Equal(t, stored.ID, found.ID)
			assert.Equal(t, stored.Reference, found.Reference)
			assert.Equal(t, stored.Email, found.Email)
			assert.Equal(t, stored.SubtotalPence, found.SubtotalPence)
			assert.Equal(t, stored.ShippingPence, found.ShippingPence)
			assert.Equal(t, stored.TotalPence, found.TotalPence)
			assert.Equal(t, stored.Lines, found.Lines)
		})
	}
}

// scanOrderRow writes the stored order into the scan destinations the
// same way a real row would, with the lines serialized as JSON.
func scanOrderRow(t *testing.T, o *order.Order) func(dest ...any) error {
	t.Helper()

	type lineRecord struct {
		ProductName string `json:"product_name"`
		VariantName string `json:"variant_name,omitempty"`
		Quantity    int    `json:"quantity"`
		UnitPence   int64  `json:"unit_pence"`
	}
	records := make([]lineRecord, len(o.Lines))
	for i, l := range o.Lines {
		records[i] = lineRecord{ProductName: l.ProductName, VariantName: l.VariantName, Quantity: l.Quantity, UnitPence: l.UnitPence}
	}
	items, err := json.Marshal(records)
	require.NoError(t, err)

	return func(dest ...any) error {
		*(dest[0].(*uuid.UUID)) = o.ID
		*(dest[1].(*string)) = o.Reference
		*(dest[2].(*string)) = o.Email
		*(dest[3].(*string)) = o.Phone
		*(dest[4].(*string)) = o.FirstName
		*(dest[5].(*string)) = o.LastName
		*(dest[6].(*string)) = o.Address
		*(dest[7].(*string)) = o.City
		*(dest[8].(*string)) = o.Postcode
		*(dest[9].(*string)) = o.Country
		*(dest[10].(*[]byte)) = items
		*(dest[11].(*int64)) = o.SubtotalPence
		*(dest[12].(*int64)) = o.ShippingPence
		*(dest[13].(*int64)) = o.TotalPence
		*(dest[14].(*string)) = o.PaymentSessionID
		*(dest[15].(*string)) = o.CardLastFour
		*(dest[16].(*time.Time)) = o.CreatedAt
		return nil
	}
}
