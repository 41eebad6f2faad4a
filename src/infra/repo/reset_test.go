package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE category, post RESTART IDENTITY`)).
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	require.NoError(t, Truncate(context.Background(), mock))

	mock.ExpectExec(`TRUNCATE`).WillReturnError(errors.New("permission denied"))
	err = Truncate(context.Background(), mock)
	assert.ErrorContains(t, err, "truncate tables: permission denied")

	assert.NoError(t, mock.ExpectationsWereMet())
}
