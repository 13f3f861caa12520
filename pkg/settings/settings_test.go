package settings_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/settings"
)

func newTestService(t *testing.T) (*settings.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return settings.New(db), mock
}

func TestGet_MissingKeyIsNotAnError(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
		WithArgs("org-1", "no_such_key").
		WillReturnError(sql.ErrNoRows)

	_, found, err := svc.Get(context.Background(), "org-1", "no_such_key")
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_UpsertsJSONValue(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
		WithArgs("org-1", settings.KeyBudgetDefaultUSD, []byte(`25.5`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Set(context.Background(), "org-1", settings.KeyBudgetDefaultUSD, 25.5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFloat_FallsBackWhenUnset(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
		WillReturnError(sql.ErrNoRows)

	got := svc.GetFloat(context.Background(), "org-1", settings.KeyBudgetDefaultUSD, 10.0)
	assert.Equal(t, 10.0, got)
}

func TestGetFloat_ReadsStoredValue(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
		WithArgs("org-1", settings.KeyBudgetDefaultUSD).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`42.0`)))

	got := svc.GetFloat(context.Background(), "org-1", settings.KeyBudgetDefaultUSD, 10.0)
	assert.Equal(t, 42.0, got)
}

func TestGetDuration_ReadsSecondsValue(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
		WithArgs("org-1", settings.KeySandboxReconcileSecond).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`45`)))

	got := svc.GetDuration(context.Background(), "org-1", settings.KeySandboxReconcileSecond, 20*time.Second)
	assert.Equal(t, 45*time.Second, got)
}

func TestListForOrg(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value FROM settings")).
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", []byte(`1`)).
			AddRow("b", []byte(`"two"`)))

	all, err := svc.ListForOrg(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.JSONEq(t, `1`, string(all["a"]))
	assert.JSONEq(t, `"two"`, string(all["b"]))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM settings")).
		WithArgs("org-1", "a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Delete(context.Background(), "org-1", "a"))
	require.NoError(t, mock.ExpectationsWereMet())
}
