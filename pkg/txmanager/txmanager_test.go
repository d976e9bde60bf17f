package txmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Минимальный драйвер: транзакции открываются, но Rollback всегда падает.
// Позволяет проверить обработку ошибок отката без реальной базы.
type failingRollbackDriver struct{}

func (failingRollbackDriver) Open(name string) (driver.Conn, error) {
	return &failingRollbackConn{}, nil
}

type failingRollbackConn struct{}

func (*failingRollbackConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (*failingRollbackConn) Close() error { return nil }

func (*failingRollbackConn) Begin() (driver.Tx, error) {
	return failingRollbackTx{}, nil
}

type failingRollbackTx struct{}

func (failingRollbackTx) Commit() error { return nil }

func (failingRollbackTx) Rollback() error { return errors.New("соединение потеряно") }

func init() {
	sql.Register("failing-rollback", failingRollbackDriver{})
}

func TestDo_RollbackFailureKeepsOriginalError(t *testing.T) {
	db, err := sql.Open("failing-rollback", "")
	require.NoError(t, err)
	defer db.Close()

	mgr := NewTransactionManager(db)
	errBusiness := errors.New("недоступен гид")

	err = mgr.Do(context.Background(), func(ctx context.Context) error {
		return errBusiness
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errBusiness, "исходная ошибка должна матчиться через errors.Is")
	assert.Contains(t, err.Error(), "rollback failed")
}

func TestDo_CommitOnSuccess(t *testing.T) {
	db, err := sql.Open("failing-rollback", "")
	require.NoError(t, err)
	defer db.Close()

	mgr := NewTransactionManager(db)

	var inTx bool
	err = mgr.Do(context.Background(), func(ctx context.Context) error {
		inTx = IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, inTx)
}

func TestIsInTransaction_False(t *testing.T) {
	assert.False(t, IsInTransaction(context.Background()))
}
