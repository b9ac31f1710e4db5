// Package dbtest provides database handles for exercising store error paths without a server.
package dbtest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
)

// Failing returns a *sql.DB on which every query, exec and transaction fails with err.
func Failing(err error) *sql.DB {
	return sql.OpenDB(connector{err: err})
}

type connector struct {
	err error
}

func (c connector) Connect(context.Context) (driver.Conn, error) { return conn(c), nil }

func (c connector) Driver() driver.Driver { return failingDriver{} }

type failingDriver struct{}

func (failingDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("dbtest: open through the connector")
}

type conn struct {
	err error
}

func (c conn) Prepare(string) (driver.Stmt, error) { return nil, c.err }

func (c conn) Close() error { return nil }

func (c conn) Begin() (driver.Tx, error) { return nil, c.err }

func (c conn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return nil, c.err
}

func (c conn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	return nil, c.err
}
