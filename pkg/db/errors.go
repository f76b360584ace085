package db

import "errors"

var (
	ErrParseConfig = errors.New("db: invalid connection config")
	ErrConnect     = errors.New("db: cannot connect")
	ErrHealthcheck = errors.New("db: healthcheck failed")
	ErrMigrate     = errors.New("db: schema migration failed")
	ErrBeginTx     = errors.New("db: cannot begin transaction")
	ErrCommitTx    = errors.New("db: cannot commit transaction")
)
