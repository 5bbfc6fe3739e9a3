// Package userstore provides auth.Store implementations.
//
// Memory keeps records in process and is meant for tests and single-node
// demos. Mongo, Postgres and Redis persist records in the respective
// backend and enforce email uniqueness there: a unique index, a UNIQUE
// constraint and a Lua script respectively. All drivers report
// auth.ErrDuplicateIdentity and auth.ErrNotFound, and ListAll returns
// records in creation order.
package userstore
