// Package users persists the authors of document changes.
//
// Users are keyed by the stable external id handed over by the identity
// layer. A user row is created the first time that key is seen and
// reused by every later version that the same user authors; rows are
// never updated or deleted.
package users
