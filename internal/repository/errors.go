// Package repository stores the gateway preferences in PostgreSQL.
package repository

import "errors"

var ErrNotFound = errors.New("preference not found")
