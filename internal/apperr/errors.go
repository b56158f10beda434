// Package apperr holds the sentinel errors shared across thn layers.
package apperr

import "errors"

var (
	ErrNotConfigured = errors.New("not configured. run 'thn init [PATH]' first")
	ErrVaultNotFound = errors.New("vault not found")
	ErrNotVault      = errors.New("not an obsidian vault")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
)
