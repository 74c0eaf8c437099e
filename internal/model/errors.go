package model

import "errors"

var (
	// Record lookups
	ErrDeviceNotFound    = errors.New("device not found")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrRuleNotFound      = errors.New("alert rule not found")
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrFileNotFound      = errors.New("file not found")

	// State transitions
	ErrAlreadyResolved = errors.New("alert already resolved")
	ErrRunInProgress   = errors.New("diagnostic run already in progress")

	// Generic
	ErrInvalidInput = errors.New("invalid input")
)
