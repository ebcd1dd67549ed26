package domain

import "go.trai.ch/zerr"

var (
	// ErrLoadTimeout is returned when a remote read or subscription produces no data within its budget.
	ErrLoadTimeout = zerr.New("timed out waiting for data")

	// ErrPermissionDenied is returned when the remote store rejects an operation for the current user.
	ErrPermissionDenied = zerr.New("permission denied")

	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = zerr.New("document not found")

	// ErrEmptyName is returned when an item or category is created with a blank name.
	ErrEmptyName = zerr.New("name cannot be empty")

	// ErrDuplicateCategory is returned when a category with the same name already exists for the group.
	ErrDuplicateCategory = zerr.New("category already exists")

	// ErrNoList is returned when a controller operation runs before a list is opened.
	ErrNoList = zerr.New("no list is open")

	// ErrItemNotFound is returned when an item mutation references an unknown item.
	ErrItemNotFound = zerr.New("item not found")

	// ErrChecklistIndex is returned when a checklist mutation references an entry that does not exist.
	ErrChecklistIndex = zerr.New("checklist entry index out of range")

	// ErrStorageRead is returned when a storage tier cannot be read.
	ErrStorageRead = zerr.New("failed to read from storage tier")

	// ErrStorageWrite is returned when a storage tier cannot be written.
	ErrStorageWrite = zerr.New("failed to write to storage tier")

	// ErrSettingsRead is returned when the settings file cannot be read.
	ErrSettingsRead = zerr.New("failed to read settings file")

	// ErrSettingsParse is returned when the settings file cannot be parsed.
	ErrSettingsParse = zerr.New("failed to parse settings file")

	// ErrSubscribeFailed is returned when a live subscription cannot be established.
	ErrSubscribeFailed = zerr.New("failed to establish subscription")
)
