package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Operations that touch multiple rows (create-with-media, replace-media,
// cascading delete, comment-insert-plus-bump) are executed inside a single
// database transaction so no orphaned rows survive a partial failure.
