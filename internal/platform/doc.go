package platform

// Package platform contains OS integration glue: locating the per-user
// configuration directory.
