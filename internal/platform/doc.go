package platform

// Package platform contains OS/platform integration: opening URLs with the
// default handler and resolving per-user directories for logs.
