package models

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionDataFile   = 0644
)

// Correction log backends
const (
	CorrectionBackendYAML   = "yaml"
	CorrectionBackendSQLite = "sqlite"
	CorrectionBackendNone   = "none"
)

// Scoring variants
const (
	VariantBrandAware = "brand-aware"
	VariantPattern    = "pattern"
)
