package openapi

import "embed"

// FS contains the OpenAPI documents embedded into the binary.
//
//go:embed v1/*
var FS embed.FS
