// Package api содержит OpenAPI-описание HTTP API.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
