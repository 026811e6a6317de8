// Package schemas embeds the JSON Schema documents shipped with the binary so
// loaders can validate data files without a working-directory dependency.
package schemas

import _ "embed"

// AnalysisCriteria is the schema for per-role analysis criteria documents.
//
//go:embed analysis_criteria.schema.json
var AnalysisCriteria string

// JobRoles is the schema for the job role catalog.
//
//go:embed job_roles.schema.json
var JobRoles string
