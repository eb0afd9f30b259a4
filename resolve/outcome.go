package resolve

import "fmt"

// Code classifies a failed outcome. An empty code means success.
type Code string

const (
	CodeInvalidInput       Code = "INVALID_INPUT_FORMAT"
	CodeMissingParameter   Code = "MISSING_PARAMETER"
	CodeDependencyNotFound Code = "DEPENDENCY_NOT_FOUND"
	CodeVersionNotFound    Code = "VERSION_NOT_FOUND"
	CodeTransportError     Code = "MAVEN_API_ERROR"
	CodeInternalError      Code = "INTERNAL_SERVER_ERROR"
	CodeEmptyBatch         Code = "EMPTY_DEPENDENCIES"
)

// Outcome is the terminal result of a resolution operation. No raw errors
// cross the engine's public boundary; every operation is total over this
// type. Callers can distinguish "nothing is published" (DEPENDENCY_NOT_FOUND)
// from "this version or scope is missing" (VERSION_NOT_FOUND).
type Outcome struct {
	Code    Code       // empty when the operation succeeded
	Version string     // resolved version on success; the missing version for VERSION_NOT_FOUND
	Exists  bool       // existence answer, set by ResolveExists
	Scope   Coordinate // coordinate the outcome refers to
	Detail  string     // human-readable failure detail
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool { return o.Code == "" }

// AllOutcome carries the per-scope outcomes of ResolveAllComponents.
type AllOutcome struct {
	Major Outcome
	Minor Outcome
	Patch Outcome
}

// OK reports whether every scope resolved.
func (a AllOutcome) OK() bool { return a.Major.OK() && a.Minor.OK() && a.Patch.OK() }

func successVersion(c Coordinate, v string) Outcome {
	return Outcome{Scope: c, Version: v}
}

func successExists(c Coordinate, version string, exists bool) Outcome {
	return Outcome{Scope: c, Version: version, Exists: exists}
}

func notFound(c Coordinate) Outcome {
	return Outcome{
		Code:   CodeDependencyNotFound,
		Scope:  c,
		Detail: fmt.Sprintf("No documents found for %s:%s in Maven Central", c.GroupID, c.ArtifactID),
	}
}

func versionNotFound(c Coordinate, version string, scope string) Outcome {
	detail := fmt.Sprintf("No versions matching the criteria found for %s:%s", c.GroupID, c.ArtifactID)
	if scope != "" {
		detail = fmt.Sprintf("%s with %s=%s", detail, scope, version)
	}
	return Outcome{Code: CodeVersionNotFound, Scope: c, Version: version, Detail: detail}
}

func transportError(c Coordinate, err error) Outcome {
	return Outcome{
		Code:   CodeTransportError,
		Scope:  c,
		Detail: fmt.Sprintf("Error querying Maven Central: %v", err),
	}
}

func invalidInput(c Coordinate, detail string) Outcome {
	return Outcome{Code: CodeInvalidInput, Scope: c, Detail: detail}
}

func internalError(c Coordinate, detail string) Outcome {
	return Outcome{Code: CodeInternalError, Scope: c, Detail: detail}
}
