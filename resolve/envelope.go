package resolve

// Envelope is the external success/error shape handed to the protocol
// layer. Result holds tool-specific keys on success; Error is set otherwise.
type Envelope struct {
	Tool   string         `json:"tool_name"`
	Status string         `json:"status"`
	Result map[string]any `json:"result,omitempty"`
	Error  *EnvelopeError `json:"error,omitempty"`
}

// EnvelopeError carries the failure code and a human-readable message.
type EnvelopeError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func errorEnvelope(tool string, o Outcome) Envelope {
	return Envelope{
		Tool:   tool,
		Status: "error",
		Error:  &EnvelopeError{Code: o.Code, Message: o.Detail},
	}
}

// AssembleLatest maps a ResolveLatest or ResolveComponent outcome.
func AssembleLatest(tool string, o Outcome) Envelope {
	if !o.OK() {
		return errorEnvelope(tool, o)
	}
	return Envelope{
		Tool:   tool,
		Status: "success",
		Result: map[string]any{"latest_version": o.Version},
	}
}

// AssembleExists maps a ResolveExists outcome.
func AssembleExists(tool string, o Outcome) Envelope {
	if !o.OK() {
		return errorEnvelope(tool, o)
	}
	return Envelope{
		Tool:   tool,
		Status: "success",
		Result: map[string]any{"exists": o.Exists},
	}
}

// AssembleAll maps a ResolveAllComponents outcome. The major answer decides
// success; minor and patch are included when they resolved.
func AssembleAll(tool string, all AllOutcome) Envelope {
	if !all.Major.OK() {
		return errorEnvelope(tool, all.Major)
	}
	result := map[string]any{"latest_major_version": all.Major.Version}
	if all.Minor.OK() {
		result["latest_minor_version"] = all.Minor.Version
	}
	if all.Patch.OK() {
		result["latest_patch_version"] = all.Patch.Version
	}
	return Envelope{Tool: tool, Status: "success", Result: result}
}

// AssembleBatch maps a batch result, preserving item order.
func AssembleBatch(tool string, res BatchResult) Envelope {
	deps := make([]map[string]any, 0, len(res.Items))
	for _, it := range res.Items {
		entry := map[string]any{"dependency": it.Dependency}
		if it.Outcome.Major.OK() {
			entry["status"] = "success"
			inner := map[string]any{"latest_major_version": it.Outcome.Major.Version}
			if it.Outcome.Minor.OK() {
				inner["latest_minor_version"] = it.Outcome.Minor.Version
			}
			if it.Outcome.Patch.OK() {
				inner["latest_patch_version"] = it.Outcome.Patch.Version
			}
			entry["result"] = inner
		} else {
			entry["status"] = "error"
			entry["error"] = map[string]any{
				"code":    it.Outcome.Major.Code,
				"message": it.Outcome.Major.Detail,
			}
		}
		deps = append(deps, entry)
	}

	return Envelope{
		Tool:   tool,
		Status: string(res.Status),
		Result: map[string]any{
			"dependencies": deps,
			"summary": map[string]any{
				"total":   res.Summary.Total,
				"success": res.Summary.Succeeded,
				"failed":  res.Summary.Failed,
			},
		},
	}
}
