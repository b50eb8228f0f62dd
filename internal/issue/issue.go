// Package issue defines the static catalog of validation diagnostics and the
// sink that delivers them.
//
// Every diagnostic the validator can emit is declared up front as an Issue
// with a fixed severity, a stable numeric ID and a details format string.
// IDs are grouped by category (1000 I/O, 2000 file, 3000 header and index,
// 4000 level index, 7000 metadata) and are never reassigned once published,
// so downstream tooling may match on them.
package issue

import (
	"fmt"

	"github.com/ktxkit/ktxkit/pkg/types"
)

// Issue is one catalog entry. Severity is part of the issue's identity; it
// does not depend on how the issue is raised.
type Issue struct {
	Type       types.Severity
	ID         uint16
	Message    string
	DetailsFmt string
}

// Report binds args to the issue's details template.
func (i Issue) Report(args ...interface{}) types.ValidationReport {
	return types.ValidationReport{
		Type:    i.Type,
		ID:      i.ID,
		Message: i.Message,
		Details: fmt.Sprintf(i.DetailsFmt, args...),
	}
}

func warning(id uint16, message, detailsFmt string) Issue {
	return Issue{Type: types.SevWarning, ID: id, Message: message, DetailsFmt: detailsFmt}
}

func errorIssue(id uint16, message, detailsFmt string) Issue {
	return Issue{Type: types.SevError, ID: id, Message: message, DetailsFmt: detailsFmt}
}

func fatal(id uint16, message, detailsFmt string) Issue {
	return Issue{Type: types.SevFatal, ID: id, Message: message, DetailsFmt: detailsFmt}
}
