package service

import "github.com/chesschain/chesschain/internal/database/repository"

const (
	CheckPassedNote  = "Sin anomalías"
	CheckFlaggedNote = "Se recomienda revisión"
)

// SecurityCenter is the anti-fraud panel stub; its report never changes.
type SecurityCenter struct {
	report repository.SecurityReport
}

func NewSecurityCenter(report repository.SecurityReport) *SecurityCenter {
	report.Checks = append([]repository.SecurityCheck(nil), report.Checks...)
	return &SecurityCenter{report: report}
}

func (s *SecurityCenter) RiskScore() int { return s.report.RiskScore }

// Checks returns the checklist in display order.
func (s *SecurityCenter) Checks() []repository.SecurityCheck {
	return append([]repository.SecurityCheck(nil), s.report.Checks...)
}

// Flagged returns the checks that did not pass.
func (s *SecurityCenter) Flagged() []repository.SecurityCheck {
	var out []repository.SecurityCheck
	for _, c := range s.report.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// CheckNote is the one-line verdict shown under a check.
func CheckNote(c repository.SecurityCheck) string {
	if c.Passed {
		return CheckPassedNote
	}
	return CheckFlaggedNote
}
