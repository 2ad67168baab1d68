package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chesschain/chesschain/internal/database/repository"
)

func TestSecurityCenterIsStable(t *testing.T) {
	report := repository.SecurityReport{RiskScore: 12, Checks: []repository.SecurityCheck{
		{Label: "Verificación biométrica", Passed: true},
		{Label: "Análisis anti-bot", Passed: true},
		{Label: "Tiempo de respuesta estable", Passed: true},
		{Label: "Patrón de movimientos sospechoso", Passed: false},
	}}
	s := NewSecurityCenter(report)
	report.Checks[0].Passed = false

	require.Equal(t, 12, s.RiskScore())
	first := s.Checks()
	first[1].Label = "mutated"
	second := s.Checks()
	require.Len(t, second, 4)
	require.Equal(t, "Verificación biométrica", second[0].Label)
	require.True(t, second[0].Passed, "center keeps its own copy")
	require.Equal(t, "Análisis anti-bot", second[1].Label)

	flagged := s.Flagged()
	require.Len(t, flagged, 1)
	require.Equal(t, "Patrón de movimientos sospechoso", flagged[0].Label)
}

func TestCheckNote(t *testing.T) {
	require.Equal(t, "Sin anomalías", CheckNote(repository.SecurityCheck{Passed: true}))
	require.Equal(t, "Se recomienda revisión", CheckNote(repository.SecurityCheck{Passed: false}))
}
