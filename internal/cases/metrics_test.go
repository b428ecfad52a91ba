package cases

import (
	"context"
	"fmt"
	"testing"

	"github.com/aiharmwatch/harmwatch/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityLabel(t *testing.T) {
	tests := []struct {
		severity string
		want     string
	}{
		{"low", "low"},
		{"medium", "medium"},
		{"high", "high"},
		{"critical", "critical"},
		{"CRITICAL", "other"},
		{"sev-1", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			assert.Equal(t, tt.want, severityLabel(domain.Severity(tt.severity)))
		})
	}
}

func TestCreateCase_SeverityLabelsBounded(t *testing.T) {
	// Arrange
	casesCreated.Reset()
	t.Cleanup(casesCreated.Reset)
	service := NewService(newMockRepository(), Config{})
	ctx := context.Background()

	// Act
	for i := range 1000 {
		_, err := service.CreateCase(ctx, CreateCaseInput{Severity: fmt.Sprintf("sev-%d", i)})
		require.NoError(t, err)
	}
	_, err := service.CreateCase(ctx, CreateCaseInput{Severity: "high"})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, testutil.CollectAndCount(casesCreated))
	assert.Equal(t, float64(1000), testutil.ToFloat64(casesCreated.WithLabelValues(otherSeverity)))
	assert.Equal(t, float64(1), testutil.ToFloat64(casesCreated.WithLabelValues("high")))
}
