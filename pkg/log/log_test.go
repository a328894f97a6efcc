package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() {
		logrus.SetOutput(previous)
		Setup("debug", "development")
	})
	return buf
}

func TestSetup_ProductionKeepsAllFields(t *testing.T) {
	buf := captureOutput(t)
	Setup("info", "production")

	assert.False(t, IsDevelopment())
	L.WithFields(Fields{"company_id": "acme", "health_score": 72}).Info("insights: report generated")

	assert.Contains(t, buf.String(), `"health_score":72`)
	assert.Contains(t, buf.String(), `"company_id":"acme"`)
}

func TestSetup_DevelopmentFiltersFields(t *testing.T) {
	buf := captureOutput(t)
	Setup("debug", "development")

	assert.True(t, IsDevelopment())
	L.WithFields(Fields{"company_id": "acme", "health_score": 72}).Info("insights: report generated")

	assert.Contains(t, buf.String(), "company_id=acme")
	assert.NotContains(t, buf.String(), "health_score")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	captureOutput(t)
	Setup("verbose", "production")

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestCorrelationID(t *testing.T) {
	buf := captureOutput(t)
	Setup("debug", "production")

	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ForContext(ctx).Info("chat: session created")
	assert.Contains(t, buf.String(), id)
}
