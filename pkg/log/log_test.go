package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_WithContextAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, logrus.DebugLevel)

	ctx, id := WithCorrelationID(context.Background())
	l.WithContext(ctx).WithField(FieldOutcome, "data").Info("resumo carregado")

	out := buf.String()
	assert.Contains(t, out, `"correlation_id":"`+id+`"`)
	assert.Contains(t, out, `"outcome":"data"`)
	assert.Contains(t, out, "resumo carregado")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, logrus.WarnLevel)

	l.Debug("invisível")
	l.Warn("visível")

	assert.NotContains(t, buf.String(), "invisível")
	assert.Contains(t, buf.String(), "visível")
}
