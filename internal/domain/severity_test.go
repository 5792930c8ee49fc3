package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity_Names(t *testing.T) {
	for raw, want := range map[string]domain.Severity{
		"off":   domain.SeverityOff,
		"warn":  domain.SeverityWarn,
		"error": domain.SeverityError,
		"OFF":   domain.SeverityOff,
		"Warn":  domain.SeverityWarn,
		"ERROR": domain.SeverityError,
	} {
		got, err := domain.ParseSeverity(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseSeverity_Ordinals(t *testing.T) {
	got, err := domain.ParseSeverity(0)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityOff, got)

	got, err = domain.ParseSeverity(2)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityError, got)

	// JSON numbers decode as float64.
	got, err = domain.ParseSeverity(float64(1))
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityWarn, got)
}

func TestParseSeverity_Typed(t *testing.T) {
	got, err := domain.ParseSeverity(domain.SeverityError)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityError, got)
}

func TestParseSeverity_Invalid(t *testing.T) {
	_, err := domain.ParseSeverity("fatal")
	assert.Error(t, err)

	_, err = domain.ParseSeverity(3)
	assert.Error(t, err)

	_, err = domain.ParseSeverity(-1)
	assert.Error(t, err)

	_, err = domain.ParseSeverity(1.5)
	assert.Error(t, err)

	_, err = domain.ParseSeverity([]string{"warn"})
	assert.Error(t, err)
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(domain.SeverityError)
	require.NoError(t, err)
	assert.Equal(t, `"error"`, string(data))

	var s domain.Severity
	require.NoError(t, json.Unmarshal([]byte(`"warn"`), &s))
	assert.Equal(t, domain.SeverityWarn, s)

	require.NoError(t, json.Unmarshal([]byte(`2`), &s))
	assert.Equal(t, domain.SeverityError, s)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "off", domain.SeverityOff.String())
	assert.Equal(t, "warn", domain.SeverityWarn.String())
	assert.Equal(t, "error", domain.SeverityError.String())
}
