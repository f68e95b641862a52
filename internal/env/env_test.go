package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("PRESENCA_TEST_STRING", "value")
	t.Setenv("PRESENCA_TEST_INT", "42")
	t.Setenv("PRESENCA_TEST_BAD_INT", "forty-two")
	t.Setenv("PRESENCA_TEST_BOOL", "true")
	t.Setenv("PRESENCA_TEST_DURATION", "90s")

	assert.Equal(t, "value", GetString("PRESENCA_TEST_STRING", "default"))
	assert.Equal(t, "default", GetString("PRESENCA_TEST_MISSING", "default"))
	assert.Equal(t, 42, GetInt("PRESENCA_TEST_INT", 0))
	assert.Equal(t, 7, GetInt("PRESENCA_TEST_BAD_INT", 7))
	assert.True(t, GetBool("PRESENCA_TEST_BOOL", false))
	assert.False(t, GetBool("PRESENCA_TEST_MISSING", false))
	assert.Equal(t, 90*time.Second, GetDuration("PRESENCA_TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("PRESENCA_TEST_MISSING", time.Minute))
}
