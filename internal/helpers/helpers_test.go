package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxpro/taxpro-api/internal/helpers"
)

func TestIsValidStage(t *testing.T) {
	assert.True(t, helpers.IsValidStage("prod"))
	assert.True(t, helpers.IsValidStage("dev"))
	assert.True(t, helpers.IsValidStage("local"))
	assert.False(t, helpers.IsValidStage("staging"))

	assert.False(t, helpers.IsDevelopment(helpers.StageProd))
	assert.True(t, helpers.IsDevelopment(helpers.StageLocal))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TAXPRO_TEST_STRING", "value")
	t.Setenv("TAXPRO_TEST_INT", "42")
	t.Setenv("TAXPRO_TEST_BAD_INT", "forty")
	t.Setenv("TAXPRO_TEST_BOOL", "false")
	t.Setenv("TAXPRO_TEST_LIST", "http://a.test, http://b.test ,,")

	assert.Equal(t, "value", helpers.GetEnv("TAXPRO_TEST_STRING", "x"))
	assert.Equal(t, "x", helpers.GetEnv("TAXPRO_TEST_UNSET", "x"))
	assert.Equal(t, 42, helpers.GetEnvInt("TAXPRO_TEST_INT", 1))
	assert.Equal(t, 1, helpers.GetEnvInt("TAXPRO_TEST_BAD_INT", 1))
	assert.False(t, helpers.GetEnvBool("TAXPRO_TEST_BOOL", true))
	assert.True(t, helpers.GetEnvBool("TAXPRO_TEST_UNSET", true))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, helpers.GetEnvList("TAXPRO_TEST_LIST", nil))
	assert.Equal(t, []string{"d"}, helpers.GetEnvList("TAXPRO_TEST_UNSET", []string{"d"}))
}
