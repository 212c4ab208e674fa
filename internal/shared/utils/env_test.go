package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PLANETS_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("PLANETS_TEST_VALUE", "fallback"))

	t.Setenv("PLANETS_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("PLANETS_TEST_VALUE", "fallback"))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("PLANETS_TEST_LIST", " http://a.example , ,http://b.example")
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, GetEnvList("PLANETS_TEST_LIST", "*"))

	t.Setenv("PLANETS_TEST_LIST", "")
	assert.Equal(t, []string{"*"}, GetEnvList("PLANETS_TEST_LIST", "*"))
}
