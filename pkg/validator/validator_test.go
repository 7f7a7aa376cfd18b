package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Driver string `validate:"oneof=postgres memory"`
	Host   string `validate:"required_if=Driver postgres"`
	Port   int    `validate:"min=1,max=65535"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Driver: "memory", Port: 1}))
	assert.NoError(t, v.Validate(&sample{Driver: "postgres", Host: "db", Port: 5432}))

	err := v.Validate(&sample{Driver: "postgres", Port: 70000})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "sample.host is required")
		assert.Contains(t, err.Error(), "sample.port must not exceed 65535")
	}

	err = v.Validate(&sample{Driver: "mysql", Port: 1})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "sample.driver must be one of [postgres memory]")
	}
}
