package validator

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateID("5f0c6b8e-3a51-4c6e-9d4f-2b1f7a0c9e11"))
	assert.NoError(t, v.ValidateID("video-42"))
	assert.Error(t, v.ValidateID(""))
	assert.Error(t, v.ValidateID("has space"))
	assert.Error(t, v.ValidateID("emoji🙂"))
	assert.Error(t, v.ValidateID(strings.Repeat("a", maxIDLength+1)))
}

func TestValidateTitle(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateTitle("Sunrise over the old harbour"))
	assert.Error(t, v.ValidateTitle(""))
	assert.Error(t, v.ValidateTitle("bad\x00title"))
	assert.Error(t, v.ValidateTitle(strings.Repeat("t", maxTitleLength+1)))
}

func TestVoteActionTag(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerOn(v))

	type req struct {
		Action string `validate:"required,voteaction"`
	}

	assert.NoError(t, v.Struct(req{Action: "like"}))
	assert.NoError(t, v.Struct(req{Action: "dislike"}))
	assert.Error(t, v.Struct(req{Action: "love"}))
	assert.Error(t, v.Struct(req{Action: ""}))
}

func TestRegisterCustomValidators(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())

	type req struct {
		Action string `binding:"required,voteaction"`
	}
	assert.NoError(t, binding.Validator.ValidateStruct(req{Action: "like"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Action: "love"}))
}

func TestRegisterOn_ReportsFailure(t *testing.T) {
	customValidations[""] = voteActionFL
	defer delete(customValidations, "")

	err := registerOn(validator.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
	assert.Panics(t, func() { NewValidator() })
}
