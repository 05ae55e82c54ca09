package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wzlim/foodcourt/internal/core/utils"
)

func TestValidateLuhn(t *testing.T) {
	assert.NoError(t, utils.ValidateLuhn("4539148803436467"))
	assert.NoError(t, utils.ValidateLuhn("79927398713"))

	assert.Error(t, utils.ValidateLuhn("4539148803436468"))
	assert.Error(t, utils.ValidateLuhn("not-a-number"))
	assert.Error(t, utils.ValidateLuhn(""))
}
