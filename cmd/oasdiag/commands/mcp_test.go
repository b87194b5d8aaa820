package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleMCP_Help(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"--help"}))
}

func TestHandleMCP_UnknownFlag(t *testing.T) {
	assert.Error(t, HandleMCP([]string{"--bogus"}))
}
