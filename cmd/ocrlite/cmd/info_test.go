package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoCommand_IsRegistered(t *testing.T) {
	assert.NotNil(t, infoCmd)
	assert.Equal(t, "info", infoCmd.Use)
}

func TestModelStatus_ReportsMissingForEmptyPath(t *testing.T) {
	assert.Equal(t, "missing", modelStatus(""))
}
