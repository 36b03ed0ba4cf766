package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultLevel(t *testing.T) {
	logger := New(false)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestNewVerboseLevel(t *testing.T) {
	logger := New(true)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}
