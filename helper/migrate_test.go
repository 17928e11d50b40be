package helper

import (
	"hotel/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAction(t *testing.T) {
	for _, action := range []string{ActionUp, ActionDown, ActionStepUp, ActionDrop} {
		assert.True(t, IsAction(action), action)
	}

	assert.False(t, IsAction("sideways"))
	assert.False(t, IsAction(""))
}

func TestRunnerRejectsUnknownAction(t *testing.T) {
	err := Runner(&config.Config{}, "sideways")

	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestAutoMigrateDisabled(t *testing.T) {
	assert.NoError(t, AutoMigrate(&config.Config{}))
}
