package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewGenerator_TimeoutDefaults(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewGenerator(0).timeout)
	assert.Equal(t, DefaultTimeout, NewGenerator(-time.Second).timeout)
	assert.Equal(t, 5*time.Second, NewGenerator(5*time.Second).timeout)
}
