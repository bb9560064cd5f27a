package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(_ fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &fakeFeature{name: "on", enabled: true}
	disabled := &fakeFeature{name: "off", enabled: false}

	mgr := NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	assert.NoError(t, mgr.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestManager_LoadAll_FailsFast(t *testing.T) {
	app := fiber.New()

	broken := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}

	mgr := NewManager()
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(app)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
