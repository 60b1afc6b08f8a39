//go:build !ebiten

package ui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/agelife/model"
	"github.com/sheikhrachel/agelife/utils"
)

// ErrNoWindow is returned when the binary was built without window support.
var ErrNoWindow = errors.New("the window renderer requires building with the 'ebiten' tag")

// Run reports that the headless build cannot open a window.
func Run(utils.Config, *model.Grid, *model.Stepper) error {
	return errors.WithStack(ErrNoWindow)
}
