package cmd

import (
	log "github.com/sirupsen/logrus"

	"github.com/compmech/matprops/internal/composite"
	"github.com/compmech/matprops/internal/matlib"
)

// resolvePhases overrides the flag-supplied fiber/matrix properties with
// presets from a material library when one was given. Named presets win over
// individual flags; without a library path this is a no-op.
func resolvePhases(path, fiberName, matrixName string, fiber, matrix *composite.Phase) error {
	if path == "" {
		return nil
	}

	lib, err := matlib.Load(path)
	if err != nil {
		return err
	}

	if fiberName != "" {
		m, err := lib.Get(fiberName)
		if err != nil {
			return err
		}
		*fiber = composite.Phase{E: m.E, Nu: m.Nu, Alpha: m.Alpha, K: m.K}
		log.Debugf("fiber %q: E=%g Nu=%g Alpha=%g K=%g", fiberName, m.E, m.Nu, m.Alpha, m.K)
	}
	if matrixName != "" {
		m, err := lib.Get(matrixName)
		if err != nil {
			return err
		}
		*matrix = composite.Phase{E: m.E, Nu: m.Nu, Alpha: m.Alpha, K: m.K}
		log.Debugf("matrix %q: E=%g Nu=%g Alpha=%g K=%g", matrixName, m.E, m.Nu, m.Alpha, m.K)
	}
	return nil
}
