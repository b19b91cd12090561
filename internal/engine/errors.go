package engine

import "errors"

var (
	// ErrNoScene is returned when the engine has no first scene to run.
	ErrNoScene = errors.New("engine: no initial scene")

	// ErrNoSuccessor is returned when a scene expires and has no next scene.
	ErrNoSuccessor = errors.New("engine: expired scene has no successor")
)
