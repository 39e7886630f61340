package core

import (
	"errors"
)

var (
	ErrInvalidTickRate      = errors.New("tick rate must be positive")
	ErrInvalidMaxFrameTime  = errors.New("max frame time must be positive")
	ErrPlatformNotStarted   = errors.New("platform has not been started")
	ErrEngineNotInitialized = errors.New("engine has not been initialized")
)
