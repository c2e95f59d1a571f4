package renderenv

// Renderer prepares the native engine for a test run.
//
// Callers must follow this lifecycle ordering:
//
//	NewRenderer → Prepare → (render sessions from the builder) → Close
//
// Prepare succeeds at most once per Renderer. Close is safe to call at any
// point, including before Prepare, and more than once.
type Renderer interface {
	// Prepare loads the resource repositories, initializes the native engine
	// and registers the engine logger, then returns the session template.
	//
	// Returns an error matching ErrConfig for configuration problems (for
	// example ErrMissingPlatformDataRoot) and ErrEngineInit when the engine
	// refuses to initialize or another Renderer holds it. Resource and
	// property file failures are returned wrapped and match neither. After a
	// failed Prepare no engine is held and Prepare may be retried.
	//
	// Returns ErrAlreadyPrepared on a prepared Renderer and
	// ErrRendererClosed after Close.
	Prepare() (*SessionParamsBuilder, error)

	// Close releases the native engine, reclaims native memory and, when
	// RENDERENV_DEBUG_LINKED_OBJECTS is set, dumps the native objects still
	// referenced. Builders returned by Prepare must not be used afterwards;
	// their Params method returns ErrBuilderInvalidated.
	Close() error

	// DumpDelegates prints the native objects still referenced by the engine
	// when RENDERENV_DEBUG_LINKED_OBJECTS is set, and does nothing otherwise.
	DumpDelegates()
}
