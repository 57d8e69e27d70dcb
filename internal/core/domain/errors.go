package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleAlreadyExists is returned when registering a module with a name that already exists.
	ErrModuleAlreadyExists = zerr.New("module already exists")

	// ErrModuleNotFound is returned when a requested module is not registered.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrMissingEntryName is returned when a package file entry has no name.
	ErrMissingEntryName = zerr.New("package file entry is missing a name")

	// ErrIncompleteEntry is returned when a package file entry declares no content source.
	ErrIncompleteEntry = zerr.New("package file entry has no content, file, callback or config source")

	// ErrInvalidMainType is returned when the main package file entry is not a script.
	ErrInvalidMainType = zerr.New("main package file entry must be a script or script component")

	// ErrDuplicateMain is returned when more than one package file entry is marked main.
	ErrDuplicateMain = zerr.New("more than one package file entry marked main")

	// ErrConfigNotData is returned when a non-data package file entry uses config variable shorthand.
	ErrConfigNotData = zerr.New("config variables are only valid for data entries")

	// ErrUnknownCallback is returned when a package file entry references an unregistered callback.
	ErrUnknownCallback = zerr.New("unknown package file callback")

	// ErrUnknownVariable is returned when a config variable reference cannot be resolved.
	ErrUnknownVariable = zerr.New("unknown configuration variable")

	// ErrFileMissing is returned when a declared file does not exist.
	ErrFileMissing = zerr.New("referenced file does not exist")

	// ErrFileUnreadable is returned when a declared file exists but cannot be read.
	ErrFileUnreadable = zerr.New("referenced file cannot be read")

	// ErrCompileFailed wraps preprocessor compiler failures with file and module identity.
	ErrCompileFailed = zerr.New("style compilation failed")

	// ErrComponentParseFailed wraps component parser failures with file and module identity.
	ErrComponentParseFailed = zerr.New("component parse failed")

	// ErrOverrideAfterUse is returned when a skin override is applied after the module
	// has already answered a resolver query.
	ErrOverrideAfterUse = zerr.New("skin override applied after first use")

	// ErrConfigReadFailed is returned when the site configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the site configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreReadFailed is returned when a persistent store entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read store entry")

	// ErrStoreWriteFailed is returned when a persistent store entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write store entry")

	// ErrNoModulesSpecified is returned when a build is requested without module names.
	ErrNoModulesSpecified = zerr.New("no modules specified")
)
