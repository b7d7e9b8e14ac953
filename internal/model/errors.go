package model

import "fmt"

// ManifestErrorKind tells the two ways a manifest can fail to parse apart.
type ManifestErrorKind int

const (
	// NotAPackage means the directory holds no manifest at all.
	NotAPackage ManifestErrorKind = iota
	// InvalidManifest means a manifest exists but is malformed or fails validation.
	InvalidManifest
)

// String returns a short label for the kind.
func (k ManifestErrorKind) String() string {
	switch k {
	case NotAPackage:
		return "not-a-package"
	case InvalidManifest:
		return "invalid-manifest"
	default:
		return "unknown"
	}
}

// ManifestError is the failure half of a manifest parse.
type ManifestError struct {
	Kind      ManifestErrorKind
	Directory string
	Detail    string
	Err       error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Kind == NotAPackage {
		return fmt.Sprintf("directory %q contains no package manifest", e.Directory)
	}

	return fmt.Sprintf("invalid package manifest in %q: %s", e.Directory, e.Detail)
}

// Unwrap returns the underlying cause, if any.
func (e *ManifestError) Unwrap() error {
	return e.Err
}

// InstallError annotates a failed install of a package reference. The engine
// reports failures as booleans; the CLI wraps them in this type.
type InstallError struct {
	Ref string
	Err error
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("installing %s: %v", e.Ref, e.Err)
	}

	return fmt.Sprintf("installing %s failed", e.Ref)
}

// Unwrap returns the underlying cause, if any.
func (e *InstallError) Unwrap() error {
	return e.Err
}
