package core

import "errors"

var (
	// ErrUnknownFormat is returned for a format id with no registered serializer.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrFormatDisabled is returned when a delivery asks for a format the
	// export configuration switches off.
	ErrFormatDisabled = errors.New("export format disabled")

	// ErrTooManyExports is returned when all export slots are occupied and the
	// wait timeout expires. Clients should retry after a short delay.
	ErrTooManyExports = errors.New("too many concurrent exports, please try again later")

	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileNameRequired = errors.New("profile name required")
	ErrPresetImmutable     = errors.New("preset profile is immutable")

	// ErrCatalogNotLoaded is returned before the first successful catalog refresh.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// ErrInvalidCatalog wraps source rows that cannot become products.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
