package config

const (
	// MaxFolderNameLength is the maximum length for folder display names.
	// Limited to 255 to fit in VARCHAR(255).
	MaxFolderNameLength = 255

	// MaxShortNameLength is the maximum length for folder short names.
	// Short names end up in URLs, so they are kept short.
	MaxShortNameLength = 64

	// MaxFileNameLength is the maximum length for content item names
	MaxFileNameLength = 255

	// MaxCommentLength caps comment bodies
	MaxCommentLength = 4000

	// DefaultPageRows is the row size of public folder listings
	DefaultPageRows = 10

	// DefaultAdminPageRows is the row size of the admin type listing
	DefaultAdminPageRows = 5

	// DefaultImagePageRows is the row size of an admin's image gallery
	DefaultImagePageRows = 20

	// MaxPageRows caps the row size a client may request
	MaxPageRows = 100

	// DefaultFolderMaxDepth bounds the tree walk. Deeper trees (or a cyclic
	// parent chain written behind the service's back) fail instead of looping.
	DefaultFolderMaxDepth = 64
)
