package domain

import (
	"strings"
	"time"
)

// MediaType classifies an asset by its stored file extension.
type MediaType string

const (
	MediaTypeAll   MediaType = "all"
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Asset is a stored media file (image or video) plus its metadata row.
// StoredFileName is the opaque on-disk key; it is regenerated whenever the
// physical file is replaced and never reused. ThumbnailFileName is empty
// unless the asset is a video and a preview frame could be extracted.
type Asset struct {
	ID                int64
	StoredFileName    string
	FileExtension     string
	SizeBytes         int64
	Description       string
	ThumbnailFileName string
	Title             string
	Intro             string
	Genre             string
	Year              *int
	MovieID           *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsVideo reports whether the asset's extension is in the video set.
func (a *Asset) IsVideo() bool {
	return MediaTypeForExtension(a.FileExtension) == MediaTypeVideo
}

// AssetFilter narrows a listing. Zero values mean "no filter":
// MediaTypeAll (or empty) for Type, empty Query, MovieID <= 0.
type AssetFilter struct {
	Type    MediaType
	Query   string
	MovieID int64
}

// AssetMetaUpdate carries a partial metadata update. Nil fields are left
// untouched; non-nil fields overwrite the stored value, including when the
// pointed-to value is empty.
type AssetMetaUpdate struct {
	Description *string
	Title       *string
	Intro       *string
	Genre       *string
	Year        *int
	MovieID     *int64
}

// IsEmpty reports whether the update carries no fields at all.
func (u AssetMetaUpdate) IsEmpty() bool {
	return u.Description == nil && u.Title == nil && u.Intro == nil &&
		u.Genre == nil && u.Year == nil && u.MovieID == nil
}

// AssetPage is one page of a filtered asset listing, newest first.
type AssetPage struct {
	PageNumber int
	PageSize   int
	TotalCount int
	TotalPages int
	Items      []Asset
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".m4v":  {},
	".webm": {},
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// VideoExtensions returns the extensions classified as video, for SQL IN clauses.
func VideoExtensions() []string {
	return extensionList(videoExtensions)
}

// ImageExtensions returns the extensions classified as image, for SQL IN clauses.
func ImageExtensions() []string {
	return extensionList(imageExtensions)
}

func extensionList(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for ext := range set {
		out = append(out, ext)
	}
	return out
}

// ExtensionAllowed reports whether ext (lowercase, dot included) may be uploaded.
func ExtensionAllowed(ext string) bool {
	return MediaTypeForExtension(ext) != ""
}

// MediaTypeForExtension classifies an extension, returning "" when it is not
// an allowed upload type.
func MediaTypeForExtension(ext string) MediaType {
	ext = strings.ToLower(ext)
	if _, ok := videoExtensions[ext]; ok {
		return MediaTypeVideo
	}
	if _, ok := imageExtensions[ext]; ok {
		return MediaTypeImage
	}
	return ""
}

// ContentTypeForExtension resolves the download content type for a stored
// extension. Unknown extensions fall back to application/octet-stream.
func ContentTypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp4", ".m4v":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
