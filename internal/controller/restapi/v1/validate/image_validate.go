package validate

const (
	FormField = "image"

	MaxImageSize int64 = 10 * 1024 * 1024
)

var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AllowedExtensions lists accepted file name extensions. A name with no
// extension (a pasted "blob") is judged by its content type alone.
var AllowedExtensions = map[string]bool{
	"":      true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}
