package media

import "errors"

var (
	ErrUnsupportedType = errors.New("Invalid file type. Only JPEG, PNG, GIF and WebP are allowed.")
	ErrTooLarge        = errors.New("File too large. Maximum size is 5MB.")
	ErrNoFile          = errors.New("No file uploaded")
)

// Kind selects the folder an upload lands in.
type Kind string

const (
	KindImage   Kind = "image"
	KindService Kind = "service"
	KindTour    Kind = "tour"
	KindBlog    Kind = "blog"
)

func (k Kind) Folder() string {
	switch k {
	case KindService:
		return "services"
	case KindTour:
		return "tours"
	case KindBlog:
		return "blog"
	default:
		return "images"
	}
}

// Label is used in the upload success message.
func (k Kind) Label() string {
	switch k {
	case KindService:
		return "Service image"
	case KindTour:
		return "Tour image"
	case KindBlog:
		return "Blog image"
	default:
		return "Image"
	}
}

func (k Kind) IsValid() bool {
	switch k {
	case KindImage, KindService, KindTour, KindBlog:
		return true
	default:
		return false
	}
}

// AllowedTypes maps accepted MIME types to the stored format name.
var AllowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

type Image struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Size      int64  `json:"size"`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Data    *Image `json:"data"`
	Message string `json:"message"`
}
