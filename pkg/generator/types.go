package generator

const (
	DefaultCreateModel = "imagen-4.0-generate-001"
	DefaultEditModel   = "gemini-2.5-flash-image"

	UseImageCompression     = true
	ImageCompressionQuality = 75
	cacheKeyImageData       = "image_data:"

	createOutputMIMEType = "image/jpeg"
)

// ImageOutput は Core の内部解析結果
type ImageOutput struct {
	Data     []byte
	MimeType string
	UsedSeed int64
}
