package utils

import "strings"

// extensionByMime covers the media types pins typically carry.
var extensionByMime = map[string]string{
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/heic":               ".heic",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
	"video/mp4":                ".mp4",
	"video/mpeg":               ".mpeg",
	"video/ogg":                ".ogv",
	"video/quicktime":          ".mov",
	"video/webm":               ".webm",
	"audio/mpeg":               ".mp3",
	"audio/ogg":                ".ogg",
	"audio/wav":                ".wav",
	"application/pdf":          ".pdf",
	"application/json":         ".json",
	"application/zip":          ".zip",
	"application/gzip":         ".gz",
	"application/octet-stream": ".bin",
	"text/plain":               ".txt",
	"text/csv":                 ".csv",
}

// ExtensionForMime returns a usual file extension for a MIME type, ".bin"
// when none is known. Parameters like "; charset=utf-8" are ignored.
func ExtensionForMime(mime string) string {
	base := strings.TrimSpace(strings.Split(mime, ";")[0])
	if ext, ok := extensionByMime[base]; ok {
		return ext
	}

	return ".bin"
}
