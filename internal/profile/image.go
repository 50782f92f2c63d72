package profile

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/skillsync/internal/config"
)

const invalidImageTitle = "Invalid image"

// ImageDataURI checks data against cfg and encodes it as a data: URI. The type
// is detected from the content, not from the file name.
func ImageDataURI(data []byte, cfg *config.ImageConfig) (string, error) {
	if int64(len(data)) > cfg.MaxBytes {
		return "", &RuleError{
			Title:   invalidImageTitle,
			Message: fmt.Sprintf("Images must be %s or smaller.", formatBytes(cfg.MaxBytes)),
		}
	}
	if len(data) == 0 {
		return "", &RuleError{Title: invalidImageTitle, Message: "The selected file is empty."}
	}

	mt := mimetype.Detect(data)
	allowed := false
	for _, t := range cfg.AllowedTypes {
		if mt.Is(t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", &RuleError{
			Title:   invalidImageTitle,
			Message: fmt.Sprintf("Unsupported image type %s. Use one of: %s.", mt.String(), strings.Join(cfg.AllowedTypes, ", ")),
		}
	}

	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ReadImage reads at most cfg.MaxBytes+1 bytes from r and passes them to ImageDataURI.
func ReadImage(r io.Reader, cfg *config.ImageConfig) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, cfg.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return ImageDataURI(data, cfg)
}

func formatBytes(n int64) string {
	const mib = 1 << 20
	const kib = 1 << 10
	switch {
	case n >= mib && n%mib == 0:
		return fmt.Sprintf("%d MB", n/mib)
	case n >= kib && n%kib == 0:
		return fmt.Sprintf("%d KB", n/kib)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
