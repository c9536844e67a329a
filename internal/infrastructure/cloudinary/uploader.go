package cloudinary

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/jcastellanos/sweetshop-api/internal/application/catalog"
	"github.com/jcastellanos/sweetshop-api/pkg/config"
)

var _ catalog.ImageUploader = (*Uploader)(nil)

// Uploader adaptador del puerto ImageUploader sobre el SDK de Cloudinary.
type Uploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewUploader construye el adaptador. CLOUDINARY_URL tiene prioridad sobre
// las credenciales sueltas.
func NewUploader(cfg config.CloudinaryConfig) (*Uploader, error) {
	var cld *cloudinary.Cloudinary
	var err error
	if cfg.URL != "" {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("inicializar cloudinary: %w", err)
	}
	return &Uploader{cld: cld, folder: cfg.Folder}, nil
}

// Upload sube los bytes a la carpeta configurada y devuelve la URL segura.
func (u *Uploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("subir imagen a cloudinary: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("subir imagen a cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
