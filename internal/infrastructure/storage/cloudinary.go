package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/pkg/config"
)

var _ usecase.Uploader = (*CloudinaryUploader)(nil)

// CloudinaryUploader stocke les documents (diplômes, CNI, reçus, logos, CV) sur Cloudinary.
// Le core ne voit que l'URL sécurisée retournée.
type CloudinaryUploader struct {
	cld    *cld.Cloudinary
	folder string
}

// NewCloudinaryUploader construit le client à partir de CLOUDINARY_URL.
func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL non configurée")
	}
	c, err := cld.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: c, folder: cfg.Folder}, nil
}

// UploadBytes pousse un fichier et retourne son URL sécurisée.
// Les PDF passent en resource_type raw, les images en image.
func (u *CloudinaryUploader) UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error) {
	resourceType := "image"
	if strings.EqualFold(path.Ext(filename), ".pdf") {
		resourceType = "raw"
	}
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(b), uploader.UploadParams{
		Folder:       path.Join(u.folder, folder),
		PublicID:     strings.TrimSuffix(filename, path.Ext(filename)),
		ResourceType: resourceType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	return res.SecureURL, nil
}
