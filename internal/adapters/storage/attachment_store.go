// Package storage keeps step documents on a filesystem abstraction so the
// same code serves local disk in production and memory in tests.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsstorage "github.com/SscSPs/travel_desk_backend/internal/core/ports/storage"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const maxAttachmentBytes = 10 << 20

// allowedContentTypes are the document types staff upload for government steps.
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// AfsAttachmentStore writes attachments below root as
// <applicationID>/<stepCode>/<uuid><ext>. The returned reference is that
// relative path.
type AfsAttachmentStore struct {
	fs   afero.Fs
	root string
}

// NewAttachmentStore returns a store rooted at root on fs.
func NewAttachmentStore(fs afero.Fs, root string) *AfsAttachmentStore {
	return &AfsAttachmentStore{fs: fs, root: root}
}

// NewOsAttachmentStore returns a store on the local disk.
func NewOsAttachmentStore(root string) *AfsAttachmentStore {
	return NewAttachmentStore(afero.NewOsFs(), root)
}

var _ portsstorage.AttachmentStore = (*AfsAttachmentStore)(nil)

// Save implements storage.AttachmentStore.
func (s *AfsAttachmentStore) Save(ctx context.Context, applicationID int64, stepCode string, file domain.Attachment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(file.Content) == 0 {
		return "", fmt.Errorf("%w: %q is empty", portsstorage.ErrAttachmentRejected, file.FileName)
	}
	if len(file.Content) > maxAttachmentBytes {
		return "", fmt.Errorf("%w: %q exceeds %d bytes", portsstorage.ErrAttachmentRejected, file.FileName, maxAttachmentBytes)
	}
	if file.ContentType != "" && !allowedContentTypes[file.ContentType] {
		return "", fmt.Errorf("%w: type %q is not accepted", portsstorage.ErrAttachmentRejected, file.ContentType)
	}

	ext := strings.ToLower(filepath.Ext(file.FileName))
	ref := path.Join(strconv.FormatInt(applicationID, 10), stepCode, uuid.NewString()+ext)
	full := s.fullPath(ref)

	if err := s.fs.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", fmt.Errorf("failed to create attachment directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, full, file.Content, 0o640); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	return ref, nil
}

// Delete implements storage.AttachmentStore. Deleting a missing file is not an error.
func (s *AfsAttachmentStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ref == "" || strings.Contains(ref, "..") {
		return fmt.Errorf("invalid attachment reference %q", ref)
	}
	if err := s.fs.Remove(s.fullPath(ref)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// Open returns the stored bytes of ref.
func (s *AfsAttachmentStore) Open(ref string) ([]byte, error) {
	if ref == "" || strings.Contains(ref, "..") {
		return nil, fmt.Errorf("invalid attachment reference %q", ref)
	}
	return afero.ReadFile(s.fs, s.fullPath(ref))
}

func (s *AfsAttachmentStore) fullPath(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(ref))
}
