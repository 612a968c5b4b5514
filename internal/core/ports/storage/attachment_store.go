package storage

import (
	"context"
	"errors"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
)

// ErrAttachmentRejected marks an upload refused for its content (empty, too
// large or of a type that is not accepted). The caller can fix and resend it.
var ErrAttachmentRejected = errors.New("attachment rejected")

// AttachmentStore keeps documents uploaded with step transactions.
type AttachmentStore interface {
	// Save stores the attachment and returns a reference to put on the ledger entry.
	Save(ctx context.Context, applicationID int64, stepCode string, file domain.Attachment) (string, error)

	// Delete removes a stored attachment. Used to undo a save whose commit did not go through.
	Delete(ctx context.Context, ref string) error
}
