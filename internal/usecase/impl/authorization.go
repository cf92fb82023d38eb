package impl

import (
	domainerrors "authcore/internal/domain/errors"

	"github.com/google/uuid"
)

// authorizeSelf is the ownership rule for every mutation that names its target
// explicitly: the caller may only act on the account proven by its token.
// A target that does not parse as an account ID is treated as foreign.
func authorizeSelf(subject uuid.UUID, target string) error {
	id, err := uuid.Parse(target)
	if err != nil || subject == uuid.Nil || id != subject {
		return domainerrors.ErrNotAuthorized
	}

	return nil
}
