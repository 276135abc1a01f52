// Package ownership enforces that only a resource's author may mutate it.
package ownership

import (
	"fmt"

	"review_backend/internal/platform/apperror"
)

// Authorize returns a Forbidden error unless actorID owns the resource.
// Callers load the resource first so a missing record is reported as 404
// regardless of who asks; only then is ownership compared.
func Authorize(actorID, ownerID uint, action, resource string) error {
	if actorID == 0 || actorID != ownerID {
		return apperror.Forbidden(fmt.Sprintf("not authorized to %s this %s", action, resource))
	}
	return nil
}
