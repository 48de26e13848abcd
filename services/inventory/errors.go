package inventory

import (
	"errors"

	"cabtour/database/repository"
	"cabtour/utils"

	"go.uber.org/zap"
)

// storeError classifies a repository error for what.
func storeError(what, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.NotFound(what + " not found")
	case errors.Is(err, repository.ErrVersionMismatch):
		return utils.Conflict("stale_version", what+" was modified by someone else; reload and retry")
	case errors.Is(err, repository.ErrDuplicateKey):
		return utils.Conflict("duplicate_"+what, what+" already exists")
	}
	utils.GetLogger().Error("Inventory store failure", zap.String("entity", what), zap.String("op", op), zap.Error(err))
	return utils.Dependency("failed to "+op+" "+what, err)
}

func requireVersion(v int64) error {
	if v < 1 {
		return utils.Validation("version", "version is required")
	}
	return nil
}
