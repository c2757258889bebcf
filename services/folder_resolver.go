package services

import (
	"context"
	"errors"

	"github.com/ScheffChuk/drive-t3-s/models"
	"github.com/ScheffChuk/drive-t3-s/repositories"

	"gorm.io/gorm"
)

type folderResolver struct {
	folders repositories.FolderRepository
}

func (r folderResolver) getOrCreateOwnerRootFolder(ctx context.Context, tx *gorm.DB, ownerID string) (models.Folder, error) {
	root, err := r.folders.GetRootByOwner(ctx, tx, ownerID)
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Folder{}, err
	}

	isRoot := true
	root = models.Folder{
		Name:    "root",
		OwnerID: ownerID,
		IsRoot:  &isRoot,
	}
	if err := r.folders.Create(ctx, tx, &root); err != nil {
		return models.Folder{}, err
	}
	return root, nil
}

// resolveFolderIDForOwner maps the API's root sentinel (id 0) onto the
// owner's root row and verifies ownership of any other id.
func (r folderResolver) resolveFolderIDForOwner(ctx context.Context, tx *gorm.DB, ownerID string, folderID uint) (uint, error) {
	if folderID == 0 {
		root, err := r.getOrCreateOwnerRootFolder(ctx, tx, ownerID)
		if err != nil {
			return 0, err
		}
		return root.ID, nil
	}
	folder, err := r.folders.GetByIDAndOwner(ctx, tx, folderID, ownerID)
	if err != nil {
		return 0, err
	}
	return folder.ID, nil
}

// collectSubtreeIDs returns rootID followed by every descendant folder id
// owned by ownerID, in discovery order. The traversal is an iterative
// worklist rather than recursion so arbitrarily deep trees cannot exhaust
// the stack; the seen set keeps a corrupted parent chain from looping.
func (r folderResolver) collectSubtreeIDs(ctx context.Context, tx *gorm.DB, ownerID string, rootID uint) ([]uint, error) {
	ids := []uint{rootID}
	seen := map[uint]struct{}{rootID: {}}
	queue := []uint{rootID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		children, err := r.folders.ListChildIDs(ctx, tx, ownerID, current)
		if err != nil {
			return nil, err
		}
		for _, id := range children {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
			queue = append(queue, id)
		}
	}
	return ids, nil
}

// ancestorsOf walks parent pointers from folderID up to the root and
// returns the chain root-first, excluding the folder itself and the root
// sentinel row. A folder id that does not exist (or is not owned by
// ownerID) yields an empty chain, not an error.
func (r folderResolver) ancestorsOf(ctx context.Context, tx *gorm.DB, ownerID string, folderID uint) ([]models.Folder, error) {
	folder, err := r.folders.GetByIDAndOwner(ctx, tx, folderID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Folder{}, nil
		}
		return nil, err
	}

	chain := make([]models.Folder, 0)
	seen := map[uint]struct{}{folder.ID: {}}
	parentID := folder.ParentID

	for parentID != nil {
		if _, ok := seen[*parentID]; ok {
			break
		}
		seen[*parentID] = struct{}{}

		parent, err := r.folders.GetByIDAndOwner(ctx, tx, *parentID, ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return nil, err
		}
		if parent.IsRoot != nil && *parent.IsRoot {
			break
		}
		chain = append(chain, parent)
		parentID = parent.ParentID
	}

	// walked child-to-parent, callers want root-first
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
