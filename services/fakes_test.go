package services

import (
	"context"
	"sort"

	"github.com/ScheffChuk/drive-t3-s/blobstore"
	"github.com/ScheffChuk/drive-t3-s/models"

	"gorm.io/gorm"
)

type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeFolderRepo struct {
	folders     map[uint]models.Folder
	nextID      uint
	deleteOrder []uint

	getErr      error
	createErr   error
	listErr     error
	childIDsErr error
	deleteErr   error
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{
		folders: map[uint]models.Folder{},
		nextID:  1,
	}
}

func (r *fakeFolderRepo) addFolder(id uint, ownerID string, name string, parentID *uint) {
	r.folders[id] = models.Folder{ID: id, Name: name, OwnerID: ownerID, ParentID: parentID}
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

func (r *fakeFolderRepo) addRoot(id uint, ownerID string) {
	isRoot := true
	r.folders[id] = models.Folder{ID: id, Name: "root", OwnerID: ownerID, IsRoot: &isRoot}
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

func (r *fakeFolderRepo) GetByIDAndOwner(_ context.Context, _ *gorm.DB, folderID uint, ownerID string) (models.Folder, error) {
	if r.getErr != nil {
		return models.Folder{}, r.getErr
	}
	folder, ok := r.folders[folderID]
	if !ok || folder.OwnerID != ownerID {
		return models.Folder{}, gorm.ErrRecordNotFound
	}
	return folder, nil
}

func (r *fakeFolderRepo) GetRootByOwner(_ context.Context, _ *gorm.DB, ownerID string) (models.Folder, error) {
	for _, folder := range r.folders {
		if folder.OwnerID == ownerID && folder.IsRoot != nil && *folder.IsRoot {
			return folder, nil
		}
	}
	return models.Folder{}, gorm.ErrRecordNotFound
}

func (r *fakeFolderRepo) Create(_ context.Context, _ *gorm.DB, folder *models.Folder) error {
	if r.createErr != nil {
		return r.createErr
	}
	if folder.ID == 0 {
		folder.ID = r.nextID
		r.nextID++
	}
	r.folders[folder.ID] = *folder
	return nil
}

func (r *fakeFolderRepo) ListByParent(_ context.Context, _ *gorm.DB, ownerID string, parentID uint) ([]models.Folder, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Folder, 0)
	for _, folder := range r.folders {
		if folder.OwnerID != ownerID || folder.ParentID == nil {
			continue
		}
		if *folder.ParentID == parentID {
			out = append(out, folder)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeFolderRepo) ListChildIDs(_ context.Context, _ *gorm.DB, ownerID string, parentID uint) ([]uint, error) {
	if r.childIDsErr != nil {
		return nil, r.childIDsErr
	}
	ids := make([]uint, 0)
	for _, folder := range r.folders {
		if folder.OwnerID != ownerID || folder.ParentID == nil {
			continue
		}
		if *folder.ParentID == parentID {
			ids = append(ids, folder.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeFolderRepo) DeleteByIDAndOwner(_ context.Context, _ *gorm.DB, folderID uint, ownerID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	folder, ok := r.folders[folderID]
	if !ok || folder.OwnerID != ownerID {
		return nil
	}
	delete(r.folders, folderID)
	r.deleteOrder = append(r.deleteOrder, folderID)
	return nil
}

type fakeFileRepo struct {
	files       map[uint]models.File
	nextID      uint
	deleteOrder []uint

	createErr error
	getErr    error
	listErr   error
	deleteErr error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{
		files:  map[uint]models.File{},
		nextID: 1,
	}
}

func (r *fakeFileRepo) addFile(id uint, ownerID string, name string, folderID uint, url string) {
	r.files[id] = models.File{ID: id, Name: name, OwnerID: ownerID, FolderID: folderID, URL: url}
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

func (r *fakeFileRepo) Create(_ context.Context, _ *gorm.DB, file *models.File) error {
	if r.createErr != nil {
		return r.createErr
	}
	if file.ID == 0 {
		file.ID = r.nextID
		r.nextID++
	}
	r.files[file.ID] = *file
	return nil
}

func (r *fakeFileRepo) GetByIDAndOwner(_ context.Context, _ *gorm.DB, fileID uint, ownerID string) (models.File, error) {
	if r.getErr != nil {
		return models.File{}, r.getErr
	}
	file, ok := r.files[fileID]
	if !ok || file.OwnerID != ownerID {
		return models.File{}, gorm.ErrRecordNotFound
	}
	return file, nil
}

func (r *fakeFileRepo) ListByFolder(_ context.Context, _ *gorm.DB, ownerID string, folderID uint) ([]models.File, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.File, 0)
	for _, file := range r.files {
		if file.OwnerID == ownerID && file.FolderID == folderID {
			out = append(out, file)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFileRepo) ListByFolderIDs(_ context.Context, _ *gorm.DB, ownerID string, folderIDs []uint) ([]models.File, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	wanted := map[uint]struct{}{}
	for _, id := range folderIDs {
		wanted[id] = struct{}{}
	}
	out := make([]models.File, 0)
	for _, file := range r.files {
		if file.OwnerID != ownerID {
			continue
		}
		if _, ok := wanted[file.FolderID]; ok {
			out = append(out, file)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFileRepo) DeleteByIDAndOwner(_ context.Context, _ *gorm.DB, fileID uint, ownerID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	file, ok := r.files[fileID]
	if !ok || file.OwnerID != ownerID {
		return nil
	}
	delete(r.files, fileID)
	r.deleteOrder = append(r.deleteOrder, fileID)
	return nil
}

func (r *fakeFileRepo) DeleteByFolderIDs(_ context.Context, _ *gorm.DB, ownerID string, folderIDs []uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	wanted := map[uint]struct{}{}
	for _, id := range folderIDs {
		wanted[id] = struct{}{}
	}
	for id, file := range r.files {
		if file.OwnerID != ownerID {
			continue
		}
		if _, ok := wanted[file.FolderID]; ok {
			delete(r.files, id)
			r.deleteOrder = append(r.deleteOrder, id)
		}
	}
	return nil
}

type fakeRevisionRepo struct {
	counts  map[string]int64
	bumpErr error
}

func newFakeRevisionRepo() *fakeRevisionRepo {
	return &fakeRevisionRepo{counts: map[string]int64{}}
}

func (r *fakeRevisionRepo) Bump(_ context.Context, ownerID string) (int64, error) {
	if r.bumpErr != nil {
		return 0, r.bumpErr
	}
	r.counts[ownerID]++
	return r.counts[ownerID], nil
}

func (r *fakeRevisionRepo) Current(_ context.Context, ownerID string) (int64, error) {
	return r.counts[ownerID], nil
}

type fakeBlobClient struct {
	calls    [][]string
	failKeys map[string]error
}

func newFakeBlobClient() *fakeBlobClient {
	return &fakeBlobClient{failKeys: map[string]error{}}
}

func (b *fakeBlobClient) DeleteBlobs(_ context.Context, keys []string) []blobstore.DeleteResult {
	b.calls = append(b.calls, append([]string(nil), keys...))
	results := make([]blobstore.DeleteResult, 0, len(keys))
	for _, key := range keys {
		results = append(results, blobstore.DeleteResult{Key: key, Err: b.failKeys[key]})
	}
	return results
}

func (b *fakeBlobClient) deletedKeys() []string {
	out := make([]string, 0)
	for _, call := range b.calls {
		out = append(out, call...)
	}
	return out
}
