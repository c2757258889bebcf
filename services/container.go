package services

import (
	"github.com/ScheffChuk/drive-t3-s/blobstore"
	"github.com/ScheffChuk/drive-t3-s/repositories"
)

type Container struct {
	Folder   FolderService
	File     FileService
	Revision RevisionService
}

func NewContainer(repos repositories.Container, blobs blobstore.Client) *Container {
	return &Container{
		Folder:   NewFolderService(repos.TxManager, repos.Folders, repos.Files, repos.Revisions, blobs),
		File:     NewFileService(repos.TxManager, repos.Folders, repos.Files, repos.Revisions, blobs),
		Revision: NewRevisionService(repos.Revisions),
	}
}
