package services

import (
	"context"
	"testing"
)

func TestRevisionCurrentStartsAtZero(t *testing.T) {
	svc := NewRevisionService(newFakeRevisionRepo())

	revision, err := svc.Current(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revision != 0 {
		t.Fatalf("expected revision 0, got %d", revision)
	}
}

func TestRevisionAdvancesPerMutation(t *testing.T) {
	folders := newFakeFolderRepo()
	folders.addRoot(1, "alice")
	revisions := newFakeRevisionRepo()

	folderSvc := newFolderServiceForTest(folders, newFakeFileRepo(), revisions, newFakeBlobClient())
	revSvc := NewRevisionService(revisions)

	if _, _, err := folderSvc.CreateFolder(context.Background(), "alice", "a", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := folderSvc.CreateFolder(context.Background(), "alice", "b", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	revision, err := revSvc.Current(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revision != 2 {
		t.Fatalf("expected revision 2 after two mutations, got %d", revision)
	}

	other, err := revSvc.Current(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other != 0 {
		t.Fatalf("revisions must be per owner, got %d for bob", other)
	}
}
