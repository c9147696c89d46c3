package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-github/v62/github"

	"wre-commit/dagger/internal/dagger"
)

// ReleaseManager creates GitHub releases of wre-commit.
type ReleaseManager struct {
	client *github.Client
	owner  string
}

// NewReleaseManager creates a release manager authenticated with token.
func NewReleaseManager(ctx context.Context, owner string, token *dagger.Secret) (*ReleaseManager, error) {
	tokenValue, err := token.Plaintext(ctx)
	if err != nil {
		return nil, err
	}

	return &ReleaseManager{
		client: github.NewClient(nil).WithAuthToken(tokenValue),
		owner:  owner,
	}, nil
}

// Create creates the release of tag and returns its ID.
func (r *ReleaseManager) Create(ctx context.Context, tag, notes string) (int64, error) {
	release, _, err := r.client.Repositories.CreateRelease(ctx, r.owner, repoName, &github.RepositoryRelease{
		TagName: github.String(tag),
		Name:    github.String("Release " + tag),
		Body:    github.String(notes),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create GitHub release: %w", err)
	}
	return release.GetID(), nil
}

// UploadAsset attaches file to the release under name.
func (r *ReleaseManager) UploadAsset(ctx context.Context, releaseID int64, name string, file *dagger.File) error {
	dir, err := os.MkdirTemp("", "release-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, name)
	if _, err := file.Export(ctx, path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _, err = r.client.Repositories.UploadReleaseAsset(ctx, r.owner, repoName, releaseID,
		&github.UploadOptions{Name: name}, f)
	return err
}
