// CI and release pipelines for wre-commit.
//
// The functions are called from the dagger CLI, e.g. `dagger call unit-tests
// --source-dir=.`. Test functions mirror the build tags of the repository:
// unit, integration and e2e.

package main

import (
	"context"
	"fmt"
	"runtime"

	"wre-commit/dagger/internal/dagger"
)

const (
	defaultUser = "lerenn"
	repoName    = "wre-commit"
)

type WreCommit struct{}

// PublishTag publishes a new tag computed from the title of the last commit.
func (ci *WreCommit) PublishTag(
	ctx context.Context,
	sourceDir *dagger.Directory,
	user *string,
	token *dagger.Secret,
) error {
	actualUser := ci.getActualUser(user)
	repo, err := NewGit(ctx, NewGitOptions{
		SrcDir: sourceDir,
		User:   &actualUser,
		Token:  token,
	})
	if err != nil {
		return err
	}

	return repo.PublishTagFromReleaseTitle(ctx)
}

// Lint runs golangci-lint on the repository.
func (ci *WreCommit) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *WreCommit) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"go", "test", "-tags=unit", "./..."})
}

// IntegrationTests returns a container that runs the integration tests.
func (ci *WreCommit) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine").
		// Git repositories are created by the tests
		WithExec([]string{"apk", "add", "--no-cache", "git"})

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"go", "test", "-tags=integration", "./..."})
}

// EndToEndTests returns a container that runs the end-to-end tests.
func (ci *WreCommit) EndToEndTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine").
		WithExec([]string{"apk", "add", "--no-cache", "git"}).
		WithExec([]string{"git", "config", "--global", "user.name", "Test User"}).
		WithExec([]string{"git", "config", "--global", "user.email", "test@example.com"})

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"go", "test", "-tags=e2e", "./test/", "-v"})
}

// Binaries returns a directory holding wre-commit built for every platform.
func (ci *WreCommit) Binaries(sourceDir *dagger.Directory) *dagger.Directory {
	dir := dag.Directory()
	for _, platform := range Platforms {
		dir = dir.WithFile(platform.BinaryName(), ci.binary(sourceDir, platform))
	}
	return dir
}

// CreateGithubRelease creates a GitHub release for the last tag with the
// binaries of every platform.
func (ci *WreCommit) CreateGithubRelease(
	ctx context.Context,
	sourceDir *dagger.Directory,
	user *string,
	token *dagger.Secret,
) error {
	actualUser := ci.getActualUser(user)
	repo, err := NewGit(ctx, NewGitOptions{
		SrcDir: sourceDir,
		User:   &actualUser,
		Token:  token,
	})
	if err != nil {
		return err
	}

	tag, err := repo.GetLastTag(ctx)
	if err != nil {
		return err
	}
	notes, err := repo.GetLastCommitTitle(ctx)
	if err != nil {
		return err
	}

	releases, err := NewReleaseManager(ctx, actualUser, token)
	if err != nil {
		return err
	}

	releaseID, err := releases.Create(ctx, tag, notes)
	if err != nil {
		return err
	}

	for _, platform := range Platforms {
		if err := releases.UploadAsset(ctx, releaseID, platform.BinaryName(), ci.binary(sourceDir, platform)); err != nil {
			return fmt.Errorf("failed to upload binary for %s/%s: %w", platform.OS, platform.Arch, err)
		}
	}

	return nil
}

func (ci *WreCommit) getActualUser(user *string) string {
	if user != nil {
		return *user
	}
	return defaultUser
}

// binary cross compiles wre-commit for platform.
func (ci *WreCommit) binary(sourceDir *dagger.Directory, platform Platform) *dagger.File {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithEnvVariable("CGO_ENABLED", "0").
		WithEnvVariable("GOOS", platform.OS).
		WithEnvVariable("GOARCH", platform.Arch).
		WithExec([]string{"go", "build", "-o", "/out/wre-commit", "./cmd/wre-commit"}).
		File("/out/wre-commit")
}

func (ci *WreCommit) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	containerPath := "/go/src/github.com/lerenn/wre-commit"
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
