package main

import (
	"context"
	"strings"

	"wre-commit/dagger/internal/dagger"
)

// Git provides access to a git repository.
type Git struct {
	container *dagger.Container
}

// NewGitOptions contains the options for creating a new Git container.
type NewGitOptions struct {
	SrcDir *dagger.Directory
	User   *string
	Token  *dagger.Secret
}

// NewGit creates a new Git container with the given source directory and token.
func NewGit(ctx context.Context, opts NewGitOptions) (Git, error) {
	var err error

	// Create container
	container := dag.Container().
		From("alpine/git").
		WithMountedDirectory("/git", opts.SrcDir).
		WithWorkdir("/git").
		WithoutEntrypoint()

	// Set user/token if provided
	if opts.User != nil && opts.Token != nil {
		// Set authentication based on the token
		tokenString, err := opts.Token.Plaintext(ctx)
		if err != nil {
			return Git{}, err
		}

		// Change the url to use the token
		container, err = container.WithExec([]string{
			"git", "remote", "set-url", "origin",
			"https://" + *opts.User + ":" + tokenString + "@github.com/lerenn/" + repoName + ".git",
		}).Sync(ctx)
		if err != nil {
			return Git{}, err
		}
	}

	// Set Git author
	container, err = setGitAuthor(ctx, container)
	if err != nil {
		return Git{}, err
	}

	return Git{
		container: container,
	}, nil
}

// GetLastCommitTitle returns the title of the last commit.
func (g *Git) GetLastCommitTitle(ctx context.Context) (string, error) {
	return g.output(ctx, "git", "log", "-1", "--pretty=%s")
}

// PublishTagFromReleaseTitle creates a new tag based on the last commit title.
// The title should follow the angular convention.
func (g *Git) PublishTagFromReleaseTitle(ctx context.Context) error {
	// Get new semver
	title, err := g.GetLastCommitTitle(ctx)
	if err != nil {
		return err
	}

	// Get last tag
	lastTag, err := g.GetLastTag(ctx)
	if err != nil {
		return err
	}

	// Process newSemVer change
	change, newSemVer, err := ProcessSemVerChange(lastTag, title)
	if err != nil {
		return err
	}
	if change == SemVerChangeNone {
		return nil
	}

	// Tag commit
	g.container, err = g.container.
		WithExec([]string{"git", "tag", "v" + newSemVer}).
		Sync(ctx)
	if err != nil {
		return err
	}

	// Push new tag
	g.container, err = g.container.
		WithExec([]string{"git", "push", "--tags"}).
		Sync(ctx)

	return err
}

// GetLastTag returns the last tag of the repository.
func (g *Git) GetLastTag(ctx context.Context) (string, error) {
	return g.output(ctx, "git", "describe", "--tags", "--abbrev=0")
}

// output runs a command and returns its output without the final new line.
func (g *Git) output(ctx context.Context, args ...string) (string, error) {
	res, err := g.container.WithExec(args).Stdout(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(res, "\n"), nil
}

func setGitAuthor(
	ctx context.Context,
	container *dagger.Container,
) (*dagger.Container, error) {
	// Add infos on author
	container, err := container.
		WithExec([]string{"git", "config", "--global", "user.email", "louis.fradin+wre-commit-ci@gmail.com"}).
		Sync(ctx)
	if err != nil {
		return nil, err
	}
	container, err = container.
		WithExec([]string{"git", "config", "--global", "user.name", "wre-commit CI"}).
		Sync(ctx)
	if err != nil {
		return nil, err
	}

	return container, nil
}
