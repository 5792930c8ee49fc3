// Package gitinfo resolves VCS metadata for lint runs.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// shortHashLen matches the abbreviated hash length shown in reports.
const shortHashLen = 12

// Resolver implements domain.CommitResolver using go-git.
type Resolver struct{}

var _ domain.CommitResolver = (*Resolver)(nil)

func New() *Resolver {
	return &Resolver{}
}

// CommitHash returns the abbreviated HEAD commit of the repository containing
// dir. Directories outside a repository return an error; callers treat the
// hash as optional metadata.
func (r *Resolver) CommitHash(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	hash := head.Hash().String()
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	return hash, nil
}
