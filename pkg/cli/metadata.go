package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// DetectRepository reads owner and repository name of a GitHub repository from the origin remote of the
// git working tree at dir or one of its parents.
func DetectRepository(dir string) (owner, repoName string, err error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner, repoName, ok := parseRemoteURL(url)
	if !ok {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return owner, repoName, nil
}

// parseRemoteURL accepts git@github.com:owner/repo.git, ssh://git@github.com/owner/repo.git and
// https://github.com/owner/repo(.git).
func parseRemoteURL(url string) (string, string, bool) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	default:
		return "", "", false
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	ownerRepo := strings.Split(path, "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return "", "", false
	}

	return ownerRepo[0], ownerRepo[1], true
}
