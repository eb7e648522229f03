package importer

import (
	"fmt"
	"strings"
	"time"
)

// existsFunc checks whether a candidate key is already taken.
type existsFunc func(string) (bool, error)

const maxSuffixAttempts = 100

// uniqueSlug returns base if free, otherwise base-1, base-2, ... until an
// unused slug is found.
func uniqueSlug(base string, exists existsFunc) (string, error) {
	taken, err := exists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for i := 1; i <= maxSuffixAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find a free slug for %q", base)
}

// uniqueEmail returns the email if free, otherwise synthesizes a variant
// with a timestamp suffix on the local part.
func uniqueEmail(email string, exists existsFunc) (string, error) {
	taken, err := exists(email)
	if err != nil {
		return "", err
	}
	if !taken {
		return email, nil
	}

	local, domain, found := strings.Cut(email, "@")
	if !found {
		domain = "invalid.local"
	}
	base := fmt.Sprintf("%s-%d", local, time.Now().Unix())

	candidate := fmt.Sprintf("%s@%s", base, domain)
	taken, err = exists(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}
	for i := 1; i <= maxSuffixAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d@%s", base, i, domain)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find a free email for %q", email)
}
