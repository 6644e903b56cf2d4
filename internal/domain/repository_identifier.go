package domain

import (
	"errors"
	"strings"
)

// RepositoryIdentifier は owner/name 形式のリポジトリ識別子を表す
type RepositoryIdentifier struct {
	owner string
	name  string
}

var ErrInvalidRepositoryIdentifierFormat = errors.New("repository identifier must be in 'owner/repo' format")

func NewRepositoryIdentifier(fullName string) (*RepositoryIdentifier, error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 {
		return nil, ErrInvalidRepositoryIdentifierFormat
	}

	owner := parts[0]
	name := parts[1]

	if owner == "" || name == "" {
		return nil, ErrInvalidRepositoryIdentifierFormat
	}

	return &RepositoryIdentifier{
		owner: owner,
		name:  name,
	}, nil
}

func (ri *RepositoryIdentifier) FullName() string {
	return ri.owner + "/" + ri.name
}

func (ri *RepositoryIdentifier) Owner() string {
	return ri.owner
}

func (ri *RepositoryIdentifier) Name() string {
	return ri.name
}

func (ri *RepositoryIdentifier) String() string {
	return ri.FullName()
}

// Equals は大文字小文字を区別して完全一致を判定する
func (ri *RepositoryIdentifier) Equals(other *RepositoryIdentifier) bool {
	if ri == nil {
		return other == nil
	}
	if other == nil {
		return false
	}
	return ri.owner == other.owner && ri.name == other.name
}
