package domain

import "errors"

var ErrInvalidPublishAccess = errors.New("access must be 'public' or 'restricted'")

type PublishAccess struct {
	value string
}

var (
	PublishAccessPublic     = PublishAccess{value: "public"}
	PublishAccessRestricted = PublishAccess{value: "restricted"}
)

func NewPublishAccess(s string) (PublishAccess, error) {
	switch s {
	case "", "public":
		return PublishAccessPublic, nil
	case "restricted":
		return PublishAccessRestricted, nil
	default:
		return PublishAccess{}, ErrInvalidPublishAccess
	}
}

func (a PublishAccess) String() string {
	return a.value
}
