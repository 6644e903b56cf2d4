package domain

import (
	"errors"
	"net/url"
	"strings"
)

// DefaultNPMRegistry はnpm公式レジストリのURL
const DefaultNPMRegistry = "https://registry.npmjs.org"

var ErrInvalidRegistryURL = errors.New("npm registry must be an absolute http(s) URL")

type RegistryURL struct {
	u *url.URL
}

func NewRegistryURL(raw string) (RegistryURL, error) {
	if raw == "" {
		raw = DefaultNPMRegistry
	}
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return RegistryURL{}, ErrInvalidRegistryURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return RegistryURL{}, ErrInvalidRegistryURL
	}
	return RegistryURL{u: u}, nil
}

func (r RegistryURL) String() string {
	if r.u == nil {
		return ""
	}
	return r.u.String()
}

func (r RegistryURL) Host() string {
	if r.u == nil {
		return ""
	}
	return r.u.Host
}

// NPMRCAuthKey は .npmrc の認証キー（//host/path/:_authToken）を返す
func (r RegistryURL) NPMRCAuthKey() string {
	if r.u == nil {
		return ""
	}
	return "//" + r.u.Host + r.u.Path + "/:_authToken"
}

// OIDCAudience はnpm trusted publishing用のIDトークンaudienceを返す
func (r RegistryURL) OIDCAudience() string {
	return "npm:" + r.Host()
}
