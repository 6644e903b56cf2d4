package domain

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

var ErrInvalidPackageVersion = errors.New("package version must be a valid semantic version")

// PackageVersion は公開するパッケージのセマンティックバージョン
type PackageVersion struct {
	version *semver.Version
}

func NewPackageVersion(value string) (PackageVersion, error) {
	v, err := semver.StrictNewVersion(value)
	if err != nil {
		return PackageVersion{}, fmt.Errorf("%w: %q", ErrInvalidPackageVersion, value)
	}
	return PackageVersion{version: v}, nil
}

func (v PackageVersion) String() string {
	if v.version == nil {
		return ""
	}
	return v.version.String()
}

// IsPrerelease はプレリリース版かどうかを返す
func (v PackageVersion) IsPrerelease() bool {
	return v.version != nil && v.version.Prerelease() != ""
}

// DistTag はnpm publishに渡すdist-tagを返す
// プレリリース版は latest を汚さないよう "next" に公開する
func (v PackageVersion) DistTag() string {
	if v.IsPrerelease() {
		return "next"
	}
	return "latest"
}
