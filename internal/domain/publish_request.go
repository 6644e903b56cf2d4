package domain

// PublishRequest は検証済みの公開リクエスト
type PublishRequest struct {
	Spec       SpecLocation
	Name       PackageName
	Version    PackageVersion
	Registry   RegistryURL
	Access     PublishAccess
	DryRun     bool
	Provenance bool
}

func (r PublishRequest) GeneratorOptions() GeneratorOptions {
	return NewGeneratorOptions(r.Name, r.Version)
}
