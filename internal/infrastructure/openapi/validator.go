package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// Validate は文書がOpenAPI 3.xまたはSwagger 2.0であることを確認し、バージョン文字列を返す
// JSONはYAMLとして解釈できるため、どちらもyaml.v3でデコードする
func Validate(body []byte) (string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("%w: %w", usecase.ErrInvalidSpec, err)
	}
	if doc == nil {
		return "", fmt.Errorf("%w: empty document", usecase.ErrInvalidSpec)
	}

	for _, key := range []string{"openapi", "swagger"} {
		v, ok := doc[key]
		if !ok {
			continue
		}
		switch version := v.(type) {
		case string:
			if version == "" {
				return "", fmt.Errorf("%w: %s version is empty", usecase.ErrInvalidSpec, key)
			}
			return version, nil
		case int, float64:
			return fmt.Sprint(version), nil
		default:
			return "", fmt.Errorf("%w: %s version must be a scalar", usecase.ErrInvalidSpec, key)
		}
	}

	return "", fmt.Errorf("%w: missing openapi or swagger version key", usecase.ErrInvalidSpec)
}
