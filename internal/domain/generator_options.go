package domain

import (
	"sort"
	"strings"
)

const (
	// GeneratorName はopenapi-generatorで使用するジェネレーター
	GeneratorName = "typescript-fetch"
	// GeneratedClientDir は生成したクライアントの出力ディレクトリ
	GeneratedClientDir = "generated-client"
)

// GeneratorOptions はopenapi-generatorに渡す固定パラメータ
type GeneratorOptions struct {
	generator            string
	outputDir            string
	additionalProperties map[string]string
}

func NewGeneratorOptions(name PackageName, version PackageVersion) GeneratorOptions {
	return GeneratorOptions{
		generator: GeneratorName,
		outputDir: GeneratedClientDir,
		additionalProperties: map[string]string{
			"ensureUniqueParams":  "true",
			"supportsES6":         "true",
			"withInterfaces":      "true",
			"importFileExtension": ".js",
			"npmName":             name.String(),
			"npmVersion":          version.String(),
		},
	}
}

func (o GeneratorOptions) Generator() string {
	return o.generator
}

func (o GeneratorOptions) OutputDir() string {
	return o.outputDir
}

// AdditionalProperties は "key=value" をキー順に連結した文字列を返す
func (o GeneratorOptions) AdditionalProperties() string {
	keys := make([]string, 0, len(o.additionalProperties))
	for k := range o.additionalProperties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+o.additionalProperties[k])
	}
	return strings.Join(pairs, ",")
}

func (o GeneratorOptions) Property(key string) (string, bool) {
	v, ok := o.additionalProperties[key]
	return v, ok
}
