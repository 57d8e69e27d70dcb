package config

import "gopkg.in/yaml.v3"

// Lodefile represents the structure of the lode.yaml configuration file.
type Lodefile struct {
	Version       string                          `yaml:"version"`
	Variables     map[string]string               `yaml:"variables"`
	Fallbacks     map[string][]string             `yaml:"fallbacks"`
	Modules       map[string]ModuleDTO            `yaml:"modules"`
	SkinOverrides map[string]map[string][]StyleDTO `yaml:"skinOverrides"`
}

// ModuleDTO represents one module definition in the configuration.
type ModuleDTO struct {
	Group           string                   `yaml:"group"`
	LocalBasePath   string                   `yaml:"localBasePath"`
	RemoteBasePath  string                   `yaml:"remoteBasePath"`
	Scripts         []FileRefDTO             `yaml:"scripts"`
	LanguageScripts map[string][]FileRefDTO  `yaml:"languageScripts"`
	SkinScripts     map[string][]FileRefDTO  `yaml:"skinScripts"`
	DebugScripts    []FileRefDTO             `yaml:"debugScripts"`
	Styles          []StyleDTO               `yaml:"styles"`
	SkinStyles      map[string][]StyleDTO    `yaml:"skinStyles"`
	PackageFiles    []PackageFileDTO         `yaml:"packageFiles"`
	Dependencies    []string                 `yaml:"dependencies"`
	Messages        []string                 `yaml:"messages"`
	Templates       map[string]string        `yaml:"templates"`
	SkipFunction    string                   `yaml:"skipFunction"`
	DebugRaw        bool                     `yaml:"debugRaw"`
	NoFlip          bool                     `yaml:"noflip"`
	ES6             bool                     `yaml:"es6"`
	Variables       map[string]string        `yaml:"variables"`
}

// FileRefDTO is a file reference. The scalar shorthand carries just the path;
// the mapping form may override the base-path pair.
type FileRefDTO struct {
	File           string `yaml:"file"`
	LocalBasePath  string `yaml:"localBasePath"`
	RemoteBasePath string `yaml:"remoteBasePath"`
}

// UnmarshalYAML accepts either a bare path string or the mapping form.
func (f *FileRefDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&f.File)
	}

	type plain FileRefDTO
	return value.Decode((*plain)(f))
}

// StyleDTO is a style sheet reference. The scalar shorthand carries just the
// path; the mapping form adds media and base-path overrides.
type StyleDTO struct {
	File           string `yaml:"file"`
	Media          string `yaml:"media"`
	LocalBasePath  string `yaml:"localBasePath"`
	RemoteBasePath string `yaml:"remoteBasePath"`
}

// UnmarshalYAML accepts either a bare path string or the mapping form.
func (s *StyleDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&s.File)
	}

	type plain StyleDTO
	return value.Decode((*plain)(s))
}

// PackageFileDTO is one package file entry. The scalar shorthand declares a
// file-backed entry whose slot name equals its path.
type PackageFileDTO struct {
	Name            string   `yaml:"name"`
	Type            string   `yaml:"type"`
	Main            bool     `yaml:"main"`
	Content         any      `yaml:"content"`
	File            string   `yaml:"file"`
	Callback        string   `yaml:"callback"`
	CallbackParam   any      `yaml:"callbackParam"`
	VersionCallback string   `yaml:"versionCallback"`
	Config          []string `yaml:"config"`
}

// UnmarshalYAML accepts either a bare path string or the mapping form.
func (p *PackageFileDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if err := value.Decode(&p.Name); err != nil {
			return err
		}
		p.File = p.Name
		return nil
	}

	type plain PackageFileDTO
	return value.Decode((*plain)(p))
}
