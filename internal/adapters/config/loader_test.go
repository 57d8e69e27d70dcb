package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/lode/internal/adapters/logger"
	"go.trai.ch/lode/internal/core/domain"
)

func loadString(t *testing.T, content string) (*domain.Site, error) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFilename), []byte(content), 0o600))
	return NewLoader(logger.New()).Load(dir)
}

func TestLoad(t *testing.T) {
	site, err := loadString(t, `
version: "1"
variables:
  sitename: Testwiki
fallbacks:
  nds: [de]
modules:
  site.base:
    group: site
    localBasePath: resources/base
    remoteBasePath: w/base
    scripts:
      - init.js
      - file: legacy.js
        localBasePath: resources/legacy
    languageScripts:
      de: [de.js]
    styles:
      - main.less
      - file: print.css
        media: print
    dependencies: [site.util]
    messages: [greeting]
    es6: true
    variables:
      fg: "#202122"
  site.util:
    scripts: [util.js]
    packageFiles:
      - index.js
      - name: config.json
        type: data
        config: [sitename]
      - name: options.json
        callback: user.options
        versionCallback: user.options.version
`)
	require.NoError(t, err)

	base, err := site.Registry.Get("site.base")
	require.NoError(t, err)

	assert.Equal(t, "site", base.Group)
	assert.Equal(t, "resources/base", base.LocalBase)
	require.Len(t, base.Scripts, 2)
	assert.Equal(t, "init.js", base.Scripts[0].Path)
	assert.Equal(t, "resources/legacy", base.Scripts[1].LocalBase)
	require.Len(t, base.Styles, 2)
	assert.Equal(t, domain.MediaAll, base.Styles[0].MediaOrAll())
	assert.Equal(t, "print", base.Styles[1].Media)
	assert.Equal(t, []string{"site.util"}, base.DependencyNames())
	assert.True(t, base.ES6)
	assert.Equal(t, "#202122", base.Variables["fg"])

	util, err := site.Registry.Get("site.util")
	require.NoError(t, err)
	require.Len(t, util.PackageFiles, 3)
	assert.Equal(t, "index.js", util.PackageFiles[0].Name)
	assert.Equal(t, "index.js", util.PackageFiles[0].File)
	assert.Equal(t, domain.PackageData, util.PackageFiles[1].Type)
	assert.Equal(t, []string{"sitename"}, util.PackageFiles[1].Config)
	assert.Equal(t, "user.options", util.PackageFiles[2].Callback)
	assert.Equal(t, "user.options.version", util.PackageFiles[2].VersionCallback)

	v, err := site.Variable("sitename")
	require.NoError(t, err)
	assert.Equal(t, "Testwiki", v)
	assert.Equal(t, []string{"de"}, site.Fallbacks["nds"])
}

func TestLoad_SkinOverrides(t *testing.T) {
	site, err := loadString(t, `
modules:
  site.base:
    styles:
      - main.less
  site.other:
    skinStyles:
      vector: [own.less]
skinOverrides:
  vector:
    site.base: [vector.less]
    site.other: [ignored.less]
    "+site.missing": [skipped.less]
`)
	require.NoError(t, err)

	base, err := site.Registry.Get("site.base")
	require.NoError(t, err)
	require.Len(t, base.SkinStyles["vector"], 1)
	assert.Equal(t, "vector.less", base.SkinStyles["vector"][0].Ref.Path)

	other, err := site.Registry.Get("site.other")
	require.NoError(t, err)
	assert.Equal(t, "own.less", other.SkinStyles["vector"][0].Ref.Path)
}

func TestLoad_AppendOverride(t *testing.T) {
	site, err := loadString(t, `
modules:
  site.base:
    skinStyles:
      default: [base.less]
skinOverrides:
  vector:
    "+site.base": [extra.less]
`)
	require.NoError(t, err)

	base, err := site.Registry.Get("site.base")
	require.NoError(t, err)
	vector := base.SkinStyles["vector"]
	require.Len(t, vector, 2)
	assert.Equal(t, "base.less", vector[0].Ref.Path)
	assert.Equal(t, "extra.less", vector[1].Ref.Path)
}

func TestLoad_UnknownDependency(t *testing.T) {
	_, err := loadString(t, `
modules:
  site.base:
    dependencies: [site.gone]
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModuleNotFound))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(logger.New()).Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := loadString(t, "modules: [not a map")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}
