package selfkind

import (
	"context"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// FixtureResult is the outcome of checking a single self-contained package
// directory: the convention report plus any type errors the package has.
// Type errors are data here, not failures — fixtures exist precisely to show
// which call shapes the compiler rejects.
type FixtureResult struct {
	Report     *Report
	TypeErrors []types.Error
}

// HasTypeErrorContaining reports whether any type error message contains
// substr.
func (r *FixtureResult) HasTypeErrorContaining(substr string) bool {
	for _, e := range r.TypeErrors {
		if strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// CheckFixture parses and type-checks the .go files of a single package
// directory on fs, then runs the convention check over whatever type
// information survived. The directory must hold exactly one package with no
// non-stdlib imports.
func (c *Checker) CheckFixture(ctx context.Context, fs afero.Fs, dir string) (*FixtureResult, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Errorf("reading fixture dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !c.cfg.MatchesFile(path) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, errors.Errorf("no Go files in fixture dir %s", dir)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, path := range paths {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, errors.Errorf("reading fixture file: %w", err)
		}
		file, err := parser.ParseFile(fset, path, data, parser.ParseComments)
		if err != nil {
			return nil, errors.Errorf("parsing fixture file: %w", err)
		}
		files = append(files, file)
	}

	var typeErrs []types.Error
	conf := types.Config{
		Importer: importer.Default(),
		Error: func(err error) {
			if te, ok := err.(types.Error); ok {
				typeErrs = append(typeErrs, te)
			}
		},
	}

	// Check returns a usable (if partial) package even when typeErrs is
	// non-empty; its own error return repeats the first entry.
	tpkg, _ := conf.Check(files[0].Name.Name, fset, files, nil)
	if tpkg == nil {
		return nil, errors.Errorf("type-checking fixture %s produced no package", dir)
	}

	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Int("files", len(paths)).
		Int("type_errors", len(typeErrs)).
		Msg("fixture checked")

	return &FixtureResult{
		Report:     c.checkTypes(tpkg, fset),
		TypeErrors: typeErrs,
	}, nil
}
