// Package selfkind checks the fluent self-return convention: any struct that
// embeds a type with chainable mutators must re-declare those mutators with
// its own return type, otherwise chains through the embedder silently degrade
// to the base type. The compiler cannot enforce this, so the checker does.
package selfkind

import (
	"context"
	"fmt"
	"go/token"
	"go/types"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/tools/go/packages"
)

// Violation is one inherited fluent mutator an embedder failed to shadow.
type Violation struct {
	// Embedder is the struct that embeds Base.
	Embedder string `json:"embedder"`
	// Base is the embedded type declaring the mutator.
	Base string `json:"base"`
	// Method is the fluent mutator that was not re-declared.
	Method string `json:"method"`
	// Position is where Embedder is declared.
	Position token.Position `json:"position"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s embeds %s but does not redeclare %s, so chains return *%s",
		v.Position, v.Embedder, v.Base, v.Method, v.Base)
}

// Report holds the violations found in one package.
type Report struct {
	Package    string      `json:"package"`
	Violations []Violation `json:"violations,omitempty"`
}

// Err folds the violations into a single error, or nil when the package is
// clean.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, v := range r.Violations {
		result = multierror.Append(result, v)
	}
	return result.ErrorOrNil()
}

// Checker runs the convention check with a given config.
type Checker struct {
	cfg *Config
}

// NewChecker creates a Checker. A nil config means DefaultConfig.
func NewChecker(cfg *Config) *Checker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Checker{cfg: cfg}
}

// CheckDir loads packages under dir and checks each one. Package load errors
// are logged and the affected package skipped rather than failing the run.
func (c *Checker) CheckDir(ctx context.Context, dir string, patterns ...string) ([]*Report, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes |
			packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Errorf("loading packages: %w", err)
	}

	var reports []*Report
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			zerolog.Ctx(ctx).Warn().
				Str("package", pkg.PkgPath).
				Str("error", e.Msg).
				Msg("package load error")
		}
		if pkg.Types == nil {
			continue
		}

		report := c.checkTypes(pkg.Types, pkg.Fset)
		report.Package = pkg.PkgPath
		reports = append(reports, report)

		zerolog.Ctx(ctx).Debug().
			Str("package", pkg.PkgPath).
			Int("violations", len(report.Violations)).
			Msg("package checked")
	}
	return reports, nil
}

// checkTypes walks every named struct in the package scope and reports
// inherited fluent mutators that the embedding type does not shadow.
func (c *Checker) checkTypes(tpkg *types.Package, fset *token.FileSet) *Report {
	report := &Report{Package: tpkg.Path()}

	scope := tpkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		pos := fset.Position(tn.Pos())
		if !c.cfg.MatchesFile(pos.Filename) {
			continue
		}

		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if !field.Anonymous() {
				continue
			}
			base := namedStruct(field.Type())
			if base == nil {
				continue
			}

			for _, m := range fluentMutators(base) {
				if c.cfg.IsPinned(m.Name()) {
					continue
				}
				if declaresMethod(named, m.Name()) {
					continue
				}
				report.Violations = append(report.Violations, Violation{
					Embedder: named.Obj().Name(),
					Base:     base.Obj().Name(),
					Method:   m.Name(),
					Position: pos,
				})
			}
		}
	}
	return report
}

// fluentMutators returns the exported methods declared on named whose single
// result is the pointer to named itself.
func fluentMutators(named *types.Named) []*types.Func {
	var out []*types.Func
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if !m.Exported() {
			continue
		}
		sig, ok := m.Type().(*types.Signature)
		if !ok || sig.Results().Len() != 1 {
			continue
		}
		ptr, ok := sig.Results().At(0).Type().(*types.Pointer)
		if !ok {
			continue
		}
		result, ok := ptr.Elem().(*types.Named)
		if !ok || result.Obj() != named.Obj() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// declaresMethod reports whether named itself declares a method with this
// name. Promoted methods do not count: the whole question is whether the
// embedder re-declared the mutator.
func declaresMethod(named *types.Named, name string) bool {
	for i := 0; i < named.NumMethods(); i++ {
		if named.Method(i).Name() == name {
			return true
		}
	}
	return false
}

// namedStruct unwraps a field type to a named struct, following one pointer
// level for embedded pointer fields.
func namedStruct(t types.Type) *types.Named {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil
	}
	return named
}
