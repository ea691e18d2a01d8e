package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and collects their enums.
type Analyzer struct {
	set *EnumSet
	dir string
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to dir
// ("" for the working directory).
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{
		set: NewEnumSet(),
		dir: dir,
	}
}

// LoadPackages loads the specified packages and collects their enums.
// Patterns are standard Go package patterns (e.g., "./model", "datamapper/primitive").
func (a *Analyzer) LoadPackages(patterns ...string) (*EnumSet, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.PkgPath, pkg.Name, pkg.Types)
	}

	return a.set, nil
}

// Enums returns the enums collected so far.
func (a *Analyzer) Enums() *EnumSet {
	return a.set
}

type declared struct {
	member Member
	pos    token.Pos
}

// processPackage extracts the exported constants of package-local named types.
func (a *Analyzer) processPackage(path, name string, pkg *types.Package) {
	pkgInfo := &PackageInfo{Path: path, Name: name}
	found := make(map[TypeID][]declared)
	underlying := make(map[TypeID]string)

	scope := pkg.Scope()
	for _, objName := range scope.Names() {
		c, ok := scope.Lookup(objName).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg {
			continue
		}

		basic, ok := named.Underlying().(*types.Basic)
		if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
			continue
		}

		id := TypeID{PkgPath: path, Name: named.Obj().Name()}
		underlying[id] = basic.Name()
		found[id] = append(found[id], declared{
			member: Member{Name: c.Name(), Value: c.Val().ExactString()},
			pos:    c.Pos(),
		})
	}

	for id, decls := range found {
		sort.Slice(decls, func(i, j int) bool { return decls[i].pos < decls[j].pos })

		info := &EnumInfo{ID: id, PkgName: name, Underlying: underlying[id]}
		for _, d := range decls {
			info.Members = append(info.Members, d.member)
		}

		a.set.Enums[id] = info
		pkgInfo.Enums = append(pkgInfo.Enums, id)
	}

	sort.Slice(pkgInfo.Enums, func(i, j int) bool { return pkgInfo.Enums[i].Name < pkgInfo.Enums[j].Name })
	a.set.Packages[path] = pkgInfo
}

// GetEnum returns the enum called typeName in pkgPath.
func (a *Analyzer) GetEnum(pkgPath, typeName string) (*EnumInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.set.GetEnum(id)
	if info == nil {
		return nil, fmt.Errorf("enum %s not found", id)
	}

	return info, nil
}
