package analyze

import (
	"bytes"
	"fmt"
	"go/format"
	"reflect"
	"sort"
	"strings"

	"datamapper/mapper"
)

var mapperPkgPath = reflect.TypeFor[mapper.Enums]().PkgPath()

// RenderOptions controls the generated registration file.
type RenderOptions struct {
	// Package is the package clause of the generated file.
	Package string
	// ImportPath is the import path of the generated file's package. Enums
	// declared in it are referenced without qualifier.
	ImportPath string
	// FuncName defaults to RegisterEnums.
	FuncName string
}

// Render writes Go source registering the given enums (all enums of set
// when ids is empty) with mapper.RegisterEnum.
func Render(set *EnumSet, opts RenderOptions, ids ...TypeID) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if opts.FuncName == "" {
		opts.FuncName = "RegisterEnums"
	}

	if len(ids) == 0 {
		for id := range set.Enums {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	imports := map[string]string{}
	var body bytes.Buffer

	for _, id := range ids {
		info := set.GetEnum(id)
		if info == nil {
			return nil, fmt.Errorf("enum %s not found", id)
		}

		qual := ""
		if id.PkgPath != opts.ImportPath {
			imports[id.PkgPath] = info.PkgName
			qual = info.PkgName + "."
		}

		fmt.Fprintf(&body, "\tmapper.RegisterEnum(e, map[string]%s%s{\n", qual, id.Name)
		for _, m := range info.Members {
			fmt.Fprintf(&body, "\t\t%q: %s%s,\n", m.Name, qual, m.Name)
		}
		body.WriteString("\t})\n")
	}

	var src bytes.Buffer
	src.WriteString("// Code generated by datamapper enums; DO NOT EDIT.\n\n")
	fmt.Fprintf(&src, "package %s\n\n", opts.Package)
	src.WriteString("import (\n")
	fmt.Fprintf(&src, "\t%q\n", mapperPkgPath)

	paths := make([]string, 0, len(imports))
	for p := range imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		if strings.HasSuffix(p, "/"+imports[p]) || p == imports[p] {
			fmt.Fprintf(&src, "\t%q\n", p)
		} else {
			fmt.Fprintf(&src, "\t%s %q\n", imports[p], p)
		}
	}
	src.WriteString(")\n\n")

	fmt.Fprintf(&src, "// %s registers the member names of the scanned enum types.\n", opts.FuncName)
	fmt.Fprintf(&src, "func %s(e *mapper.Enums) {\n", opts.FuncName)
	src.Write(body.Bytes())
	src.WriteString("}\n")

	out, err := format.Source(src.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}

	return out, nil
}
