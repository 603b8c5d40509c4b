// Command diffgen generates the single-field diff types of the catalog
// records: one variant struct per diffable field of each listed record type,
// plus the decoder that turns a logged envelope back into the typed variant.
// Fields tagged diff:"-" are managed collections with operations of their
// own and get no variant; unexported fields are skipped.
//
// Wire names come from the field's json tag, falling back to snake case of
// the Go name. Field tags are positional, so reordering or removing a field
// changes the tags of everything after it; append new fields at the end.
//
// Usage:
//
//	diffgen -types ArtistMetaData,Release,Song,Event,Tag -out diff_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"unicode"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("diffgen: ")

	types := flag.String("types", "", "comma-separated record type names, in output order")
	src := flag.String("src", ".", "directory of the package holding the record types")
	out := flag.String("out", "", "output file; stdout when empty")
	flag.Parse()

	if *types == "" {
		log.Fatal("-types is required")
	}
	order := strings.Split(*types, ",")

	pkg, err := load(*src, order)
	if err != nil {
		log.Fatal(err)
	}
	code, err := render(pkg, order)
	if err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		os.Stdout.Write(code)
		return
	}
	if err := os.WriteFile(*out, code, 0o644); err != nil {
		log.Fatal(err)
	}
}

type field struct {
	GoName   string
	WireName string
	Type     string
}

type record struct {
	Name   string
	Kind   string
	Fields []field
}

type pkgInfo struct {
	Name    string
	Records map[string]*record
}

// load parses every non-test .go file in dir and collects the wanted
// record structs.
func load(dir string, wanted []string) (*pkgInfo, error) {
	want := make(map[string]bool, len(wanted))
	for _, n := range wanted {
		want[n] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	info := &pkgInfo{Records: make(map[string]*record, len(wanted))}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		if info.Name == "" {
			info.Name = file.Name.Name
		}
		if err := collect(fset, file, want, info); err != nil {
			return nil, err
		}
	}
	for _, n := range wanted {
		if info.Records[n] == nil {
			return nil, fmt.Errorf("type %s not found in %s", n, dir)
		}
	}
	return info, nil
}

func collect(fset *token.FileSet, file *ast.File, want map[string]bool, info *pkgInfo) error {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || !want[ts.Name.Name] {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return fmt.Errorf("type %s is not a struct", ts.Name.Name)
			}
			rec := &record{Name: ts.Name.Name, Kind: snake(ts.Name.Name)}
			for _, f := range st.Fields.List {
				if managed(f) {
					continue
				}
				typ, err := typeString(fset, f.Type)
				if err != nil {
					return err
				}
				for _, id := range f.Names {
					if !id.IsExported() {
						continue
					}
					rec.Fields = append(rec.Fields, field{
						GoName:   id.Name,
						WireName: wireName(f, id.Name),
						Type:     typ,
					})
				}
			}
			info.Records[rec.Name] = rec
		}
	}
	return nil
}

func tagOf(f *ast.Field) reflect.StructTag {
	if f.Tag == nil {
		return ""
	}
	return reflect.StructTag(strings.Trim(f.Tag.Value, "`"))
}

func managed(f *ast.Field) bool {
	return tagOf(f).Get("diff") == "-"
}

func wireName(f *ast.Field, goName string) string {
	tag := tagOf(f).Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
		return name
	}
	return snake(goName)
}

func typeString(fset *token.FileSet, expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func snake(name string) string {
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func article(name string) string {
	switch name[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}

func render(pkg *pkgInfo, order []string) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by diffgen -types %s; DO NOT EDIT.\n\n", strings.Join(order, ","))
	fmt.Fprintf(&b, "package %s\n\n", pkg.Name)
	b.WriteString("import (\n\tjsoniter \"github.com/json-iterator/go\"\n\n\t\"github.com/discantdb/discant/chash\"\n)\n")
	for _, name := range order {
		writeRecord(&b, pkg.Records[name])
	}
	return format.Source(b.Bytes())
}

func writeRecord(b *bytes.Buffer, rec *record) {
	fmt.Fprintf(b, "\n// %sDiff mutates a single diffable field of %s.\n", rec.Name, rec.Name)
	fmt.Fprintf(b, "type %sDiff interface {\n", rec.Name)
	fmt.Fprintf(b, "\tApply(*%s)\n", rec.Name)
	b.WriteString("\tFieldTag() uint32\n")
	b.WriteString("\tFieldName() string\n")
	b.WriteString("\tDigest() chash.Hash128\n")
	b.WriteString("\tMarshalJSON() ([]byte, error)\n")
	b.WriteString("}\n")

	for i, f := range rec.Fields {
		v := rec.Name + f.GoName + "Diff"
		fmt.Fprintf(b, "\n// %s replaces %s.%s.\n", v, rec.Name, f.GoName)
		fmt.Fprintf(b, "type %s struct {\n\tValue %s `json:\"value\"`\n}\n\n", v, f.Type)
		fmt.Fprintf(b, "func (d %s) Apply(rec *%s) {\n\trec.%s = d.Value\n}\n\n", v, rec.Name, f.GoName)
		fmt.Fprintf(b, "func (d %s) FieldTag() uint32 {\n\treturn %d\n}\n\n", v, i)
		fmt.Fprintf(b, "func (d %s) FieldName() string {\n\treturn %q\n}\n\n", v, f.WireName)
		fmt.Fprintf(b, "func (d %s) Digest() chash.Hash128 {\n\treturn diffDigest(%q, %q, d.Value)\n}\n\n", v, rec.Kind, f.WireName)
		fmt.Fprintf(b, "func (d %s) MarshalJSON() ([]byte, error) {\n\treturn marshalDiff(%q, d.Value)\n}\n", v, f.WireName)
	}

	fmt.Fprintf(b, "\n// Decode%sDiff parses a diff envelope produced by %s %sDiff.\n", rec.Name, article(rec.Name), rec.Name)
	fmt.Fprintf(b, "func Decode%sDiff(data []byte) (%sDiff, error) {\n", rec.Name, rec.Name)
	b.WriteString("\tfield, raw, err := splitDiff(data)\n")
	b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	b.WriteString("\tswitch field {\n")
	for _, f := range rec.Fields {
		v := rec.Name + f.GoName + "Diff"
		fmt.Fprintf(b, "\tcase %q:\n", f.WireName)
		fmt.Fprintf(b, "\t\tvar d %s\n", v)
		b.WriteString("\t\tif err := jsoniter.Unmarshal(raw, &d.Value); err != nil {\n")
		fmt.Fprintf(b, "\t\t\treturn nil, badDiffValue(%q, field, err)\n\t\t}\n", rec.Kind)
		b.WriteString("\t\treturn d, nil\n")
	}
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn nil, badDiffField(%q, field)\n}\n", rec.Kind)
}
