package main

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: generate_tokens <input.yaml> <output.go|->")
		os.Exit(2)
	}
	inputPath := os.Args[1]
	outputPath := os.Args[2]

	f, err := os.Open(inputPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var input Input
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&input)
	if err != nil {
		panic(fmt.Errorf("%s: %w", inputPath, err))
	}

	output, err := fileToString(fileFromInput(&input))
	if err != nil {
		panic(err)
	}

	if outputPath == "-" {
		fmt.Print(output)
	} else {
		err = os.WriteFile(outputPath, []byte(output), 0o666)
		if err != nil {
			panic(err)
		}
	}
}

func fileFromInput(input *Input) *ast.File {
	dynamic := slices.Sorted(slices.Values(input.Dynamic))
	keywords := slices.Sorted(slices.Values(input.Keywords))
	fixedKeys := slices.Sorted(maps.Keys(input.Fixed))

	file := new(ast.File)
	file.Name = ast.NewIdent("token")

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{
			&ast.TypeSpec{
				Name: ast.NewIdent("Type"),
				Type: ast.NewIdent("int"),
			},
		},
	})

	tokenCount := len(dynamic) + len(keywords) + len(fixedKeys) + 1

	specs := make([]ast.Spec, 0, tokenCount)
	values := make([]ast.Expr, 0, tokenCount)

	specs = append(specs, &ast.ValueSpec{
		Names:  []*ast.Ident{ast.NewIdent("Invalid")},
		Type:   ast.NewIdent("Type"),
		Values: []ast.Expr{ast.NewIdent("iota")},
	})

	values = append(values, stringLit("<invalid>"))

	for _, name := range dynamic {
		specs = append(specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(exportName(name))},
		})
		values = append(values, stringLit("<"+name+">"))
	}

	for _, name := range keywords {
		specs = append(specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(exportName(name))},
		})
		values = append(values, stringLit(name))
	}

	for _, name := range fixedKeys {
		specs = append(specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(exportName(name))},
		})
		values = append(values, stringLit(input.Fixed[name]))
	}

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok:    token.CONST,
		Lparen: 1,
		Specs:  specs,
		Rparen: 1,
	})

	file.Decls = append(file.Decls, &ast.FuncDecl{
		Recv: &ast.FieldList{
			List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent("t")},
				Type:  ast.NewIdent("Type"),
			}},
		},
		Name: ast.NewIdent("String"),
		Type: &ast.FuncType{
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent("string")}}},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.IfStmt{
					Cond: &ast.BinaryExpr{
						X: &ast.BinaryExpr{
							X:  ast.NewIdent("t"),
							Op: token.LSS,
							Y:  &ast.BasicLit{Kind: token.INT, Value: "0"},
						},
						Op: token.LOR,
						Y: &ast.BinaryExpr{
							X:  ast.NewIdent("t"),
							Op: token.GTR,
							Y:  specs[len(specs)-1].(*ast.ValueSpec).Names[0],
						},
					},
					Body: &ast.BlockStmt{
						List: []ast.Stmt{
							&ast.AssignStmt{
								Lhs: []ast.Expr{ast.NewIdent("t")},
								Tok: token.ASSIGN,
								Rhs: []ast.Expr{ast.NewIdent("Invalid")},
							},
						},
					},
				},
				&ast.ReturnStmt{
					Results: []ast.Expr{
						&ast.IndexExpr{
							X:     ast.NewIdent("names"),
							Index: ast.NewIdent("t"),
						},
					},
				},
			},
		},
	})

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent("names")},
			Values: []ast.Expr{&ast.CompositeLit{
				Type: &ast.ArrayType{Elt: ast.NewIdent("string")},
				Elts: values,
			}},
		}},
	})

	keywordElts := make([]ast.Expr, 0, len(keywords))
	for _, name := range keywords {
		keywordElts = append(keywordElts, &ast.KeyValueExpr{
			Key:   stringLit(name),
			Value: ast.NewIdent(exportName(name)),
		})
	}

	fixedByText := make(map[string]string, len(input.Fixed))
	for name, text := range input.Fixed {
		fixedByText[text] = name
	}
	fixedElts := make([]ast.Expr, 0, len(fixedByText))
	for _, text := range slices.Sorted(maps.Keys(fixedByText)) {
		fixedElts = append(fixedElts, &ast.KeyValueExpr{
			Key:   stringLit(text),
			Value: ast.NewIdent(exportName(fixedByText[text])),
		})
	}

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok:    token.VAR,
		Lparen: 1,
		Specs: []ast.Spec{
			&ast.ValueSpec{
				Names:  []*ast.Ident{ast.NewIdent("Keywords")},
				Values: []ast.Expr{stringMap(keywordElts)},
			},
			&ast.ValueSpec{
				Names:  []*ast.Ident{ast.NewIdent("Fixed")},
				Values: []ast.Expr{stringMap(fixedElts)},
			},
		},
		Rparen: 1,
	})

	return file
}

func stringLit(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func stringMap(elts []ast.Expr) *ast.CompositeLit {
	return &ast.CompositeLit{
		Type: &ast.MapType{Key: ast.NewIdent("string"), Value: ast.NewIdent("Type")},
		Elts: elts,
	}
}

func exportName(name string) string {
	return strings.ToTitle(name[:1]) + name[1:]
}

func fileToString(f *ast.File) (string, error) {
	var b strings.Builder
	b.WriteString("// Code generated by generate_tokens.go. DO NOT EDIT.\n\n")
	err := format.Node(&b, token.NewFileSet(), f)
	return b.String(), err
}

type Input struct {
	Dynamic  []string          `yaml:"dynamic"`
	Keywords []string          `yaml:"keywords"`
	Fixed    map[string]string `yaml:"fixed"`
}
